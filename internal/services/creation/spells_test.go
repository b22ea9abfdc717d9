package creation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

type SpellsTestSuite struct {
	creationSuite
}

func TestSpellsSuite(t *testing.T) {
	suite.Run(t, new(SpellsTestSuite))
}

// seedWizardAtSpells parks a custom wizard draft at the spells stage.
func (s *SpellsTestSuite) seedWizardAtSpells() *character.CharacterDraft {
	return s.seedDraft(func(d *character.CharacterDraft) {
		d.Path = character.PathCustom
		d.CurrentStage = character.StageSpells
		d.FurthestCompleted = character.StageClassFeatures
		d.ClassKey = "wizard"
		d.AbilityMethod = character.AbilityMethodPointBuy
		d.PointBuyScores = fullPointBuy()
	})
}

func (s *SpellsTestSuite) TestGetSpellOptions_KnownCasterGetsSortedClassLists() {
	s.mockCatalog.EXPECT().LoadClassBundle("wizard").Return(wizardBundle(), nil).AnyTimes()

	d := s.seedWizardAtSpells()

	out, err := s.service.GetSpellOptions(s.ctx, d.ID)
	s.Require().NoError(err)

	s.Equal(3, out.CantripQuota)
	s.Equal(6, out.SpellQuota)

	// The bundle arrives unsorted; options come back in name order.
	s.Require().Len(out.Cantrips, 4)
	s.Equal("Fire Bolt", out.Cantrips[0].Name)
	s.Equal("Ray of Frost", out.Cantrips[3].Name)
	s.Require().Len(out.Spells, 7)
	s.Equal("Burning Hands", out.Spells[0].Name)
	s.Equal("Sleep", out.Spells[6].Name)

	s.Empty(out.SelectedCantrips)
	s.Empty(out.SelectedSpells)
}

func (s *SpellsTestSuite) TestGetSpellOptions_PreparedQuotaRidesKeyAbility() {
	s.mockCatalog.EXPECT().LoadClassBundle("cleric").Return(clericBundle(), nil).AnyTimes()

	// Wisdom 15 bought plus a racial +1: modifier +3, so 4 prepared.
	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.Path = character.PathCustom
		d.CurrentStage = character.StageSpells
		d.ClassKey = "cleric"
		d.AbilityMethod = character.AbilityMethodPointBuy
		d.PointBuyScores = map[shared.Attribute]int{
			shared.AttributeStrength:     10,
			shared.AttributeDexterity:    10,
			shared.AttributeConstitution: 12,
			shared.AttributeIntelligence: 8,
			shared.AttributeWisdom:       15,
			shared.AttributeCharisma:     10,
		}
		d.RacialBonuses = map[shared.Attribute]int{shared.AttributeWisdom: 1}
	})

	out, err := s.service.GetSpellOptions(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal(3, out.CantripQuota)
	s.Equal(4, out.SpellQuota)
}

func (s *SpellsTestSuite) TestGetSpellOptions_PreparedQuotaFloorsAtOne() {
	s.mockCatalog.EXPECT().LoadClassBundle("cleric").Return(clericBundle(), nil).AnyTimes()

	// Wisdom 8 is a -1 modifier; the quota never drops below one.
	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.Path = character.PathCustom
		d.CurrentStage = character.StageSpells
		d.ClassKey = "cleric"
		d.AbilityMethod = character.AbilityMethodPointBuy
		d.PointBuyScores = map[shared.Attribute]int{
			shared.AttributeStrength:     15,
			shared.AttributeDexterity:    14,
			shared.AttributeConstitution: 14,
			shared.AttributeIntelligence: 12,
			shared.AttributeWisdom:       8,
			shared.AttributeCharisma:     8,
		}
	})

	out, err := s.service.GetSpellOptions(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal(1, out.SpellQuota)
}

func (s *SpellsTestSuite) TestGetSpellOptions_RacialCantripForNonCaster() {
	s.expectElf()
	s.mockCatalog.EXPECT().ListSpellsByClassAndLevel("wizard", 0).
		Return(wizardBundle().Cantrips, nil).AnyTimes()

	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.Path = character.PathCustom
		d.CurrentStage = character.StageSpells
		d.ClassKey = "fighter"
		d.RaceKey = "elf"
	})

	out, err := s.service.GetSpellOptions(s.ctx, d.ID)
	s.Require().NoError(err)

	s.Equal(1, out.CantripQuota)
	s.Equal(0, out.SpellQuota)
	s.Require().Len(out.Cantrips, 4)
	s.Equal("Fire Bolt", out.Cantrips[0].Name)
	s.Empty(out.Spells)
}

func (s *SpellsTestSuite) TestGetSpellOptions_NothingForNonCaster() {
	s.expectDwarf()

	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.Path = character.PathCustom
		d.CurrentStage = character.StageSpells
		d.ClassKey = "fighter"
		d.RaceKey = "dwarf"
	})

	out, err := s.service.GetSpellOptions(s.ctx, d.ID)
	s.Require().NoError(err)

	s.Zero(out.CantripQuota)
	s.Zero(out.SpellQuota)
	s.Empty(out.Cantrips)
	s.Empty(out.Spells)
}

func (s *SpellsTestSuite) TestGetSpellOptions_RequiresClass() {
	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.Path = character.PathCustom
		d.CurrentStage = character.StageSpells
	})

	_, err := s.service.GetSpellOptions(s.ctx, d.ID)

	s.Error(err)
	s.True(dnderr.IsMissingDependency(err))
	s.Contains(err.Error(), "choose a class before spells")
	s.Equal(string(character.StageClass), dnderr.GetMeta(err)["missing_stage"])
}

func (s *SpellsTestSuite) TestAdvance_QuotaMismatchRejected() {
	s.mockCatalog.EXPECT().LoadClassBundle("wizard").Return(wizardBundle(), nil).AnyTimes()

	d := s.seedWizardAtSpells()
	s.mustUpdate(d.ID, &character.DraftUpdates{
		Cantrips: []string{"fire-bolt", "light", "mage-hand"},
		Spells:   []string{"burning-hands", "charm-person", "detect-magic", "magic-missile", "shield"},
	})

	_, err := s.service.Advance(s.ctx, d.ID)

	s.Error(err)
	s.True(dnderr.IsValidation(err))
	s.Contains(err.Error(), "pick 6 spells (5 picked)")
}

func (s *SpellsTestSuite) TestAdvance_IneligiblePickRejected() {
	s.mockCatalog.EXPECT().LoadClassBundle("wizard").Return(wizardBundle(), nil).AnyTimes()

	d := s.seedWizardAtSpells()
	s.mustUpdate(d.ID, &character.DraftUpdates{
		Cantrips: []string{"fire-bolt", "light", "mage-hand"},
		Spells:   []string{"cure-wounds", "charm-person", "detect-magic", "magic-missile", "shield", "sleep"},
	})

	_, err := s.service.Advance(s.ctx, d.ID)

	s.Error(err)
	s.Contains(err.Error(), "spell 'cure-wounds' is not on your list")
}

func (s *SpellsTestSuite) TestAdvance_DuplicatePickRejected() {
	s.mockCatalog.EXPECT().LoadClassBundle("wizard").Return(wizardBundle(), nil).AnyTimes()

	d := s.seedWizardAtSpells()
	s.mustUpdate(d.ID, &character.DraftUpdates{
		Cantrips: []string{"fire-bolt", "fire-bolt", "light"},
	})

	_, err := s.service.Advance(s.ctx, d.ID)

	s.Error(err)
	s.Contains(err.Error(), "cantrip 'fire-bolt' is picked twice")
}

func (s *SpellsTestSuite) TestAdvance_ExactPicksPass() {
	s.mockCatalog.EXPECT().LoadClassBundle("wizard").Return(wizardBundle(), nil).AnyTimes()

	d := s.seedWizardAtSpells()
	s.mustUpdate(d.ID, &character.DraftUpdates{
		Cantrips: []string{"fire-bolt", "light", "mage-hand"},
		Spells:   []string{"burning-hands", "charm-person", "detect-magic", "magic-missile", "shield", "sleep"},
	})

	out, err := s.service.Advance(s.ctx, d.ID)

	s.Require().NoError(err)
	s.Equal(character.StageSkills, out.Draft.CurrentStage)
}
