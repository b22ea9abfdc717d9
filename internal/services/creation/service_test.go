package creation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/character-forge-discord/internal/clients/catalog"
	mockcatalog "github.com/KirkDiggler/character-forge-discord/internal/clients/catalog/mock"
	mockdice "github.com/KirkDiggler/character-forge-discord/internal/dice/mock"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/events"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
	"github.com/KirkDiggler/character-forge-discord/internal/repositories/characters"
	"github.com/KirkDiggler/character-forge-discord/internal/repositories/draft"
	"github.com/KirkDiggler/character-forge-discord/internal/services/creation"
)

// recordingBus captures emitted creation events for assertion.
type recordingBus struct {
	emitted []*events.CreationEvent
}

func (b *recordingBus) Subscribe(events.EventType, events.EventListener)   {}
func (b *recordingBus) Unsubscribe(events.EventType, events.EventListener) {}

func (b *recordingBus) Emit(event *events.CreationEvent) error {
	b.emitted = append(b.emitted, event)
	return nil
}

func (b *recordingBus) Clear() {
	b.emitted = nil
}

func (b *recordingBus) ListenerCount(events.EventType) int {
	return 0
}

// ofType returns the captured events of one type, in emission order.
func (b *recordingBus) ofType(t events.EventType) []*events.CreationEvent {
	var out []*events.CreationEvent
	for _, e := range b.emitted {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// sequentialIDs hands out deterministic IDs so tests can name the
// drafts and characters the service creates.
type sequentialIDs struct {
	n int
}

func (g *sequentialIDs) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// creationSuite is the shared scaffolding for the creation service
// suites: real in-memory repositories, a mocked catalog, predetermined
// dice, and a recording event bus.
type creationSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *mockcatalog.MockClient
	draftRepo   draft.Repository
	charRepo    characters.Repository
	roller      *mockdice.ManualMockRoller
	bus         *recordingBus
	service     creation.Service
	ctx         context.Context
}

func (s *creationSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = mockcatalog.NewMockClient(s.ctrl)
	s.draftRepo = draft.NewInMemoryRepository()
	s.charRepo = characters.NewInMemoryRepository()
	s.roller = mockdice.NewManualMockRoller()
	s.bus = &recordingBus{}
	s.ctx = context.Background()

	s.service = creation.NewService(&creation.ServiceConfig{
		DraftRepo:     s.draftRepo,
		CharacterRepo: s.charRepo,
		Catalog:       s.mockCatalog,
		Roller:        s.roller,
		UUIDGenerator: &sequentialIDs{},
		EventBus:      s.bus,
	})
}

func (s *creationSuite) TearDownTest() {
	s.ctrl.Finish()
}

// seedDraft stores a draft in a handmade state, bypassing the wizard.
func (s *creationSuite) seedDraft(mutate func(d *character.CharacterDraft)) *character.CharacterDraft {
	d := character.NewDraft(fmt.Sprintf("draft-%d", time.Now().UnixNano()), "owner-1", "realm-1", time.Now().UTC())
	if mutate != nil {
		mutate(d)
	}
	s.Require().NoError(s.draftRepo.Create(s.ctx, d))
	return d
}

// Catalog fixtures. These stand in for the reference data service; the
// shapes match what the converters hand the core, including the bare
// {key, name} refs on equipment branches.

func fighterClass() *rulebook.Class {
	return &rulebook.Class{
		Key:            "fighter",
		Name:           "Fighter",
		HitDie:         10,
		PrimaryAbility: shared.AttributeStrength,
		SkillChoice: rulebook.SkillChoice{
			Count:   2,
			Options: []string{"acrobatics", "athletics", "history", "insight", "intimidation", "perception", "survival"},
		},
		DefaultEquipment: []rulebook.ItemRef{
			{Key: "explorers-pack", Name: "Explorer's Pack"},
		},
		EquipmentChoices: []rulebook.EquipmentChoice{
			{
				ID:     "fighter-equip-0",
				Prompt: "Chain mail, or leather armor and a longbow",
				Branches: []rulebook.EquipmentBranch{
					{Label: "group", Items: []rulebook.ItemRef{{Key: "chain-mail", Name: "Chain Mail"}}},
					{Label: "or", Items: []rulebook.ItemRef{{Key: "leather-armor", Name: "Leather Armor"}, {Key: "longbow", Name: "Longbow"}}},
				},
			},
			{
				ID:     "fighter-equip-1",
				Prompt: "A longsword and a shield, or two longswords",
				Branches: []rulebook.EquipmentBranch{
					{Label: "group", Items: []rulebook.ItemRef{{Key: "longsword", Name: "Longsword"}, {Key: "shield", Name: "Shield"}}},
					{Label: "or", Items: []rulebook.ItemRef{{Key: "longsword", Name: "Longsword"}, {Key: "longsword", Name: "Longsword"}}},
				},
			},
		},
	}
}

func wizardClass() *rulebook.Class {
	return &rulebook.Class{
		Key:            "wizard",
		Name:           "Wizard",
		HitDie:         6,
		PrimaryAbility: shared.AttributeIntelligence,
		SkillChoice: rulebook.SkillChoice{
			Count:   2,
			Options: []string{"arcana", "history", "insight", "investigation", "medicine", "religion"},
		},
		DefaultEquipment: []rulebook.ItemRef{
			{Key: "spellbook", Name: "Spellbook"},
		},
		EquipmentChoices: []rulebook.EquipmentChoice{
			{
				ID:     "wizard-equip-0",
				Prompt: "A quarterstaff or a dagger",
				Branches: []rulebook.EquipmentBranch{
					{Label: "group", Items: []rulebook.ItemRef{{Key: "quarterstaff", Name: "Quarterstaff"}}},
					{Label: "or", Items: []rulebook.ItemRef{{Key: "dagger", Name: "Dagger"}}},
				},
			},
		},
	}
}

func clericClass() *rulebook.Class {
	return &rulebook.Class{
		Key:            "cleric",
		Name:           "Cleric",
		HitDie:         8,
		PrimaryAbility: shared.AttributeWisdom,
		SkillChoice: rulebook.SkillChoice{
			Count:   2,
			Options: []string{"history", "insight", "medicine", "persuasion", "religion"},
		},
		DefaultEquipment: []rulebook.ItemRef{
			{Key: "priests-pack", Name: "Priest's Pack"},
		},
		EquipmentChoices: []rulebook.EquipmentChoice{
			{
				ID:     "cleric-equip-0",
				Prompt: "A mace or a warhammer",
				Branches: []rulebook.EquipmentBranch{
					{Label: "group", Items: []rulebook.ItemRef{{Key: "mace", Name: "Mace"}}},
					{Label: "or", Items: []rulebook.ItemRef{{Key: "warhammer", Name: "Warhammer"}}},
				},
			},
		},
	}
}

func dwarfRace() *rulebook.Race {
	return &rulebook.Race{
		Key:   "dwarf",
		Name:  "Dwarf",
		Speed: 25,
		AbilityBonuses: []*shared.AbilityBonus{
			{Attribute: shared.AttributeConstitution, Bonus: 2},
		},
		Subraces: []rulebook.Subrace{
			{
				Key:  "hill-dwarf",
				Name: "Hill Dwarf",
				AbilityBonuses: []*shared.AbilityBonus{
					{Attribute: shared.AttributeWisdom, Bonus: 1},
				},
			},
		},
	}
}

func elfRace() *rulebook.Race {
	return &rulebook.Race{
		Key:   "elf",
		Name:  "Elf",
		Speed: 30,
		AbilityBonuses: []*shared.AbilityBonus{
			{Attribute: shared.AttributeDexterity, Bonus: 2},
		},
		GrantsCantrip: true,
		CantripClass:  "wizard",
		Subraces: []rulebook.Subrace{
			{
				Key:  "high-elf",
				Name: "High Elf",
				AbilityBonuses: []*shared.AbilityBonus{
					{Attribute: shared.AttributeIntelligence, Bonus: 1},
				},
			},
		},
	}
}

func soldierBackground() *rulebook.Background {
	return &rulebook.Background{
		Key:                "soldier",
		Name:               "Soldier",
		SkillProficiencies: []string{"athletics", "survival"},
		StartingItems: []rulebook.ItemRef{
			{Key: "insignia", Name: "Insignia of rank", Type: rulebook.ItemTypeGear},
			{Key: "common-clothes", Name: "Common clothes", Type: rulebook.ItemTypeGear},
		},
	}
}

func wizardBundle() *catalog.ClassBundle {
	return &catalog.ClassBundle{
		Class: wizardClass(),
		Cantrips: []*rulebook.SpellReference{
			{Key: "mage-hand", Name: "Mage Hand"},
			{Key: "fire-bolt", Name: "Fire Bolt"},
			{Key: "light", Name: "Light"},
			{Key: "ray-of-frost", Name: "Ray of Frost"},
		},
		Spells: []*rulebook.SpellReference{
			{Key: "shield", Name: "Shield"},
			{Key: "burning-hands", Name: "Burning Hands"},
			{Key: "magic-missile", Name: "Magic Missile"},
			{Key: "sleep", Name: "Sleep"},
			{Key: "charm-person", Name: "Charm Person"},
			{Key: "detect-magic", Name: "Detect Magic"},
			{Key: "mage-armor", Name: "Mage Armor"},
		},
	}
}

func clericBundle() *catalog.ClassBundle {
	return &catalog.ClassBundle{
		Class: clericClass(),
		Cantrips: []*rulebook.SpellReference{
			{Key: "sacred-flame", Name: "Sacred Flame"},
			{Key: "guidance", Name: "Guidance"},
			{Key: "thaumaturgy", Name: "Thaumaturgy"},
		},
		Spells: []*rulebook.SpellReference{
			{Key: "cure-wounds", Name: "Cure Wounds"},
			{Key: "bless", Name: "Bless"},
			{Key: "guiding-bolt", Name: "Guiding Bolt"},
			{Key: "shield-of-faith", Name: "Shield of Faith"},
			{Key: "healing-word", Name: "Healing Word"},
		},
	}
}

// armory is the equipment catalog the mocked GetEquipment serves.
func armory() map[string]rulebook.ItemRef {
	return map[string]rulebook.ItemRef{
		"chain-mail":     {Key: "chain-mail", Name: "Chain Mail", Type: rulebook.ItemTypeArmor},
		"leather-armor":  {Key: "leather-armor", Name: "Leather Armor", Type: rulebook.ItemTypeArmor},
		"longbow":        {Key: "longbow", Name: "Longbow", Type: rulebook.ItemTypeWeapon},
		"longsword":      {Key: "longsword", Name: "Longsword", Type: rulebook.ItemTypeWeapon},
		"shield":         {Key: "shield", Name: "Shield", Type: rulebook.ItemTypeShield},
		"quarterstaff":   {Key: "quarterstaff", Name: "Quarterstaff", Type: rulebook.ItemTypeWeapon},
		"dagger":         {Key: "dagger", Name: "Dagger", Type: rulebook.ItemTypeWeapon},
		"mace":           {Key: "mace", Name: "Mace", Type: rulebook.ItemTypeWeapon},
		"spellbook":      {Key: "spellbook", Name: "Spellbook", Type: rulebook.ItemTypeGear},
		"explorers-pack": {Key: "explorers-pack", Name: "Explorer's Pack", Type: rulebook.ItemTypePack},
		"priests-pack":   {Key: "priests-pack", Name: "Priest's Pack", Type: rulebook.ItemTypePack},
	}
}

func (s *creationSuite) expectFighter() {
	s.mockCatalog.EXPECT().GetClass("fighter").Return(fighterClass(), nil).AnyTimes()
}

func (s *creationSuite) expectWizard() {
	s.mockCatalog.EXPECT().GetClass("wizard").Return(wizardClass(), nil).AnyTimes()
}

func (s *creationSuite) expectCleric() {
	s.mockCatalog.EXPECT().GetClass("cleric").Return(clericClass(), nil).AnyTimes()
}

func (s *creationSuite) expectDwarf() {
	s.mockCatalog.EXPECT().GetRace("dwarf").Return(dwarfRace(), nil).AnyTimes()
}

func (s *creationSuite) expectElf() {
	s.mockCatalog.EXPECT().GetRace("elf").Return(elfRace(), nil).AnyTimes()
}

func (s *creationSuite) expectSoldier() {
	s.mockCatalog.EXPECT().GetBackground("soldier").Return(soldierBackground(), nil).AnyTimes()
}

func (s *creationSuite) expectArmory() {
	for key, item := range armory() {
		ref := item
		s.mockCatalog.EXPECT().GetEquipment(key).Return(&ref, nil).AnyTimes()
	}
}

// fullPointBuy is a spread that spends the budget exactly.
func fullPointBuy() map[shared.Attribute]int {
	return map[shared.Attribute]int{
		shared.AttributeStrength:     15,
		shared.AttributeDexterity:    14,
		shared.AttributeConstitution: 14,
		shared.AttributeIntelligence: 8,
		shared.AttributeWisdom:       12,
		shared.AttributeCharisma:     8,
	}
}

func strPtr(v string) *string { return &v }

func pathPtr(v character.Path) *character.Path { return &v }

func methodPtr(v character.AbilityMethod) *character.AbilityMethod { return &v }

// ServiceTestSuite covers draft lifecycle, staged updates with their
// cascades, and the catalog pass-throughs.
type ServiceTestSuite struct {
	creationSuite
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestGetOrCreateDraft_CreatesNew() {
	output, err := s.service.GetOrCreateDraft(s.ctx, &creation.GetOrCreateDraftInput{
		OwnerID: "owner-1",
		RealmID: "realm-1",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.False(output.Resumed)
	s.Equal("id-1", output.Draft.ID)
	s.Equal(character.StageWorld, output.Draft.CurrentStage)
	s.Equal(shared.CharacterStatusDraft, output.Draft.Status)

	stored, err := s.draftRepo.Get(s.ctx, output.Draft.ID)
	s.NoError(err)
	s.Equal(output.Draft.ID, stored.ID)

	s.Len(s.bus.ofType(events.DraftCreated), 1)
}

func (s *ServiceTestSuite) TestGetOrCreateDraft_ResumesExisting() {
	existing := s.seedDraft(func(d *character.CharacterDraft) {
		d.WorldKey = "forgotten-realms"
		d.CurrentStage = character.StageCampaign
	})

	output, err := s.service.GetOrCreateDraft(s.ctx, &creation.GetOrCreateDraftInput{
		OwnerID: "owner-1",
		RealmID: "realm-1",
	})

	s.NoError(err)
	s.True(output.Resumed)
	s.Equal(existing.ID, output.Draft.ID)
	s.Equal(character.StageCampaign, output.Draft.CurrentStage)
	s.Empty(s.bus.ofType(events.DraftCreated))
}

func (s *ServiceTestSuite) TestGetOrCreateDraft_RequiresOwner() {
	output, err := s.service.GetOrCreateDraft(s.ctx, &creation.GetOrCreateDraftInput{
		RealmID: "realm-1",
	})

	s.Error(err)
	s.Nil(output)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestUpdateDraft_StagesSelections() {
	d := s.seedDraft(nil)

	output, err := s.service.UpdateDraft(s.ctx, &creation.UpdateDraftInput{
		DraftID: d.ID,
		Updates: &character.DraftUpdates{WorldKey: strPtr("forgotten-realms")},
	})

	s.NoError(err)
	s.Equal("forgotten-realms", output.Draft.WorldKey)
	s.Empty(output.Cleared)
	s.Len(s.bus.ofType(events.DraftUpdated), 1)
	s.Empty(s.bus.ofType(events.SelectionsInvalidated))
}

func (s *ServiceTestSuite) TestUpdateDraft_ClassChangeClearsDownstream() {
	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.Path = character.PathCustom
		d.ClassKey = "fighter"
		d.FeatureChoices = map[string]string{"fighting_style": "defense"}
		d.Cantrips = []string{"fire-bolt"}
		d.Spells = []string{"magic-missile"}
		d.Skills = []string{"athletics", "intimidation"}
		d.EquipmentChoices = map[string]int{"fighter-equip-0": 0}
		d.Inventory = []rulebook.ItemRef{{Key: "chain-mail", Name: "Chain Mail", Type: rulebook.ItemTypeArmor}}
		d.Derived = &character.DerivedStats{HitPoints: 13}
		d.CurrentStage = character.StageReview
		d.FurthestCompleted = character.StageAlignment
	})

	output, err := s.service.UpdateDraft(s.ctx, &creation.UpdateDraftInput{
		DraftID: d.ID,
		Updates: &character.DraftUpdates{ClassKey: strPtr("wizard")},
	})

	s.NoError(err)
	s.Equal("wizard", output.Draft.ClassKey)
	s.Equal([]character.Field{
		character.FieldFeatures,
		character.FieldSpells,
		character.FieldEquipment,
		character.FieldDerived,
	}, output.Cleared)

	s.Nil(output.Draft.FeatureChoices)
	s.Nil(output.Draft.Cantrips)
	s.Nil(output.Draft.Spells)
	s.Nil(output.Draft.EquipmentChoices)
	s.Nil(output.Draft.Inventory)
	s.Nil(output.Draft.Derived)
	// Skills survive; they hang off the class's option list but the
	// cascade table does not reach them.
	s.Equal([]string{"athletics", "intimidation"}, output.Draft.Skills)

	// The watermark retreats to just before class features, the earliest
	// stage whose data was dropped.
	s.Equal(character.StageAbilities, output.Draft.FurthestCompleted)

	invalidated := s.bus.ofType(events.SelectionsInvalidated)
	s.Require().Len(invalidated, 1)
	trigger, _ := invalidated[0].GetStringContext(events.ContextTriggerField)
	s.Equal("class", trigger)
	cleared, _ := invalidated[0].GetStringsContext(events.ContextClearedFields)
	s.Equal([]string{"features", "spells", "equipment", "derived"}, cleared)
}

func (s *ServiceTestSuite) TestUpdateDraft_SameClassDoesNotCascade() {
	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.ClassKey = "fighter"
		d.FeatureChoices = map[string]string{"fighting_style": "defense"}
	})

	output, err := s.service.UpdateDraft(s.ctx, &creation.UpdateDraftInput{
		DraftID: d.ID,
		Updates: &character.DraftUpdates{ClassKey: strPtr("fighter")},
	})

	s.NoError(err)
	s.Empty(output.Cleared)
	s.Equal(map[string]string{"fighting_style": "defense"}, output.Draft.FeatureChoices)
	s.Empty(s.bus.ofType(events.SelectionsInvalidated))
}

func (s *ServiceTestSuite) TestUpdateDraft_RaceSelectionComputesBonuses() {
	s.expectDwarf()
	d := s.seedDraft(nil)

	output, err := s.service.UpdateDraft(s.ctx, &creation.UpdateDraftInput{
		DraftID: d.ID,
		Updates: &character.DraftUpdates{
			RaceKey:    strPtr("dwarf"),
			SubraceKey: strPtr("hill-dwarf"),
		},
	})

	s.NoError(err)
	s.Equal("dwarf", output.Draft.RaceKey)
	s.Equal("hill-dwarf", output.Draft.SubraceKey)
	s.Equal(map[shared.Attribute]int{
		shared.AttributeConstitution: 2,
		shared.AttributeWisdom:       1,
	}, output.Draft.RacialBonuses)
}

func (s *ServiceTestSuite) TestUpdateDraft_RaceChangeDropsStaleSubrace() {
	s.expectDwarf()
	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.RaceKey = "elf"
		d.SubraceKey = "high-elf"
		d.RacialBonuses = map[shared.Attribute]int{
			shared.AttributeDexterity:    2,
			shared.AttributeIntelligence: 1,
		}
	})

	output, err := s.service.UpdateDraft(s.ctx, &creation.UpdateDraftInput{
		DraftID: d.ID,
		Updates: &character.DraftUpdates{RaceKey: strPtr("dwarf")},
	})

	s.NoError(err)
	s.Equal("dwarf", output.Draft.RaceKey)
	s.Empty(output.Draft.SubraceKey)
	s.Equal(map[shared.Attribute]int{shared.AttributeConstitution: 2}, output.Draft.RacialBonuses)
}

func (s *ServiceTestSuite) TestUpdateDraft_UnknownSubraceRejected() {
	s.expectDwarf()
	d := s.seedDraft(nil)

	output, err := s.service.UpdateDraft(s.ctx, &creation.UpdateDraftInput{
		DraftID: d.ID,
		Updates: &character.DraftUpdates{
			RaceKey:    strPtr("dwarf"),
			SubraceKey: strPtr("mountain-dwarf"),
		},
	})

	s.Error(err)
	s.Nil(output)
	s.True(dnderr.IsValidation(err))
	s.Contains(err.Error(), "has no subrace")

	stored, getErr := s.draftRepo.Get(s.ctx, d.ID)
	s.NoError(getErr)
	s.Empty(stored.RaceKey)
}

func (s *ServiceTestSuite) TestUpdateDraft_MethodSwitchResetsScores() {
	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.AbilityMethod = character.AbilityMethodPointBuy
		d.PointBuyScores = fullPointBuy()
	})

	output, err := s.service.UpdateDraft(s.ctx, &creation.UpdateDraftInput{
		DraftID: d.ID,
		Updates: &character.DraftUpdates{
			AbilityMethod: methodPtr(character.AbilityMethodStandardArray),
		},
	})

	s.NoError(err)
	s.Contains(output.Cleared, character.FieldAbilityScores)
	s.Nil(output.Draft.PointBuyScores)
	s.Require().Len(output.Draft.AbilityRolls, 6)
	s.Equal("array_1", output.Draft.AbilityRolls[0].ID)
	s.Equal(15, output.Draft.AbilityRolls[0].Value)
	s.Equal(8, output.Draft.AbilityRolls[5].Value)
	s.Empty(output.Draft.AbilityAssignments)
}

func (s *ServiceTestSuite) TestDeleteDraft() {
	d := s.seedDraft(nil)

	s.NoError(s.service.DeleteDraft(s.ctx, d.ID))

	_, err := s.service.GetDraft(s.ctx, d.ID)
	s.Error(err)
	s.True(dnderr.IsNotFound(err))
	s.Len(s.bus.ofType(events.DraftDeleted), 1)
}

func (s *ServiceTestSuite) TestDeleteDraft_Missing() {
	err := s.service.DeleteDraft(s.ctx, "no-such-draft")

	s.Error(err)
	s.True(dnderr.IsNotFound(err))
	s.Empty(s.bus.ofType(events.DraftDeleted))
}

func (s *ServiceTestSuite) TestListClasses_PassesThrough() {
	s.mockCatalog.EXPECT().ListClasses().Return([]*rulebook.Class{fighterClass(), wizardClass()}, nil)

	classes, err := s.service.ListClasses(s.ctx)

	s.NoError(err)
	s.Len(classes, 2)
	s.Equal("fighter", classes[0].Key)
}

func (s *ServiceTestSuite) TestListClasses_WrapsFailure() {
	s.mockCatalog.EXPECT().ListClasses().Return(nil, errors.New("connection refused"))

	classes, err := s.service.ListClasses(s.ctx)

	s.Error(err)
	s.Nil(classes)
	s.Contains(err.Error(), "failed to list classes")
}

func (s *ServiceTestSuite) TestListCampaigns_RequiresWorld() {
	campaigns, err := s.service.ListCampaigns(s.ctx, "")

	s.Error(err)
	s.Nil(campaigns)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGetCharacter() {
	stored := &character.Character{
		ID:      "char-1",
		OwnerID: "owner-1",
		RealmID: "realm-1",
		Name:    "Bruenor Ironfist",
	}
	s.Require().NoError(s.charRepo.Create(s.ctx, stored))

	char, err := s.service.GetCharacter(s.ctx, "char-1")

	s.NoError(err)
	s.Equal("Bruenor Ironfist", char.Name)
}

func (s *ServiceTestSuite) TestListCharacters_ScopedToOwnerAndRealm() {
	mine := &character.Character{ID: "char-1", OwnerID: "owner-1", RealmID: "realm-1", Name: "Mine"}
	elsewhere := &character.Character{ID: "char-2", OwnerID: "owner-1", RealmID: "realm-2", Name: "Elsewhere"}
	theirs := &character.Character{ID: "char-3", OwnerID: "owner-2", RealmID: "realm-1", Name: "Theirs"}
	for _, c := range []*character.Character{mine, elsewhere, theirs} {
		s.Require().NoError(s.charRepo.Create(s.ctx, c))
	}

	chars, err := s.service.ListCharacters(s.ctx, "owner-1", "realm-1")

	s.NoError(err)
	s.Require().Len(chars, 1)
	s.Equal("Mine", chars[0].Name)
}
