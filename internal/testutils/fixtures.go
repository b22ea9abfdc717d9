package testutils

import (
	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// CreateTestRace creates a test race entity
func CreateTestRace(key, name string) *rulebook.Race {
	return &rulebook.Race{
		Key:   key,
		Name:  name,
		Speed: 30,
		AbilityBonuses: []*shared.AbilityBonus{
			{
				Attribute: shared.AttributeStrength,
				Bonus:     2,
			},
		},
	}
}

// CreateTestClass creates a test class entity
func CreateTestClass(key, name string, hitDie int) *rulebook.Class {
	return &rulebook.Class{
		Key:    key,
		Name:   name,
		HitDie: hitDie,
		SkillChoice: rulebook.SkillChoice{
			Count:   2,
			Options: []string{"athletics", "intimidation", "survival"},
		},
		DefaultEquipment: []rulebook.ItemRef{
			{Key: "explorers-pack", Name: "Explorer's Pack", Type: rulebook.ItemTypePack},
		},
		EquipmentChoices: []rulebook.EquipmentChoice{
			{
				ID:     key + "-equipment-0",
				Prompt: "(a) chain mail or (b) leather armor",
				Branches: []rulebook.EquipmentBranch{
					{Label: "group", Items: []rulebook.ItemRef{{Key: "chain-mail", Name: "Chain Mail"}}},
					{Label: "or", Items: []rulebook.ItemRef{{Key: "leather-armor", Name: "Leather Armor"}}},
				},
			},
		},
	}
}

// CreateTestDraft creates a draft far enough along to exercise persistence
func CreateTestDraft(id, ownerID, realmID string) *character.CharacterDraft {
	return &character.CharacterDraft{
		ID:           id,
		OwnerID:      ownerID,
		RealmID:      realmID,
		Status:       shared.CharacterStatusDraft,
		WorldKey:     "forgotten-realms",
		CampaignKey:  "lost-mine-of-phandelver",
		Path:         character.PathCustom,
		ClassKey:     "fighter",
		RaceKey:      "dwarf",
		CurrentStage: character.StageIdentity,
		FurthestCompleted: character.StageClass,
	}
}

// CreateTestCharacter creates a fully formed test character
func CreateTestCharacter(id, ownerID, realmID, name string) *character.Character {
	return &character.Character{
		ID:          id,
		OwnerID:     ownerID,
		RealmID:     realmID,
		Name:        name,
		Level:       1,
		Status:      shared.CharacterStatusActive,
		WorldKey:    "forgotten-realms",
		CampaignKey: "lost-mine-of-phandelver",
		RaceKey:     "dwarf",
		RaceName:    "Dwarf",
		ClassKey:    "fighter",
		ClassName:   "Fighter",
		BackgroundKey: "soldier",
		AlignmentKey:  "lawful-good",
		Attributes: map[shared.Attribute]*character.AbilityScore{
			shared.AttributeStrength:     character.NewAbilityScore(16),
			shared.AttributeDexterity:    character.NewAbilityScore(14),
			shared.AttributeConstitution: character.NewAbilityScore(15),
			shared.AttributeIntelligence: character.NewAbilityScore(10),
			shared.AttributeWisdom:       character.NewAbilityScore(12),
			shared.AttributeCharisma:     character.NewAbilityScore(8),
		},
		Skills: []string{"athletics", "intimidation"},
		Inventory: []rulebook.ItemRef{
			{Key: "chain-mail", Name: "Chain Mail", Type: rulebook.ItemTypeArmor},
			{Key: "longsword", Name: "Longsword", Type: rulebook.ItemTypeWeapon},
			{Key: "explorers-pack", Name: "Explorer's Pack", Type: rulebook.ItemTypePack},
		},
		HitPoints:        12,
		MaxHitPoints:     12,
		ArmorClass:       16,
		Initiative:       2,
		ProficiencyBonus: 2,
		Speed:            25,
	}
}
