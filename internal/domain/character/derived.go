package character

import (
	"regexp"
	"strconv"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// Derived-stat defaults used when the draft is not far enough along to
// supply real inputs. The engine runs speculatively for previews, so it
// degrades instead of erroring.
const (
	DefaultArmorClass      = 10
	DefaultSpeed           = 30
	ProficiencyBonusLevel1 = 2
	ArmoredBaseArmorClass  = 12
	ArmoredDexterityCap    = 2
	ShieldArmorClassBonus  = 2
)

// DerivedStats are the computed values on a character sheet. They are a
// pure function of the draft's selections and are never edited
// directly.
type DerivedStats struct {
	HitPoints        int `json:"hit_points"`
	ArmorClass       int `json:"armor_class"`
	Initiative       int `json:"initiative"`
	ProficiencyBonus int `json:"proficiency_bonus"`
	Speed            int `json:"speed"`
}

var feetPattern = regexp.MustCompile(`(\d+)\s*(?:feet|ft)`)

// ComputeDerived folds ability scores, class hit die, race speed, and
// equipped armor into the sheet's derived block. Class and race may be
// nil while earlier stages are incomplete; each value then falls back
// to its default.
func ComputeDerived(draft *CharacterDraft, class *rulebook.Class, race *rulebook.Race) DerivedStats {
	stats := DerivedStats{
		ArmorClass:       DefaultArmorClass,
		ProficiencyBonus: ProficiencyBonusLevel1,
		Speed:            DefaultSpeed,
	}
	if draft == nil {
		return stats
	}

	final := draft.FinalScores()

	conMod := 0
	if con, ok := final[shared.AttributeConstitution]; ok {
		conMod = Modifier(con)
	}
	dexMod := 0
	if dex, ok := final[shared.AttributeDexterity]; ok {
		dexMod = Modifier(dex)
	}

	if class != nil {
		stats.HitPoints = class.HitDie + conMod
	}

	stats.ArmorClass = DefaultArmorClass + dexMod
	if draft.HasBodyArmor() {
		stats.ArmorClass = ArmoredBaseArmorClass + min(ArmoredDexterityCap, dexMod)
	}
	if draft.HasShield() {
		stats.ArmorClass += ShieldArmorClassBonus
	}

	stats.Initiative = dexMod

	if race != nil {
		stats.Speed = raceSpeed(race)
	}

	return stats
}

// raceSpeed prefers the catalog's numeric speed, then a feet figure
// parsed out of the race's trait text, then the default.
func raceSpeed(race *rulebook.Race) int {
	if race.Speed > 0 {
		return race.Speed
	}
	for _, trait := range race.Traits {
		if m := feetPattern.FindStringSubmatch(trait.Description); m != nil {
			if speed, err := strconv.Atoi(m[1]); err == nil {
				return speed
			}
		}
	}
	return DefaultSpeed
}
