package character

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// AbilityMethod selects how the six base scores are generated. The
// three methods are mutually exclusive per draft; switching resets the
// scores to the new method's start state.
type AbilityMethod string

const (
	AbilityMethodUnset         AbilityMethod = ""
	AbilityMethodPointBuy      AbilityMethod = "point-buy"
	AbilityMethodStandardArray AbilityMethod = "standard-array"
	AbilityMethodDiceRoll      AbilityMethod = "dice-roll"
)

// CharacterDraft is the single mutable aggregate for one creation
// session. Every field is written through ApplyUpdates so the cascade
// table runs on each change; nothing else mutates a draft.
type CharacterDraft struct {
	ID      string                 `json:"id"`
	OwnerID string                 `json:"owner_id"`
	RealmID string                 `json:"realm_id"`
	Status  shared.CharacterStatus `json:"status"`

	// Selections
	WorldKey      string `json:"world_key,omitempty"`
	CampaignKey   string `json:"campaign_key,omitempty"`
	Path          Path   `json:"path,omitempty"`
	PremadeKey    string `json:"premade_key,omitempty"`
	ClassKey      string `json:"class_key,omitempty"`
	RaceKey       string `json:"race_key,omitempty"`
	SubraceKey    string `json:"subrace_key,omitempty"`
	BackgroundKey string `json:"background_key,omitempty"`
	AlignmentKey  string `json:"alignment_key,omitempty"`
	Name          string `json:"name,omitempty"`
	Gender        string `json:"gender,omitempty"`
	Description   string `json:"description,omitempty"`

	// Quantitative. PointBuyScores carries the working spread for the
	// point-buy method; AbilityRolls plus AbilityAssignments carry the
	// roll-to-ability bijection for dice and standard array. Racial
	// bonuses live beside the base values and never mutate them.
	AbilityMethod      AbilityMethod               `json:"ability_method,omitempty"`
	PointBuyScores     map[shared.Attribute]int    `json:"point_buy_scores,omitempty"`
	AbilityRolls       []AbilityRoll               `json:"ability_rolls,omitempty"`
	AbilityAssignments map[shared.Attribute]string `json:"ability_assignments,omitempty"`
	RacialBonuses      map[shared.Attribute]int    `json:"racial_bonuses,omitempty"`

	// Composite selections
	Skills           []string           `json:"skills,omitempty"`
	FeatureChoices   map[string]string  `json:"feature_choices,omitempty"`
	Cantrips         []string           `json:"cantrips,omitempty"`
	Spells           []string           `json:"spells,omitempty"`
	EquipmentChoices map[string]int     `json:"equipment_choices,omitempty"`
	Inventory        []rulebook.ItemRef `json:"inventory,omitempty"`

	// Derived values are recomputed from the selections above; they are
	// cleared on invalidation and never hand-edited.
	Derived *DerivedStats `json:"derived,omitempty"`

	// Progress
	CurrentStage      Stage `json:"current_stage"`
	FurthestCompleted Stage `json:"furthest_completed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DraftUpdates stages field changes for one ApplyUpdates call. Nil
// pointers and nil maps/slices mean "leave unchanged"; a pointer to the
// zero value clears the field.
type DraftUpdates struct {
	WorldKey      *string
	CampaignKey   *string
	Path          *Path
	PremadeKey    *string
	ClassKey      *string
	RaceKey       *string
	SubraceKey    *string
	BackgroundKey *string
	AlignmentKey  *string
	Name          *string
	Gender        *string
	Description   *string

	AbilityMethod      *AbilityMethod
	PointBuyScores     map[shared.Attribute]int
	AbilityRolls       []AbilityRoll
	AbilityAssignments map[shared.Attribute]string
	RacialBonuses      map[shared.Attribute]int

	Skills           []string
	FeatureChoices   map[string]string
	Cantrips         []string
	Spells           []string
	EquipmentChoices map[string]int
	Inventory        []rulebook.ItemRef
}

// Field names the draft's cascade-relevant members.
type Field string

const (
	FieldPath          Field = "path"
	FieldPremade       Field = "premade"
	FieldClass         Field = "class"
	FieldRace          Field = "race"
	FieldSubrace       Field = "subrace"
	FieldRacialBonuses Field = "racial_bonuses"
	FieldAbilityMethod Field = "ability_method"
	FieldAbilityScores Field = "ability_scores"
	FieldFeatures      Field = "features"
	FieldSpells        Field = "spells"
	FieldSkills        Field = "skills"
	FieldEquipment     Field = "equipment"
	FieldDerived       Field = "derived"
	FieldCustomBuild   Field = "custom_build"
)

// cascadeTable maps each trigger field to the fields cleared when its
// value changes. Invalidation always runs through this table, never ad
// hoc at call sites.
var cascadeTable = map[Field][]Field{
	FieldClass:         {FieldFeatures, FieldSpells, FieldEquipment, FieldDerived},
	FieldRace:          {FieldRacialBonuses, FieldDerived, FieldSubrace},
	FieldAbilityMethod: {FieldAbilityScores, FieldDerived},
	FieldPath:          {FieldPremade, FieldCustomBuild},
}

// fieldStage maps cleared fields to the stage whose completion they
// represent, so invalidation can pull the watermark back far enough to
// force a redo.
var fieldStage = map[Field]Stage{
	FieldPremade:       StagePremadeSelect,
	FieldClass:         StageClass,
	FieldRace:          StageIdentity,
	FieldSubrace:       StageIdentity,
	FieldRacialBonuses: StageIdentity,
	FieldAbilityMethod: StageAbilities,
	FieldAbilityScores: StageAbilities,
	FieldFeatures:      StageClassFeatures,
	FieldSpells:        StageSpells,
	FieldSkills:        StageSkills,
	FieldEquipment:     StageEquipment,
	FieldCustomBuild:   StageClass,
}

// NewDraft creates an empty draft positioned at the first stage.
func NewDraft(id, ownerID, realmID string, now time.Time) *CharacterDraft {
	return &CharacterDraft{
		ID:           id,
		OwnerID:      ownerID,
		RealmID:      realmID,
		Status:       shared.CharacterStatusDraft,
		CurrentStage: StageWorld,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ApplyUpdates merges staged fields into the draft. For every trigger
// field whose incoming value differs from the current one, the cascade
// table's dependents are cleared before the new value lands, and the
// watermark retreats past the earliest stage that now needs redoing.
// The returned slice names the fields the cascade cleared, in table
// order, so callers can announce the invalidation.
func (d *CharacterDraft) ApplyUpdates(u *DraftUpdates) []Field {
	if u == nil {
		return nil
	}

	var cleared []Field
	if u.Path != nil && *u.Path != d.Path {
		cleared = append(cleared, d.cascade(FieldPath)...)
		d.Path = *u.Path
	}
	if u.ClassKey != nil && *u.ClassKey != d.ClassKey {
		cleared = append(cleared, d.cascade(FieldClass)...)
		d.ClassKey = *u.ClassKey
	}
	if u.RaceKey != nil && *u.RaceKey != d.RaceKey {
		cleared = append(cleared, d.cascade(FieldRace)...)
		d.RaceKey = *u.RaceKey
	}
	if u.AbilityMethod != nil && *u.AbilityMethod != d.AbilityMethod {
		cleared = append(cleared, d.cascade(FieldAbilityMethod)...)
		d.AbilityMethod = *u.AbilityMethod
		d.resetAbilityScores()
	}

	if u.WorldKey != nil {
		d.WorldKey = *u.WorldKey
	}
	if u.CampaignKey != nil {
		d.CampaignKey = *u.CampaignKey
	}
	if u.PremadeKey != nil {
		d.PremadeKey = *u.PremadeKey
	}
	if u.SubraceKey != nil {
		d.SubraceKey = *u.SubraceKey
	}
	if u.BackgroundKey != nil {
		d.BackgroundKey = *u.BackgroundKey
	}
	if u.AlignmentKey != nil {
		d.AlignmentKey = *u.AlignmentKey
	}
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Gender != nil {
		d.Gender = *u.Gender
	}
	if u.Description != nil {
		d.Description = *u.Description
	}

	if u.PointBuyScores != nil {
		d.PointBuyScores = u.PointBuyScores
	}
	if u.AbilityRolls != nil {
		d.AbilityRolls = u.AbilityRolls
	}
	if u.AbilityAssignments != nil {
		d.AbilityAssignments = u.AbilityAssignments
	}
	if u.RacialBonuses != nil {
		d.RacialBonuses = u.RacialBonuses
	}

	if u.Skills != nil {
		d.Skills = u.Skills
	}
	if u.FeatureChoices != nil {
		d.FeatureChoices = u.FeatureChoices
	}
	if u.Cantrips != nil {
		d.Cantrips = u.Cantrips
	}
	if u.Spells != nil {
		d.Spells = u.Spells
	}
	if u.EquipmentChoices != nil {
		d.EquipmentChoices = u.EquipmentChoices
	}
	if u.Inventory != nil {
		d.Inventory = u.Inventory
	}

	return cleared
}

// cascade clears the trigger field's dependents and retreats the
// watermark to just before the earliest stage whose data was dropped.
// It returns the cleared fields in table order.
func (d *CharacterDraft) cascade(trigger Field) []Field {
	earliest := -1
	deps := cascadeTable[trigger]
	for _, dep := range deps {
		d.clearField(dep)
		if stage, ok := fieldStage[dep]; ok {
			idx := StageIndex(d.Path, stage)
			if idx >= 0 && (earliest == -1 || idx < earliest) {
				earliest = idx
			}
		}
	}
	if earliest > 0 {
		d.lowerWatermark(StageSequence(d.Path)[earliest-1])
	} else if earliest == 0 {
		d.FurthestCompleted = ""
	}
	return deps
}

// clearField resets one field to unset. Only fields reachable from the
// cascade table appear here.
func (d *CharacterDraft) clearField(f Field) {
	switch f {
	case FieldPremade:
		d.PremadeKey = ""
	case FieldSubrace:
		d.SubraceKey = ""
	case FieldRacialBonuses:
		d.RacialBonuses = nil
	case FieldAbilityScores:
		d.PointBuyScores = nil
		d.AbilityRolls = nil
		d.AbilityAssignments = nil
	case FieldFeatures:
		d.FeatureChoices = nil
	case FieldSpells:
		d.Cantrips = nil
		d.Spells = nil
	case FieldSkills:
		d.Skills = nil
	case FieldEquipment:
		d.EquipmentChoices = nil
		d.Inventory = nil
	case FieldDerived:
		d.Derived = nil
	case FieldCustomBuild:
		d.ClassKey = ""
		d.RaceKey = ""
		d.SubraceKey = ""
		d.BackgroundKey = ""
		d.AlignmentKey = ""
		d.Name = ""
		d.Gender = ""
		d.Description = ""
		d.AbilityMethod = AbilityMethodUnset
		d.PointBuyScores = nil
		d.AbilityRolls = nil
		d.AbilityAssignments = nil
		d.RacialBonuses = nil
		d.clearField(FieldFeatures)
		d.clearField(FieldSpells)
		d.clearField(FieldSkills)
		d.clearField(FieldEquipment)
		d.clearField(FieldDerived)
	}
}

// resetAbilityScores places the scores in the new method's start state.
func (d *CharacterDraft) resetAbilityScores() {
	switch d.AbilityMethod {
	case AbilityMethodPointBuy:
		scores := make(map[shared.Attribute]int, len(shared.Attributes))
		for _, attr := range shared.Attributes {
			scores[attr] = PointBuyMin
		}
		d.PointBuyScores = scores
	case AbilityMethodStandardArray:
		values := StandardArray()
		rolls := make([]AbilityRoll, len(values))
		for i, v := range values {
			rolls[i] = AbilityRoll{ID: arrayRollID(i), Value: v}
		}
		d.AbilityRolls = rolls
		d.AbilityAssignments = nil
	case AbilityMethodDiceRoll:
		d.AbilityRolls = nil
		d.AbilityAssignments = nil
	}
}

func arrayRollID(i int) string {
	return fmt.Sprintf("array_%d", i+1)
}

// lowerWatermark pulls the watermark back to at most the given stage.
func (d *CharacterDraft) lowerWatermark(stage Stage) {
	if d.FurthestCompleted == "" {
		return
	}
	cur := StageIndex(d.Path, d.FurthestCompleted)
	target := StageIndex(d.Path, stage)
	if target < 0 || (cur >= 0 && cur <= target) {
		return
	}
	d.FurthestCompleted = stage
}

// MarkCompleted raises the watermark to at least the given stage.
func (d *CharacterDraft) MarkCompleted(stage Stage) {
	idx := StageIndex(d.Path, stage)
	if idx < 0 {
		return
	}
	if d.FurthestCompleted == "" || StageIndex(d.Path, d.FurthestCompleted) < idx {
		d.FurthestCompleted = stage
	}
}

// BaseScore returns the working base value for an ability under the
// active generation method, and whether one is set.
func (d *CharacterDraft) BaseScore(attr shared.Attribute) (int, bool) {
	switch d.AbilityMethod {
	case AbilityMethodPointBuy:
		score, ok := d.PointBuyScores[attr]
		return score, ok
	case AbilityMethodStandardArray, AbilityMethodDiceRoll:
		rollID, ok := d.AbilityAssignments[attr]
		if !ok {
			return 0, false
		}
		for _, roll := range d.AbilityRolls {
			if roll.ID == rollID {
				return roll.Value, true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// FinalScores folds racial bonuses onto the base scores. Abilities with
// no base value yet are omitted.
func (d *CharacterDraft) FinalScores() map[shared.Attribute]int {
	out := make(map[shared.Attribute]int)
	for _, attr := range shared.Attributes {
		base, ok := d.BaseScore(attr)
		if !ok {
			continue
		}
		out[attr] = base + d.RacialBonuses[attr]
	}
	return out
}

// AllScoresSet reports whether every ability has a base value.
func (d *CharacterDraft) AllScoresSet() bool {
	for _, attr := range shared.Attributes {
		if _, ok := d.BaseScore(attr); !ok {
			return false
		}
	}
	return true
}

// HasBodyArmor reports whether the resolved inventory includes body
// armor.
func (d *CharacterDraft) HasBodyArmor() bool {
	for _, item := range d.Inventory {
		if item.Type == rulebook.ItemTypeArmor {
			return true
		}
	}
	return false
}

// HasShield reports whether the resolved inventory includes a shield.
func (d *CharacterDraft) HasShield() bool {
	for _, item := range d.Inventory {
		if item.Type == rulebook.ItemTypeShield {
			return true
		}
	}
	return false
}
