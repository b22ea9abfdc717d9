package rulebook

// CasterKind distinguishes how a class acquires level-1 spells.
type CasterKind string

const (
	// CasterNone marks classes with no level-1 spellcasting.
	CasterNone CasterKind = "none"

	// CasterKnown marks classes that learn a fixed number of spells.
	CasterKnown CasterKind = "known"

	// CasterPrepared marks classes that prepare key-ability-modifier + 1
	// spells, minimum one.
	CasterPrepared CasterKind = "prepared"
)

// SpellProgression is a class's level-1 spellcasting shape.
type SpellProgression struct {
	Kind     CasterKind `json:"kind"`
	Cantrips int        `json:"cantrips"`

	// SpellsKnown applies only to known casters; prepared casters derive
	// their count from the key ability at selection time.
	SpellsKnown int `json:"spells_known"`
}

var spellProgressions = map[string]SpellProgression{
	"bard":     {Kind: CasterKnown, Cantrips: 2, SpellsKnown: 4},
	"cleric":   {Kind: CasterPrepared, Cantrips: 3},
	"druid":    {Kind: CasterPrepared, Cantrips: 2},
	"sorcerer": {Kind: CasterKnown, Cantrips: 4, SpellsKnown: 2},
	"warlock":  {Kind: CasterKnown, Cantrips: 2, SpellsKnown: 2},
	"wizard":   {Kind: CasterKnown, Cantrips: 3, SpellsKnown: 6},
}

// ProgressionFor returns the level-1 spell progression for a class key.
// Classes absent from the table (including rangers and paladins, whose
// casting starts at level 2) report no spellcasting.
func ProgressionFor(classKey string) SpellProgression {
	if p, ok := spellProgressions[classKey]; ok {
		return p
	}
	return SpellProgression{Kind: CasterNone}
}

// IsSpellcaster reports whether a class picks any spells at level 1.
func IsSpellcaster(classKey string) bool {
	return ProgressionFor(classKey).Kind != CasterNone
}
