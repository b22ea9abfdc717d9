package shared

// AbilityBonus is a racial adjustment applied on top of a base ability
// score. The base score is never mutated; bonuses are folded in when
// final scores are computed.
type AbilityBonus struct {
	Attribute Attribute `json:"attribute"`
	Bonus     int       `json:"bonus"`
}
