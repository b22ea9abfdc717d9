package rulebook

// SpellReference is a lightweight reference to a spell
type SpellReference struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Spell is a catalog spell entry. Level 0 is a cantrip.
type Spell struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Level       int      `json:"level"`
	School      string   `json:"school,omitempty"`
	Description string   `json:"description,omitempty"`
	Classes     []string `json:"classes"`
}

// EligibleFor reports whether the given class may learn this spell.
func (s *Spell) EligibleFor(classKey string) bool {
	for _, c := range s.Classes {
		if c == classKey {
			return true
		}
	}
	return false
}
