package rulebook

// Alignment is one of the nine classic moral/ethical stances.
type Alignment struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetAlignments returns the nine alignments in grid order.
func GetAlignments() []Alignment {
	return []Alignment{
		{Key: "lawful-good", Name: "Lawful Good", Description: "Acts as a good person is expected or required to act."},
		{Key: "neutral-good", Name: "Neutral Good", Description: "Does the best a good person can do."},
		{Key: "chaotic-good", Name: "Chaotic Good", Description: "Acts as conscience directs, with little regard for expectations."},
		{Key: "lawful-neutral", Name: "Lawful Neutral", Description: "Acts in accordance with law, tradition, or a personal code."},
		{Key: "true-neutral", Name: "True Neutral", Description: "Prefers to avoid moral extremes and sides."},
		{Key: "chaotic-neutral", Name: "Chaotic Neutral", Description: "Follows whims, valuing personal freedom above all."},
		{Key: "lawful-evil", Name: "Lawful Evil", Description: "Takes what they want within the limits of a code or order."},
		{Key: "neutral-evil", Name: "Neutral Evil", Description: "Does whatever they can get away with."},
		{Key: "chaotic-evil", Name: "Chaotic Evil", Description: "Acts with arbitrary violence, spurred by greed or hatred."},
	}
}

// GetAlignment looks up an alignment by key.
func GetAlignment(key string) (Alignment, bool) {
	for _, a := range GetAlignments() {
		if a.Key == key {
			return a, true
		}
	}
	return Alignment{}, false
}
