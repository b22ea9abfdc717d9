package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// RollResult captures a single dice roll with its individual dice
type RollResult struct {
	Total   int   // Sum of kept dice plus bonus
	Rolls   []int // Individual dice in the order they were rolled
	Dropped int   // Value of the die removed by RollDropLowest, 0 otherwise
	Bonus   int
	Count   int
	Sides   int
}

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollDropLowest rolls count dice and discards the single lowest
	// before totaling, as in 4d6-drop-lowest ability generation
	RollDropLowest(count, sides int) (*RollResult, error)
}
