package snake

import "math/rand"

// Food is the regular pickup. There is exactly one at a time.
type Food struct {
	Position Cell
}

// SpawnFood places food on a random cell of the field.
func SpawnFood(field Field, rng *rand.Rand) Food {
	return Food{Position: field.RandomCell(rng)}
}

// Eaten reports whether the head sits on the food.
func (f Food) Eaten(head Cell) bool {
	return f.Position == head
}
