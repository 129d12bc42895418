package component

// Input stores per-frame input state for an entity. MoveX/MoveY are screen
// relative axes in [-1,1]; MoveY is positive toward the top of the screen.
type Input struct {
	MoveX  float64
	MoveY  float64
	Attack bool
}

var InputComponent = NewComponent[Input]()
