package component

// WhiteFlash tints an enemy white after it takes damage. Revert is the
// pending world timer that clears it; the timer dies with the entity.
type WhiteFlash struct {
	On     bool
	Revert uint64
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
