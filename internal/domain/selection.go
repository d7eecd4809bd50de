package domain

// SelectionKey names a persisted in-progress selection field.
type SelectionKey string

const (
	KeyCore   SelectionKey = "coreEmotion"
	KeyMiddle SelectionKey = "middleEmotion"
	KeyOuter  SelectionKey = "outerEmotion"

	// KeyCheckIn holds the ID of the check-in recorded for the current walk.
	KeyCheckIn SelectionKey = "checkInID"
)
