package domain

// Swatch is the display color assigned to a core label.
type Swatch struct {
	Label string
	Hex   string
}
