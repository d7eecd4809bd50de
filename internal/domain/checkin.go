package domain

import "time"

// CheckIn is one completed walk through the wheel.
type CheckIn struct {
	ID          string
	Core        string
	Middle      string
	Outer       string
	Advised     bool
	CompletedAt time.Time
}

// Label returns the full path of the check-in, core first.
func (c *CheckIn) Label() string {
	return c.Core + " › " + c.Middle + " › " + c.Outer
}
