package wizard

// Breadcrumb is one entry of the step trail shown above the wizard.
type Breadcrumb struct {
	Label     string
	State     State
	Reachable bool
	Active    bool
}

var breadcrumbLabels = [...]string{
	AwaitingCore:   "Step 1",
	AwaitingMiddle: "Step 2",
	AwaitingOuter:  "Step 3",
	Summary:        "Summary",
}

// Breadcrumbs returns the four steps in order. Every step up to and including
// the active one is reachable. Breadcrumbs describe the trail only; nothing
// here changes the selection.
func (c *Controller) Breadcrumbs() []Breadcrumb {
	active := c.State()
	crumbs := make([]Breadcrumb, 0, len(breadcrumbLabels))
	for s, label := range breadcrumbLabels {
		st := State(s)
		crumbs = append(crumbs, Breadcrumb{
			Label:     label,
			State:     st,
			Reachable: st <= active,
			Active:    st == active,
		})
	}
	return crumbs
}
