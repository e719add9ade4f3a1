package component

// GrapplePoint marks an entity the grapple can hook onto. Its position comes
// from the entity's Transform.
type GrapplePoint struct {
	ID string
}

var GrapplePointComponent = NewComponent[GrapplePoint]()

// Highlight is toggled when the grapple selects or drops a point.
type Highlight struct {
	On bool
	// Changes counts transitions, mainly for tests and debug output.
	Changes int
}

var HighlightComponent = NewComponent[Highlight]()
