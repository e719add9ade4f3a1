package grapple

// Selection is the currently highlighted candidate, if any.
type Selection struct {
	Point Point
	OK    bool
}

// HighlightSink receives selection changes. Implementations restore prev to
// its original look before highlighting next.
type HighlightSink interface {
	SelectionChanged(prev, next Selection)
}

type HighlightSinkFunc func(prev, next Selection)

func (f HighlightSinkFunc) SelectionChanged(prev, next Selection) {
	f(prev, next)
}

type nopHighlight struct{}

func (nopHighlight) SelectionChanged(prev, next Selection) {}
