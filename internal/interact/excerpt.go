package interact

// excerptLines is the clamped line cap; overflowTolerance absorbs
// sub-pixel rounding in the measured heights.
const (
	excerptLines      = 3
	overflowTolerance = 1.0
)

// Excerpt clamps a card's excerpt to three lines and offers a
// read-more toggle only when the full text actually overflows the cap.
type Excerpt struct {
	wrapper  Element
	text     MeasuredElement
	button   TextElement
	overflow bool
	expanded bool
}

// newExcerpt measures the excerpt against the line cap. The unclamped
// height is measured by briefly applying the expanded class, then
// reverting.
func newExcerpt(wrapper Element, text MeasuredElement, button TextElement) *Excerpt {
	e := &Excerpt{wrapper: wrapper, text: text, button: button}

	maxHeight := text.LineHeight() * excerptLines
	text.AddClass("is-expanded")
	full := text.ContentHeight()
	text.RemoveClass("is-expanded")

	if full > maxHeight+overflowTolerance {
		e.overflow = true
		wrapper.AddClass("has-overflow")
	}
	return e
}

// Overflowing reports whether the full text exceeds the clamp, i.e.
// whether the toggle is active.
func (e *Excerpt) Overflowing() bool {
	return e.overflow
}

// Expanded reports whether the excerpt is currently unclamped.
func (e *Excerpt) Expanded() bool {
	return e.expanded
}

// Toggle flips between clamped and expanded rendering and updates the
// control label. Non-overflowing excerpts stay permanently clamped.
func (e *Excerpt) Toggle() {
	if !e.overflow {
		return
	}
	e.expanded = !e.expanded
	if e.expanded {
		e.text.AddClass("is-expanded")
		e.button.SetText("Show less")
	} else {
		e.text.RemoveClass("is-expanded")
		e.button.SetText("Read more")
	}
}
