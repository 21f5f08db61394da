// Package interact implements the widget's client-side behaviors as
// state machines over a minimal element-binding interface, so the same
// logic drives a real page binding or a test fake.
package interact

// Element is the minimal view of a rendered node the controllers mutate.
type Element interface {
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}

// TextElement additionally carries mutable display text.
type TextElement interface {
	Element
	SetText(s string)
	Text() string
}

// ValueElement backs a native form control.
type ValueElement interface {
	Element
	SetValue(v string)
	Value() string
}

// HTMLElement accepts injected markup.
type HTMLElement interface {
	Element
	SetHTML(markup string)
	HTML() string
}

// MeasuredElement exposes the layout measurements overflow detection
// needs. ContentHeight reflects the element's current rendering, so
// measuring the unclamped height requires toggling the expanded class
// first.
type MeasuredElement interface {
	Element
	LineHeight() float64
	ContentHeight() float64
}

// Animator is an optional visual-effects capability. Implementations
// must invoke done when the transition completes; correctness never
// depends on when (or whether) the visuals actually run.
type Animator interface {
	In(target Element, done func())
	Out(target Element, done func())
}

// NoopAnimator completes every transition immediately.
type NoopAnimator struct{}

func (NoopAnimator) In(_ Element, done func())  { done() }
func (NoopAnimator) Out(_ Element, done func()) { done() }
