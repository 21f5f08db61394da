package interact

// fakeElement implements every element-binding interface for tests.
type fakeElement struct {
	classes map[string]bool
	text    string
	value   string
	html    string

	lineHeight    float64
	clampedHeight float64
	fullHeight    float64
}

func newFakeElement() *fakeElement {
	return &fakeElement{classes: make(map[string]bool)}
}

func (f *fakeElement) AddClass(name string)    { f.classes[name] = true }
func (f *fakeElement) RemoveClass(name string) { delete(f.classes, name) }
func (f *fakeElement) HasClass(name string) bool {
	return f.classes[name]
}

func (f *fakeElement) SetText(s string) { f.text = s }
func (f *fakeElement) Text() string     { return f.text }

func (f *fakeElement) SetValue(v string) { f.value = v }
func (f *fakeElement) Value() string     { return f.value }

func (f *fakeElement) SetHTML(markup string) { f.html = markup }
func (f *fakeElement) HTML() string          { return f.html }

func (f *fakeElement) LineHeight() float64 { return f.lineHeight }

// ContentHeight reflects the current rendering: the full height while
// the expanded class is applied, the clamped height otherwise.
func (f *fakeElement) ContentHeight() float64 {
	if f.classes["is-expanded"] {
		return f.fullHeight
	}
	return f.clampedHeight
}

// recordingAnimator captures done callbacks so tests can complete
// transitions manually, simulating an asynchronous animation library.
type recordingAnimator struct {
	pendingIn  []func()
	pendingOut []func()
}

func (a *recordingAnimator) In(_ Element, done func())  { a.pendingIn = append(a.pendingIn, done) }
func (a *recordingAnimator) Out(_ Element, done func()) { a.pendingOut = append(a.pendingOut, done) }

func (a *recordingAnimator) finishIn() {
	for _, done := range a.pendingIn {
		done()
	}
	a.pendingIn = nil
}

func (a *recordingAnimator) finishOut() {
	for _, done := range a.pendingOut {
		done()
	}
	a.pendingOut = nil
}
