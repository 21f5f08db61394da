package interact

// UI owns the page-wide interaction state: the set of bound dropdowns,
// the bound excerpts and the single shared modal. One UI per page view
// keeps independent widget instances isolated.
type UI struct {
	anim      Animator
	dropdowns []*Dropdown
	excerpts  []*Excerpt
	modal     *Modal
	bound     map[Element]bool
}

// NewUI creates an empty UI context. A nil animator falls back to the
// immediate no-op animator.
func NewUI(anim Animator) *UI {
	if anim == nil {
		anim = NoopAnimator{}
	}
	return &UI{anim: anim, bound: make(map[Element]bool)}
}

// BindDropdown attaches dropdown behavior to the given elements. Binding
// the same root twice returns the existing instance, so initialization
// is safe to repeat.
func (ui *UI) BindDropdown(root Element, display TextElement, hidden ValueElement, options []Option) *Dropdown {
	if ui.bound[root] {
		for _, d := range ui.dropdowns {
			if d.root == root {
				return d
			}
		}
	}
	d := &Dropdown{root: root, display: display, hidden: hidden, options: options, ui: ui}
	ui.dropdowns = append(ui.dropdowns, d)
	ui.bound[root] = true
	return d
}

// BindExcerpt attaches overflow detection to one card's excerpt block.
// Cards missing either the excerpt or the toggle element are skipped.
func (ui *UI) BindExcerpt(wrapper Element, text MeasuredElement, button TextElement) *Excerpt {
	if wrapper == nil || text == nil || button == nil {
		return nil
	}
	if ui.bound[wrapper] {
		for _, e := range ui.excerpts {
			if e.wrapper == wrapper {
				return e
			}
		}
	}
	e := newExcerpt(wrapper, text, button)
	ui.excerpts = append(ui.excerpts, e)
	ui.bound[wrapper] = true
	return e
}

// EnsureModal returns the page's shared modal, creating it from the
// given elements on first use and reusing it afterwards.
func (ui *UI) EnsureModal(overlay, content Element, video HTMLElement) *Modal {
	if ui.modal == nil {
		ui.modal = &Modal{overlay: overlay, content: content, video: video, anim: ui.anim}
	}
	return ui.modal
}

// Modal returns the shared modal, or nil before EnsureModal ran.
func (ui *UI) Modal() *Modal {
	return ui.modal
}

// PlayVideo opens the shared modal for a video card's URL.
func (ui *UI) PlayVideo(url string) {
	if ui.modal != nil {
		ui.modal.Open(url)
	}
}

// OutsideClick handles a page-wide click outside any dropdown: every
// open instance closes.
func (ui *UI) OutsideClick() {
	for _, d := range ui.dropdowns {
		d.close()
	}
}

// EscapePressed closes all open dropdowns. The modal has no escape
// binding; it only closes via its close control or backdrop.
func (ui *UI) EscapePressed() {
	for _, d := range ui.dropdowns {
		d.close()
	}
}
