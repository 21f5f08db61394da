package interact

// Option is one selectable entry in a styled dropdown.
type Option struct {
	El    Element
	Value string
	Label string
}

// Dropdown replaces a native select with a styled popup list while
// keeping the hidden native control in sync, so form submission always
// reads the most recently selected value.
type Dropdown struct {
	root    Element
	display TextElement
	hidden  ValueElement
	options []Option
	ui      *UI
}

// IsOpen reports whether the popup list is showing.
func (d *Dropdown) IsOpen() bool {
	return d.root.HasClass("is-open")
}

// ToggleOpen closes every other open dropdown on the page, then toggles
// this one. At most one dropdown is open at a time.
func (d *Dropdown) ToggleOpen() {
	for _, other := range d.ui.dropdowns {
		if other != d {
			other.close()
		}
	}
	if d.IsOpen() {
		d.close()
	} else {
		d.root.AddClass("is-open")
	}
}

// Select picks the option at index i: the display text, the hidden
// control's value and the single selected mark all update, and the
// dropdown closes. Out-of-range indices are ignored.
func (d *Dropdown) Select(i int) {
	if i < 0 || i >= len(d.options) {
		return
	}
	opt := d.options[i]
	d.display.SetText(opt.Label)
	d.hidden.SetValue(opt.Value)
	for _, o := range d.options {
		o.El.RemoveClass("is-selected")
	}
	opt.El.AddClass("is-selected")
	d.close()
}

func (d *Dropdown) close() {
	d.root.RemoveClass("is-open")
}
