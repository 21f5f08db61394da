package interact

import "github.com/rtgeorge/resourceboard/internal/player"

// ModalState tracks the shared video modal through its lifecycle.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpening
	ModalOpen
	ModalClosing
)

// Modal is the single shared video overlay. Opening resolves the video
// URL to embed markup and injects it; closing clears it again. The
// entrance/exit animation is best-effort: with the no-op animator both
// transitions complete immediately.
type Modal struct {
	overlay Element
	content Element
	video   HTMLElement
	anim    Animator
	state   ModalState
}

// State returns the modal's current lifecycle state.
func (m *Modal) State() ModalState {
	return m.state
}

// Open shows the modal playing the given video URL. An empty URL is a
// no-op. Opening while already open just replaces the content.
func (m *Modal) Open(url string) {
	if url == "" {
		return
	}
	m.video.SetHTML(player.Resolve(url))

	if m.state == ModalOpen || m.state == ModalOpening {
		return
	}

	m.overlay.AddClass("is-active")
	m.state = ModalOpening
	m.anim.In(m.content, func() {
		if m.state == ModalOpening {
			m.state = ModalOpen
		}
	})
}

// Close hides the modal and clears the injected content once the exit
// animation completes. A re-open during the exit supersedes the pending
// cleanup.
func (m *Modal) Close() {
	if m.state == ModalClosed || m.state == ModalClosing {
		return
	}
	m.state = ModalClosing
	m.anim.Out(m.content, func() {
		if m.state != ModalClosing {
			return
		}
		m.overlay.RemoveClass("is-active")
		m.video.SetHTML("")
		m.state = ModalClosed
	})
}

// BackdropClick closes the modal only when the click landed exactly on
// the backdrop, not inside the content.
func (m *Modal) BackdropClick(target Element) {
	if target == m.overlay {
		m.Close()
	}
}
