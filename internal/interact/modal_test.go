package interact

import (
	"strings"
	"testing"
)

func newTestModal(ui *UI) (*Modal, *fakeElement, *fakeElement) {
	overlay := newFakeElement()
	content := newFakeElement()
	video := newFakeElement()
	return ui.EnsureModal(overlay, content, video), overlay, video
}

func TestModalOpenClose(t *testing.T) {
	ui := NewUI(nil)
	m, overlay, video := newTestModal(ui)

	m.Open("https://youtu.be/abcdef12345")
	if m.State() != ModalOpen {
		t.Fatalf("state = %v, want open", m.State())
	}
	if !overlay.HasClass("is-active") {
		t.Error("overlay should be active")
	}
	if !strings.Contains(video.HTML(), "youtube.com/embed/abcdef12345") {
		t.Errorf("injected markup = %q", video.HTML())
	}

	m.Close()
	if m.State() != ModalClosed {
		t.Fatalf("state = %v, want closed", m.State())
	}
	if overlay.HasClass("is-active") {
		t.Error("overlay should no longer be active")
	}
	if video.HTML() != "" {
		t.Errorf("content not cleared: %q", video.HTML())
	}
}

func TestModalEmptyURLNoOp(t *testing.T) {
	ui := NewUI(nil)
	m, overlay, _ := newTestModal(ui)

	m.Open("")
	if m.State() != ModalClosed {
		t.Errorf("state = %v, want closed", m.State())
	}
	if overlay.HasClass("is-active") {
		t.Error("modal must stay closed on empty URL")
	}
}

func TestModalReopenReplacesContent(t *testing.T) {
	ui := NewUI(nil)
	m, _, video := newTestModal(ui)

	m.Open("https://vimeo.com/111")
	m.Open("https://vimeo.com/222")
	if m.State() != ModalOpen {
		t.Fatalf("state = %v, want open", m.State())
	}
	if !strings.Contains(video.HTML(), "video/222") {
		t.Errorf("content not replaced: %q", video.HTML())
	}
	if strings.Contains(video.HTML(), "video/111") {
		t.Errorf("old content lingers: %q", video.HTML())
	}
}

func TestModalBackdropClick(t *testing.T) {
	ui := NewUI(nil)
	m, overlay, _ := newTestModal(ui)
	inner := newFakeElement()

	m.Open("https://vimeo.com/123456")

	// A click inside the content does nothing.
	m.BackdropClick(inner)
	if m.State() != ModalOpen {
		t.Errorf("content click closed the modal")
	}

	// A click exactly on the backdrop closes.
	m.BackdropClick(overlay)
	if m.State() != ModalClosed {
		t.Errorf("backdrop click did not close, state = %v", m.State())
	}
}

func TestModalAnimatedTransitions(t *testing.T) {
	anim := &recordingAnimator{}
	ui := NewUI(anim)
	m, overlay, video := newTestModal(ui)

	m.Open("https://vimeo.com/123456")
	if m.State() != ModalOpening {
		t.Fatalf("state during entrance = %v, want opening", m.State())
	}
	// The content is already visible while the animation runs.
	if !overlay.HasClass("is-active") || video.HTML() == "" {
		t.Error("modal must be functionally open before the animation finishes")
	}
	anim.finishIn()
	if m.State() != ModalOpen {
		t.Fatalf("state after entrance = %v, want open", m.State())
	}

	m.Close()
	if m.State() != ModalClosing {
		t.Fatalf("state during exit = %v, want closing", m.State())
	}
	anim.finishOut()
	if m.State() != ModalClosed {
		t.Fatalf("state after exit = %v, want closed", m.State())
	}
	if video.HTML() != "" {
		t.Error("content should clear when the exit completes")
	}
}

func TestModalReopenSupersedesPendingClose(t *testing.T) {
	anim := &recordingAnimator{}
	ui := NewUI(anim)
	m, overlay, video := newTestModal(ui)

	m.Open("https://vimeo.com/111")
	anim.finishIn()
	m.Close()

	// Re-open before the exit animation completes.
	m.Open("https://vimeo.com/222")
	anim.finishOut()
	anim.finishIn()

	if m.State() != ModalOpen {
		t.Fatalf("state = %v, want open", m.State())
	}
	if !overlay.HasClass("is-active") {
		t.Error("overlay deactivated by the superseded close")
	}
	if !strings.Contains(video.HTML(), "video/222") {
		t.Errorf("superseded close cleared the new content: %q", video.HTML())
	}
}

func TestEnsureModalIsSingleton(t *testing.T) {
	ui := NewUI(nil)
	m1, _, _ := newTestModal(ui)
	m2 := ui.EnsureModal(newFakeElement(), newFakeElement(), newFakeElement())
	if m1 != m2 {
		t.Error("EnsureModal should reuse the existing instance")
	}
}

func TestPlayVideo(t *testing.T) {
	ui := NewUI(nil)

	// Without a modal bound, PlayVideo is a no-op.
	ui.PlayVideo("https://vimeo.com/123")

	m, _, video := newTestModal(ui)
	ui.PlayVideo("https://vimeo.com/123")
	if m.State() != ModalOpen {
		t.Errorf("state = %v, want open", m.State())
	}
	if !strings.Contains(video.HTML(), "video/123") {
		t.Errorf("markup = %q", video.HTML())
	}
}
