package notify

import "testing"

func TestNew_NeverNil(t *testing.T) {
	n := New()
	if n == nil {
		t.Fatal("New() returned nil")
	}

	// Regardless of platform support, sending must not panic or fail
	// catastrophically on the no-op path.
	if !n.IsSupported() {
		if err := n.Send("studydash", "test"); err != nil {
			t.Errorf("Send() on unsupported platform error = %v", err)
		}
		if err := n.SendWithSound("studydash", "test"); err != nil {
			t.Errorf("SendWithSound() on unsupported platform error = %v", err)
		}
	}
}

func TestNoopNotifier(t *testing.T) {
	n := &noopNotifier{}
	if n.IsSupported() {
		t.Error("noop notifier reports support")
	}
	if err := n.Send("a", "b"); err != nil {
		t.Errorf("Send() error = %v", err)
	}
}
