// Package notify provides cross-platform desktop notification support,
// used to announce finished focus and break countdowns. It shells out to
// osascript on macOS and notify-send on Linux.
package notify

// Notifier defines the interface for sending desktop notifications.
type Notifier interface {
	// Send sends a notification with the given title and message.
	Send(title, message string) error

	// SendWithSound sends a notification with sound.
	SendWithSound(title, message string) error

	// IsSupported returns true if notifications are supported on this platform.
	IsSupported() bool
}

type noopNotifier struct{}

func (n *noopNotifier) Send(title, message string) error          { return nil }
func (n *noopNotifier) SendWithSound(title, message string) error { return nil }
func (n *noopNotifier) IsSupported() bool                         { return false }

// New creates a platform-specific notifier, falling back to a no-op
// notifier when the platform has no usable notification mechanism.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return &noopNotifier{}
	}
	return n
}
