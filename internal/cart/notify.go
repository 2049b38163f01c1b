package cart

import "log"

// Notifier receives the UI-facing signals emitted after cart operations:
// the new badge count after every change and transient confirmation
// messages. Presentation adapters subscribe here instead of reaching into
// the engine.
type Notifier interface {
	CartChanged(itemCount int)
	Toast(message string)
}

// NopNotifier discards all signals.
type NopNotifier struct{}

func (NopNotifier) CartChanged(int) {}
func (NopNotifier) Toast(string)    {}

// LogNotifier writes signals to the standard logger.
type LogNotifier struct{}

func (LogNotifier) CartChanged(itemCount int) {
	log.Printf("cart updated, %d items", itemCount)
}

func (LogNotifier) Toast(message string) {
	log.Printf("notification: %s", message)
}
