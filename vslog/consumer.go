// Package vslog is the optional diagnostic callback sink threaded through
// the versioninfo model. It is grounded on
// itchio-butler's vendored github.com/itchio/wharf/state.Consumer: the
// same nil-safe OnMessage-callback shape, narrowed to the one thing this
// library ever wants to report — debug traces from the versioninfo model
// (the summary it logs after each read), never progress bars (there is
// nothing long-running here to report progress on).
package vslog

import "fmt"

// MessageCallback receives a level ("debug", "info", "warning") and a
// formatted message.
type MessageCallback func(level, msg string)

// Consumer holds an optional message callback. A zero-value Consumer (or a
// nil *Consumer) is a silent no-op.
type Consumer struct {
	OnMessage MessageCallback
}

// NewConsumer builds a Consumer that reports every message to fn.
func NewConsumer(fn MessageCallback) *Consumer {
	return &Consumer{OnMessage: fn}
}

func (c *Consumer) emit(level, msg string) {
	if c == nil || c.OnMessage == nil {
		return
	}
	c.OnMessage(level, msg)
}

// Debug reports a debug-level message.
func (c *Consumer) Debug(msg string) { c.emit("debug", msg) }

// Debugf is the formatted variant of Debug.
func (c *Consumer) Debugf(format string, args ...interface{}) {
	c.emit("debug", fmt.Sprintf(format, args...))
}

// Info reports an info-level message.
func (c *Consumer) Info(msg string) { c.emit("info", msg) }

// Infof is the formatted variant of Info.
func (c *Consumer) Infof(format string, args ...interface{}) {
	c.emit("info", fmt.Sprintf(format, args...))
}

// Warn reports a warning-level message.
func (c *Consumer) Warn(msg string) { c.emit("warning", msg) }

// Warnf is the formatted variant of Warn.
func (c *Consumer) Warnf(format string, args ...interface{}) {
	c.emit("warning", fmt.Sprintf(format, args...))
}
