package broadcast

import "ordertrack/internal/core/ports"

// NullBroadcaster discards every broadcast. Used when the status change
// pipeline runs without a live push surface, such as in background jobs
// started before the server or in CLI tooling. Callers never need to check
// whether a broadcaster is present.
type NullBroadcaster struct{}

// NewNullBroadcaster creates a broadcaster that drops all payloads.
func NewNullBroadcaster() NullBroadcaster {
	return NullBroadcaster{}
}

func (NullBroadcaster) GroupJoin(_ string, _ ports.BroadcastConn) {}

func (NullBroadcaster) GroupLeave(_ string, _ ports.BroadcastConn) {}

func (NullBroadcaster) GroupSend(_ string, _ []byte) {}
