// Package broadcast provides the in-process implementation of the group
// broadcast port. A Hub keeps named groups of live connections and fans
// payloads out to every member of a group.
package broadcast

import (
	"log/slog"
	"sync"

	"ordertrack/internal/core/ports"
)

// Hub maintains broadcast groups and their member connections.
// Safe for concurrent use. Delivery is fire-and-forget: a member whose
// Send fails is evicted from the group being sent to, so a dead connection
// never blocks or fails subsequent broadcasts to that group.
type Hub struct {
	mu     sync.Mutex
	groups map[string]map[ports.BroadcastConn]struct{}
	logger *slog.Logger
}

// NewHub creates an empty broadcast hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		groups: make(map[string]map[ports.BroadcastConn]struct{}),
		logger: logger,
	}
}

// GroupJoin adds the connection to the named group, creating the group on
// first use. Joining the same group twice is a no-op.
func (h *Hub) GroupJoin(groupID string, conn ports.BroadcastConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[groupID]
	if !ok {
		members = make(map[ports.BroadcastConn]struct{})
		h.groups[groupID] = members
	}
	members[conn] = struct{}{}
}

// GroupLeave removes the connection from the named group. Empty groups are
// dropped so the hub does not accumulate state for completed orders.
func (h *Hub) GroupLeave(groupID string, conn ports.BroadcastConn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[groupID]
	if !ok {
		return
	}
	delete(members, conn)
	if len(members) == 0 {
		delete(h.groups, groupID)
	}
}

// GroupSend delivers the payload to every current member of the group.
// The member set is snapshotted under the lock and delivery happens outside
// it, so a member joining or leaving mid-send is never deadlocked.
func (h *Hub) GroupSend(groupID string, payload []byte) {
	h.mu.Lock()
	members := make([]ports.BroadcastConn, 0, len(h.groups[groupID]))
	for conn := range h.groups[groupID] {
		members = append(members, conn)
	}
	h.mu.Unlock()

	for _, conn := range members {
		if err := conn.Send(payload); err != nil {
			h.logger.Warn("evicting broadcast member after failed send",
				"group", groupID,
				"error", err)
			h.GroupLeave(groupID, conn)
		}
	}
}

// GroupSize reports the current number of members in the group.
func (h *Hub) GroupSize(groupID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.groups[groupID])
}
