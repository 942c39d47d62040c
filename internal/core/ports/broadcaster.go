package ports

// BroadcastConn is the handle for one live subscriber connection. Send
// enqueues a payload for delivery; it returns an error when the connection
// can no longer accept messages (closed, or its outbound queue is full).
type BroadcastConn interface {
	Send(payload []byte) error
}

// Broadcaster is the pub/sub transport abstraction used to push tracking
// events to live subscribers. Connections join and leave named groups; a
// group send delivers the payload to every current member.
//
// Delivery is fire-and-forget: GroupSend neither blocks on nor confirms
// delivery to any individual member, and a failing member never fails the
// send for the others.
//
// Deployments without a live-push backend use the null implementation, so
// callers never need to check for an absent transport.
type Broadcaster interface {
	// GroupJoin adds the connection to the named group, creating the group
	// if needed. Joining a group twice with the same connection is a no-op.
	GroupJoin(groupID string, conn BroadcastConn)

	// GroupLeave removes the connection from the named group; no-op when
	// the connection is not a member. Empty groups are dropped.
	GroupLeave(groupID string, conn BroadcastConn)

	// GroupSend delivers the payload to every current member of the group.
	GroupSend(groupID string, payload []byte)
}
