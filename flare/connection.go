package flare

// Connection is one registered handler in a signal's delivery list. The list
// is doubly linked; the signal's list and the caller's handle share the node.
type Connection struct {
	signal   *Signal
	fn       Handler
	argv     []any // bound args, doubling as the prepend scratch buffer
	boundLen int
	prev     *Connection
	next     *Connection

	connected bool
	detached  bool
}

// Connected reports whether the connection is currently registered for
// delivery.
func (c *Connection) Connected() bool {
	c.signal.mu.Lock()
	defer c.signal.mu.Unlock()
	return c.connected
}

// Disconnect removes the connection from its signal's list. It is a no-op on
// an already disconnected connection.
//
// The node's own prev/next are deliberately left intact: a Fire pass parked
// on this node reads next after the handler returns, and must still reach the
// successor this node had when it was spliced out.
func (c *Connection) Disconnect() {
	s := c.signal
	s.mu.Lock()
	defer s.mu.Unlock()
	if !c.connected {
		return
	}
	c.connected = false
	if c.prev != nil {
		c.prev.next = c.next
	} else if s.head == c {
		s.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	}
}

// Reconnect re-registers a disconnected connection at the head of the list,
// giving it most-recently-connected priority regardless of where it sat
// before. It is a no-op on a connected connection.
func (c *Connection) Reconnect() {
	s := c.signal
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.connected {
		return
	}
	c.connected = true
	c.prev = nil
	c.next = s.head
	if s.head != nil {
		s.head.prev = c
	}
	s.head = c
}
