package sc

import (
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/chabad360/go-osc/osc"
)

// TransportError wraps a socket failure while sending to the server. Sends
// are fire-and-forget UDP: an error here means the local send failed, never
// that the server rejected anything.
type TransportError struct {
	Addr string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("osc send to %s failed: %v", e.Addr, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client owns the single outbound UDP socket to the SuperCollider server.
// Writes are serialized so concurrent pattern playback never interleaves
// inside the OSC library's buffers.
type Client struct {
	mu   sync.Mutex
	conn *osc.Client
	addr string
}

// Dial opens the UDP socket to the server. No handshake happens; UDP "dial"
// only fixes the destination address.
func Dial(host string, port int) (*Client, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := osc.Dial(addr)
	if err != nil {
		return nil, &TransportError{Addr: addr, Err: err}
	}
	return &Client{conn: conn, addr: addr}, nil
}

// Send transmits one message. It never blocks on the server and never
// retries: a late control message is worse than a dropped one.
func (c *Client) Send(msg *osc.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.Send(msg); err != nil {
		return &TransportError{Addr: c.addr, Err: err}
	}
	return nil
}

// Addr returns the server address the client sends to.
func (c *Client) Addr() string { return c.addr }

// Close releases the socket.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}
