package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"

	"naturalli/internal/input"
	"naturalli/internal/protocol"
)

// DefaultBufferSize is the largest response accepted from the inference server.
const DefaultBufferSize = 32768

// Client sends queries to a NaturalLI inference server. Every query uses its own
// TCP connection, so a Client is safe for concurrent use.
type Client struct {
	address    string        // host:port of the inference server
	timeout    time.Duration // deadline for one exchange; zero means none
	bufferSize int           // maximum response size in bytes
	dialer     net.Dialer
}

// Query sends the preamble, the premises and the raw query line of the block and
// returns the parsed response. A nil preamble sends no configuration directives.
func (c *Client) Query(ctx context.Context, preamble []string, block input.Block) (*protocol.Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	conn, err := c.dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", c.address, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, err
		}
	}
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	if err := protocol.WriteRequest(conn, preamble, block.Premises, block.Raw); err != nil {
		return nil, fmt.Errorf("send query: %w", err)
	}

	raw, err := io.ReadAll(io.LimitReader(conn, int64(c.bufferSize)))
	if err != nil && len(raw) == 0 {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("read response: %w", ctx.Err())
		}
		return nil, fmt.Errorf("read response: %w", err)
	}

	return protocol.ParseResponse(raw)
}

// Address returns the server address the client connects to.
func (c *Client) Address() string {
	return c.address
}

// NewClient creates a client for the server at host:port.
// A zero timeout leaves exchanges without a deadline, a non-positive bufferSize selects DefaultBufferSize.
func NewClient(host string, port int, timeout time.Duration, bufferSize int) *Client {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Client{
		address:    net.JoinHostPort(host, fmt.Sprint(port)),
		timeout:    timeout,
		bufferSize: bufferSize,
	}
}
