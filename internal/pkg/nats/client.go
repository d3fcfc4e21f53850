package nats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Client is a thin wrapper over a NATS connection
type Client struct {
	conn *nats.Conn
}

// NewClient connects to url, reconnecting forever in the background
func NewClient(url, name string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}
	return &Client{conn: conn}, nil
}

func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// PublishJSON marshals v and publishes it on subject
func (c *Client) PublishJSON(subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// Ping flushes the connection, used by the readiness probe
func (c *Client) Ping() error {
	return c.conn.FlushTimeout(2 * time.Second)
}

// Close drains pending messages and closes the connection
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Drain()
	}
}
