// Package expressai wraps the expression classifier's websocket API. The
// model behind it is opaque: one Classify round trip returns the
// per-category confidence scores for the service's current camera frame.
package expressai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

type Client struct {
	conn *websocket.Conn
}

func Dial(scheme, host, path, apiKey string) (*Client, error) {
	u := url.URL{
		Scheme: scheme,
		Host:   host,
		Path:   path,
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), http.Header{"api-key": []string{apiKey}})
	if err != nil {
		return nil, fmt.Errorf("dialing classifier: %w", err)
	}

	return &Client{conn: conn}, nil
}

// Classify requests scores for the current frame. detected is false when no
// subject is in view. Classify is not safe for concurrent use; the sampling
// loop is its only caller.
func (c *Client) Classify(ctx context.Context) (map[string]float64, bool, error) {
	deadline := time.Time{}
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return nil, false, err
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, false, err
	}

	if err := c.conn.WriteJSON(classifyRequest{Type: "classify"}); err != nil {
		return nil, false, err
	}

	var resp classifyResponse
	if err := c.conn.ReadJSON(&resp); err != nil {
		return nil, false, err
	}

	if resp.Error != "" {
		return nil, false, fmt.Errorf("classifier: %s", resp.Error)
	}
	if !resp.Detected {
		return nil, false, nil
	}

	return resp.Scores, true, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
