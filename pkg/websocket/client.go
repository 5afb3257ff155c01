package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// PingInterval keeps the connection alive; the server drops idle sockets after a minute.
const PingInterval = 50 * time.Second

type postRequest struct {
	Method  string       `json:"method"`
	ID      uint64       `json:"id"`
	Request *postPayload `json:"request,omitempty"`
}

type postPayload struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type envelope struct {
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data"`
}

type postResponse struct {
	ID       uint64      `json:"id"`
	Response postPayload `json:"response"`
}

type postResult struct {
	payload []byte
	err     error
}

// Client posts signed actions over a websocket connection. Responses are
// matched to requests by id, so concurrent posts are safe.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	mu      sync.Mutex
	pending map[uint64]chan postResult
	nextID  atomic.Uint64
	ctx     context.Context
	cancel  context.CancelFunc
	closed  chan struct{}
	err     error
}

// WsURL derives the websocket endpoint of an API base URL.
func WsURL(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid host URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
	}
	if !strings.HasSuffix(u.Path, types.WS) {
		u.Path += types.WS
	}
	return u.String(), nil
}

// Dial connects to the websocket endpoint of baseURL.
func Dial(ctx context.Context, baseURL string) (*Client, error) {
	wsURL, err := WsURL(baseURL)
	if err != nil {
		return nil, err
	}

	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second
	conn, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to websocket: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	c := &Client{
		conn:    conn,
		pending: map[uint64]chan postResult{},
		ctx:     loopCtx,
		cancel:  cancel,
		closed:  make(chan struct{}),
	}
	go c.messageLoop()
	go c.heartbeat()

	log.Debug().Str("url", wsURL).Msg("websocket connected")
	return c, nil
}

// PostExchange sends a signed action payload as a "post" request and waits for
// the matching response payload.
func (c *Client) PostExchange(ctx context.Context, body []byte) ([]byte, error) {
	id := c.nextID.Add(1)
	ch := make(chan postResult, 1)

	c.mu.Lock()
	if c.err != nil {
		err := c.err
		c.mu.Unlock()
		return nil, err
	}
	c.pending[id] = ch
	c.mu.Unlock()

	req := postRequest{
		Method:  "post",
		ID:      id,
		Request: &postPayload{Type: "action", Payload: json.RawMessage(body)},
	}
	if err := c.write(req); err != nil {
		c.forget(id)
		return nil, err
	}

	select {
	case r := <-ch:
		return r.payload, r.err
	case <-ctx.Done():
		c.forget(id)
		return nil, ctx.Err()
	case <-c.closed:
		c.forget(id)
		return nil, c.closeErr()
	}
}

func (c *Client) write(v interface{}) error {
	msg, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

func (c *Client) forget(id uint64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *Client) closeErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	return hlerrors.ErrClosed
}

func (c *Client) heartbeat() {
	ticker := time.NewTicker(PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if err := c.write(map[string]string{"method": "ping"}); err != nil {
				log.Warn().Err(err).Msg("failed to send websocket ping")
			}
		}
	}
}

func (c *Client) messageLoop() {
	defer c.shutdown(hlerrors.ErrClosed)

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if c.ctx.Err() == nil {
				log.Warn().Err(err).Msg("websocket read error")
				c.shutdown(fmt.Errorf("websocket read error: %w", err))
			}
			return
		}

		var env envelope
		if err := json.Unmarshal(message, &env); err != nil {
			log.Warn().Err(err).Msg("failed to parse websocket message")
			continue
		}
		if env.Channel != "post" {
			continue
		}

		var resp postResponse
		if err := json.Unmarshal(env.Data, &resp); err != nil {
			log.Warn().Err(err).Msg("failed to parse post response")
			continue
		}
		c.deliver(resp)
	}
}

func (c *Client) deliver(resp postResponse) {
	c.mu.Lock()
	ch, ok := c.pending[resp.ID]
	delete(c.pending, resp.ID)
	c.mu.Unlock()
	if !ok {
		return
	}

	if resp.Response.Type == "error" {
		var msg string
		if err := json.Unmarshal(resp.Response.Payload, &msg); err != nil {
			msg = string(resp.Response.Payload)
		}
		ch <- postResult{err: fmt.Errorf("post request %d failed: %s", resp.ID, msg)}
		return
	}
	ch <- postResult{payload: resp.Response.Payload}
}

// shutdown fails every pending request and marks the client closed. Only the
// first call has an effect.
func (c *Client) shutdown(reason error) {
	c.mu.Lock()
	if c.err != nil {
		c.mu.Unlock()
		return
	}
	c.err = reason
	pending := c.pending
	c.pending = map[uint64]chan postResult{}
	c.mu.Unlock()

	for _, ch := range pending {
		ch <- postResult{err: reason}
	}
	c.cancel()
	close(c.closed)
}

// Close closes the websocket connection
func (c *Client) Close() error {
	c.shutdown(hlerrors.ErrClosed)
	c.writeMu.Lock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()
	return c.conn.Close()
}
