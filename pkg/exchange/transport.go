package exchange

import "context"

// Transport delivers an encoded payload to the /exchange endpoint and returns
// the raw response body.
type Transport interface {
	PostExchange(ctx context.Context, body []byte) ([]byte, error)
}
