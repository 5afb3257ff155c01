package types

// API endpoints
const (
	// Signed actions
	EXCHANGE = "/exchange"

	// Websocket endpoint, relative to the API host
	WS = "/ws"
)
