package ws

import "encoding/json"

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

// MoveRequest plays one move in the position given by key.
type MoveRequest struct {
	Key    string `json:"key"`
	Field  string `json:"field"`
	Player string `json:"player"`
}

// HintRequest asks for the searched best move in the position given by key.
// Depth 0 means the server default.
type HintRequest struct {
	Key   string `json:"key"`
	Depth int    `json:"depth"`
}

// ErrorResponse reports a rejected request without closing the connection.
type ErrorResponse struct {
	Error string `json:"error"`
}
