package exchange

import (
	"encoding/json"
	"fmt"

	hlerrors "github.com/pooofdevelopment/go-hl-client/pkg/errors"
)

// Response statuses
const (
	StatusOK  = "ok"
	StatusErr = "err"
)

// ExchangeResponse is the tagged result of /exchange: Status "ok" with
// Response set, or "err" with Error set.
type ExchangeResponse struct {
	Status   string
	Response *ResponseData
	Error    string
}

// ResponseData is the body of an "ok" response.
type ResponseData struct {
	Type string        `json:"type"`
	Data *StatusesData `json:"data,omitempty"`
}

type StatusesData struct {
	Statuses []Status `json:"statuses"`
}

type RestingOrder struct {
	Oid   uint64 `json:"oid"`
	Cloid string `json:"cloid,omitempty"`
}

type FilledOrder struct {
	TotalSz string `json:"totalSz"`
	AvgPx   string `json:"avgPx"`
	Oid     uint64 `json:"oid"`
	Cloid   string `json:"cloid,omitempty"`
}

// Status is one per-request result inside an "ok" response.
type Status struct {
	Success           bool
	WaitingForFill    bool
	WaitingForTrigger bool
	Error             string
	Resting           *RestingOrder
	Filled            *FilledOrder
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var word string
	if err := json.Unmarshal(data, &word); err == nil {
		switch word {
		case "success":
			s.Success = true
		case "waitingForFill":
			s.WaitingForFill = true
		case "waitingForTrigger":
			s.WaitingForTrigger = true
		default:
			return fmt.Errorf("unknown status %q", word)
		}
		return nil
	}

	var obj struct {
		Error   *string       `json:"error"`
		Resting *RestingOrder `json:"resting"`
		Filled  *FilledOrder  `json:"filled"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	switch {
	case obj.Error != nil:
		s.Error = *obj.Error
	case obj.Resting != nil:
		s.Resting = obj.Resting
	case obj.Filled != nil:
		s.Filled = obj.Filled
	default:
		return fmt.Errorf("unknown status %s", data)
	}
	return nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	switch {
	case s.Success:
		return json.Marshal("success")
	case s.WaitingForFill:
		return json.Marshal("waitingForFill")
	case s.WaitingForTrigger:
		return json.Marshal("waitingForTrigger")
	case s.Resting != nil:
		return json.Marshal(map[string]*RestingOrder{"resting": s.Resting})
	case s.Filled != nil:
		return json.Marshal(map[string]*FilledOrder{"filled": s.Filled})
	}
	return json.Marshal(map[string]string{"error": s.Error})
}

func (r *ExchangeResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status   string          `json:"status"`
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Status {
	case StatusOK:
		var body ResponseData
		if len(raw.Response) > 0 && string(raw.Response) != "null" {
			if err := json.Unmarshal(raw.Response, &body); err != nil {
				return fmt.Errorf("invalid ok response: %w", err)
			}
		}
		r.Status, r.Response = raw.Status, &body
	case StatusErr:
		var msg string
		if err := json.Unmarshal(raw.Response, &msg); err != nil {
			msg = string(raw.Response)
		}
		r.Status, r.Error = raw.Status, msg
	default:
		return fmt.Errorf("unknown response status %q", raw.Status)
	}
	return nil
}

func (r ExchangeResponse) MarshalJSON() ([]byte, error) {
	if r.Status == StatusErr {
		return json.Marshal(map[string]string{"status": StatusErr, "response": r.Error})
	}
	return json.Marshal(struct {
		Status   string        `json:"status"`
		Response *ResponseData `json:"response"`
	}{r.Status, r.Response})
}

func (r *ExchangeResponse) IsOK() bool {
	return r.Status == StatusOK
}

// Err returns the exchange's message as an APIError for "err" responses.
func (r *ExchangeResponse) Err() error {
	if r.IsOK() {
		return nil
	}
	return hlerrors.NewAPIError(r.Error)
}

// Statuses returns the per-request statuses of an "ok" response, if any.
func (r *ExchangeResponse) Statuses() []Status {
	if r.Response == nil || r.Response.Data == nil {
		return nil
	}
	return r.Response.Data.Statuses
}

// DecodeResponse parses a raw /exchange response body.
func DecodeResponse(raw []byte) (*ExchangeResponse, error) {
	var resp ExchangeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, hlerrors.NewResponseDecodeError(err, "unexpected response %q", truncate(raw, 256))
	}
	return &resp, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
