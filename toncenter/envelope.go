package toncenter

import (
	"bytes"
	"encoding/json"
)

// Envelope is the outer object of every gateway response. The REST endpoints
// only fill OK, Result, Error and Code; the jsonRPC endpoint also echoes the
// protocol version and the request id.
type Envelope struct {
	OK      bool            `json:"ok"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *string         `json:"error,omitempty"`
	Code    *int            `json:"code,omitempty"`
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      any             `json:"id,omitempty"`
}

var jsonNull = []byte("null")

func (e *Envelope) hasResult() bool {
	trimmed := bytes.TrimSpace(e.Result)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, jsonNull)
}

// UnwrapErr reports the failure carried by the envelope, or nil when it holds
// a result.
func (e *Envelope) UnwrapErr() error {
	if e.OK {
		if e.hasResult() {
			return nil
		}
		return &ProtocolError{Reason: `expected "result"`}
	}
	if e.Error != nil && *e.Error != "" && e.Code != nil {
		return classify(*e.Code, *e.Error)
	}
	return &ProtocolError{Reason: `expected "result" or "error"`}
}

// Normalize validates the envelope and returns its result reshaped according
// to the policy.
func Normalize(e *Envelope, p Policy) (any, error) {
	if e == nil {
		return nil, &ProtocolError{Reason: "empty body"}
	}
	if err := e.UnwrapErr(); err != nil {
		return nil, err
	}
	result, err := decodeValue(e.Result)
	if err != nil {
		return nil, &ProtocolError{Reason: "undecodable result: " + err.Error()}
	}
	return Transform(result, p), nil
}

// NormalizePlain is Normalize with the REST policy.
func NormalizePlain(e *Envelope) (any, error) {
	return Normalize(e, PlainPolicy)
}

// NormalizeRPC is Normalize with the jsonRPC policy.
func NormalizeRPC(e *Envelope) (any, error) {
	return Normalize(e, RPCPolicy)
}

// decodeValue keeps numbers as json.Number so logical times and balances
// larger than 2^53 survive the round trip.
func decodeValue(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
