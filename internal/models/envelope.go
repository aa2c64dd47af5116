package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// EnvelopeKey is the single store key holding the cached envelope.
const EnvelopeKey = "data"

// Envelope is the unit persisted in the store: the upstream body together
// with the wall-clock time (epoch millis) at which it was fetched.
type Envelope struct {
	FetchedAt int64           `json:"fetchedAt,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// HasData reports whether the envelope carries a payload.
func (e *Envelope) HasData() bool {
	return e != nil && len(e.Data) > 0 && string(e.Data) != "null"
}

// Age returns how old the envelope is at now. An envelope without a fetch
// time is infinitely old.
func (e *Envelope) Age(now time.Time) (time.Duration, bool) {
	if e == nil || e.FetchedAt == 0 {
		return 0, false
	}
	return now.Sub(time.UnixMilli(e.FetchedAt)), true
}

// Encode serializes the envelope for the store. HTML characters in the
// payload are kept as-is so a cached read returns the upstream bytes.
func (e *Envelope) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// APIResponse is the body of GET /api.
type APIResponse struct {
	OK        bool            `json:"ok"`
	FetchedAt int64           `json:"fetchedAt,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}
