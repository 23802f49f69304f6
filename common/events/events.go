package events

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// NanoID alphabet for event id suffixes: lowercase alphanumeric, matching
	// the base36 suffixes the redirect producers already emit.
	idSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idSuffixLength   = 9
)

// ClickEvent represents a URL redirect event published to the message queue.
// Producers may attach fields beyond the ones declared here; those are kept
// in Extra and persisted verbatim so newer producers don't lose data on
// older consumers.
type ClickEvent struct {
	ID        string `json:"id,omitempty"`
	ShortCode string `json:"short_code"`
	Timestamp int64  `json:"timestamp"`
	UserAgent string `json:"user_agent"`
	IP        string `json:"ip_address,omitempty"`

	// Extra holds producer-supplied fields not covered by the typed ones.
	Extra map[string]json.RawMessage `json:"-"`
}

// knownFields are the wire keys owned by the typed part of ClickEvent.
var knownFields = []string{"id", "short_code", "timestamp", "user_agent", "ip_address"}

func (e *ClickEvent) UnmarshalJSON(data []byte) error {
	type plain ClickEvent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range knownFields {
		delete(raw, key)
	}
	if len(raw) > 0 {
		p.Extra = raw
	}

	*e = ClickEvent(p)
	return nil
}

func (e ClickEvent) MarshalJSON() ([]byte, error) {
	type plain ClickEvent
	data, err := json.Marshal(plain(e))
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, value := range e.Extra {
		if _, taken := merged[key]; !taken {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// Validate checks the fields every persisted event must carry. Events that
// fail validation can never be stored and are dead-letter material.
func (e ClickEvent) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ShortCode, validation.Required),
		validation.Field(&e.Timestamp, validation.Required),
	)
}

// Decode parses and validates a queued message body.
func Decode(data []byte) (*ClickEvent, error) {
	var e ClickEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode click event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid click event: %w", err)
	}
	return &e, nil
}

// ClickedAt converts the producer-supplied timestamp to wall-clock time.
func (e ClickEvent) ClickedAt() time.Time {
	return time.Unix(e.Timestamp, 0)
}

// NewEventID synthesizes a partition-unique id for events that arrive without
// one: {short_code}-{ingestion unix millis}-{random suffix}. Unique per
// insert attempt, not globally sequential.
func NewEventID(shortCode string) string {
	suffix := gonanoid.MustGenerate(idSuffixAlphabet, idSuffixLength)
	return fmt.Sprintf("%s-%d-%s", shortCode, time.Now().UnixMilli(), suffix)
}
