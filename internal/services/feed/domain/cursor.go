package domain

import (
	"encoding/base64"
	"strings"
	"time"
)

// Cursor is the decoded pagination position: the timestamp and id of the
// last item of the previous page. A zero Cursor means start of pool
type Cursor struct {
	CreatedAt time.Time
	LastID    string
}

// IsZero reports whether the cursor points at the start of the pool
func (c Cursor) IsZero() bool { return c.CreatedAt.IsZero() && c.LastID == "" }

// Encode renders the cursor as an opaque token
func (c Cursor) Encode() string {
	if c.IsZero() {
		return ""
	}
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.LastID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses an opaque cursor token. Decoding is tolerant:
// malformed input means start of pool, never an error
func DecodeCursor(s string) Cursor {
	if s == "" {
		return Cursor{}
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok || id == "" {
		return Cursor{}
	}
	at, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return Cursor{}
	}
	return Cursor{CreatedAt: at, LastID: id}
}
