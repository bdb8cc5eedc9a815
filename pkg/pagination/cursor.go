// Package pagination implements keyset cursors for date-ordered listings.
package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	dateLayout = "2006-01-02"
)

// ErrInvalidCursor is returned for cursors that do not decode.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor marks the last row of a page ordered by (date DESC, id DESC).
// Only the calendar day of Date is kept.
type Cursor struct {
	ID   uuid.UUID
	Date time.Time
}

// Encode returns the opaque form "<date>:<id>" in unpadded URL-safe base64.
func (c *Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Date.Format(dateLayout) + ":" + c.ID.String()))
}

// DecodeCursor reverses Encode. An empty string yields a nil cursor.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	datePart, idPart, ok := strings.Cut(string(raw), ":")
	if !ok {
		return nil, ErrInvalidCursor
	}

	date, err := time.Parse(dateLayout, datePart)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	id, err := uuid.Parse(idPart)
	if err != nil || id == uuid.Nil {
		return nil, ErrInvalidCursor
	}
	return &Cursor{ID: id, Date: date}, nil
}

// NormalizeLimit clamps limit to (0, MaxLimit], using DefaultLimit for <= 0.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// Page trims a result fetched with limit+1 rows down to limit and reports
// whether more rows exist.
func Page[T any](rows []T, limit int) ([]T, bool) {
	limit = NormalizeLimit(limit)
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
