package queries

import (
	"encoding/base64"
	"fmt"
	"strings"

	"lab-dashboard/internal/domain/availability"

	"github.com/google/uuid"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor packs a schedule position as base64url("v1:<date>|<HH:MM>|<uuid>").
func EncodeAfterCursor(key ReservationKey) string {
	payload := fmt.Sprintf("%s:%s|%s|%s", CursorVersionV1, key.Date, key.StartTime, key.ID.String())
	return base64.URLEncoding.EncodeToString([]byte(payload))
}

func DecodeAfterCursor(cursor string) (ReservationKey, error) {
	if cursor == "" {
		return ReservationKey{}, fmt.Errorf("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return ReservationKey{}, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return ReservationKey{}, fmt.Errorf("unsupported cursor version")
	}

	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		return ReservationKey{}, fmt.Errorf("invalid cursor format: expected '<date>|<time>|<uuid>'")
	}
	if _, err := availability.ParseCivilDate(parts[0]); err != nil {
		return ReservationKey{}, err
	}
	if _, err := availability.ParseCivilTime(parts[1]); err != nil {
		return ReservationKey{}, err
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return ReservationKey{}, fmt.Errorf("invalid UUID: %w", err)
	}
	return ReservationKey{Date: parts[0], StartTime: parts[1], ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 50 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
