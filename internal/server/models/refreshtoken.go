package models

import "time"

type RefreshToken struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}
