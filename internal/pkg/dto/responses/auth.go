package responses

import (
	"medilabx-service/internal/app/models"
	"time"
)

type Session struct {
	SessionID string      `json:"session_id,omitempty"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}
