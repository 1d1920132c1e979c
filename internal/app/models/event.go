package models

import "time"

type BookingTransitionedEvent struct {
	BookingID  int64         `json:"booking_id"`
	Action     string        `json:"action"`
	From       BookingStatus `json:"from,omitempty"`
	To         BookingStatus `json:"to"`
	OccurredAt time.Time     `json:"occurred_at"`
	RequestID  string        `json:"request_id,omitempty"`
}
