// Package lifecycle holds the client's view of the test booking state machine.
// The lab backend stays authoritative; this table only decides which actions a
// row offers and rejects obviously invalid ones before any network call.
package lifecycle

import (
	"fmt"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
	"strings"
)

type Action string

const (
	ActionCollect         Action = "collect"
	ActionStartProcessing Action = "start_processing"
	ActionMarkReviewed    Action = "mark_reviewed"
	ActionMarkCompleted   Action = "mark_completed"
	ActionCancel          Action = "cancel"
)

var Actions = []Action{
	ActionCollect,
	ActionStartProcessing,
	ActionMarkReviewed,
	ActionMarkCompleted,
	ActionCancel,
}

var transitions = map[models.BookingStatus]map[Action]models.BookingStatus{
	models.BookingStatusBooked: {
		ActionCollect: models.BookingStatusSampleCollected,
		ActionCancel:  models.BookingStatusCancelled,
	},
	models.BookingStatusSampleCollected: {
		ActionStartProcessing: models.BookingStatusProcessing,
		ActionCancel:          models.BookingStatusCancelled,
	},
	models.BookingStatusProcessing: {
		ActionMarkReviewed: models.BookingStatusReviewed,
		ActionCancel:       models.BookingStatusCancelled,
	},
	models.BookingStatusReviewed: {
		ActionMarkCompleted: models.BookingStatusCompleted,
		ActionCancel:        models.BookingStatusCancelled,
	},
}

var bannerPrefixes = map[Action]string{
	ActionCollect:         constvars.BannerPrefixCollect,
	ActionStartProcessing: constvars.BannerPrefixStartProcessing,
	ActionMarkReviewed:    constvars.BannerPrefixMarkReviewed,
	ActionMarkCompleted:   constvars.BannerPrefixMarkCompleted,
	ActionCancel:          constvars.BannerPrefixCancel,
}

// ParseAction accepts both the action name and its URL slug
// (start_processing / start-processing).
func ParseAction(s string) (Action, error) {
	candidate := Action(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if _, ok := bannerPrefixes[candidate]; ok {
		return candidate, nil
	}
	return "", exceptions.ErrUnknownAction(nil, s)
}

func (a Action) String() string {
	return string(a)
}

func (a Action) Slug() string {
	return strings.ReplaceAll(string(a), "_", "-")
}

func (a Action) BannerPrefix() string {
	return bannerPrefixes[a]
}

// Next returns the status a booking moves to when action is applied to it.
func Next(status models.BookingStatus, action Action) (models.BookingStatus, error) {
	if _, ok := bannerPrefixes[action]; !ok {
		return "", exceptions.ErrUnknownAction(nil, action.String())
	}

	next, ok := transitions[status][action]
	if !ok {
		err := fmt.Errorf("no transition for %s from %s", action, status)
		return "", exceptions.ErrInvalidTransition(err, action.String(), status.String())
	}
	return next, nil
}

// AvailableActions lists the actions a row in the given status offers, forward
// action first.
func AvailableActions(status models.BookingStatus) []Action {
	available := []Action{}
	for _, action := range Actions {
		if _, ok := transitions[status][action]; ok {
			available = append(available, action)
		}
	}
	return available
}

func IsTerminal(status models.BookingStatus) bool {
	return status == models.BookingStatusCompleted || status == models.BookingStatusCancelled
}

// CanEditReport reports whether report entry is open for a booking.
func CanEditReport(status models.BookingStatus) bool {
	return status == models.BookingStatusProcessing
}
