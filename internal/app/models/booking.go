package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusBooked          BookingStatus = "booked"
	BookingStatusSampleCollected BookingStatus = "sample_collected"
	BookingStatusProcessing      BookingStatus = "processing"
	BookingStatusReviewed        BookingStatus = "reviewed"
	BookingStatusCompleted       BookingStatus = "completed"
	BookingStatusCancelled       BookingStatus = "cancelled"
)

// BookingStatuses lists every status in forward order, cancelled last.
var BookingStatuses = []BookingStatus{
	BookingStatusBooked,
	BookingStatusSampleCollected,
	BookingStatusProcessing,
	BookingStatusReviewed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusBooked, BookingStatusSampleCollected, BookingStatusProcessing,
		BookingStatusReviewed, BookingStatusCompleted, BookingStatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

func (s BookingStatus) String() string {
	return string(s)
}

type DeliveryMethod string

const (
	DeliveryMethodEmail    DeliveryMethod = "email"
	DeliveryMethodSMS      DeliveryMethod = "sms"
	DeliveryMethodInPerson DeliveryMethod = "in_person"
	DeliveryMethodPrint    DeliveryMethod = "print"
)

type TestBooking struct {
	ID             int64          `json:"id"`
	PatientID      int64          `json:"patient_id"`
	TestID         int64          `json:"test_id"`
	DoctorID       *int64         `json:"doctor_id,omitempty"`
	Status         BookingStatus  `json:"status"`
	Notes          string         `json:"notes,omitempty"`
	DeliveryMethod DeliveryMethod `json:"delivery_method,omitempty"`
	CreatedAt      *time.Time     `json:"created_at,omitempty"`
	Patient        *PersonSummary `json:"patient,omitempty"`
	Doctor         *PersonSummary `json:"doctor,omitempty"`
	Test           *TestSummary   `json:"test,omitempty"`
}

type PersonSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TestSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
