package domain

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	Text           string  `json:"text" validate:"required,min=10,max=500"`
	Latitude       float64 `json:"latitude" validate:"lat"`
	Longitude      float64 `json:"longitude" validate:"lng"`
	RecaptchaToken string  `json:"recaptcha_token" validate:"required"`
}

type CreateSOSRequest struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
	Message   string  `json:"message"`
}

// DefaultSOSMessage is stored when an SOS alert carries no message.
const DefaultSOSMessage = "Emergency SOS Alert"

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type StatsRequest struct {
	Minutes int
}

type ReportStats struct {
	WindowMinutes int                `json:"window_minutes"`
	Total         int64              `json:"total"`
	ByStatus      map[ReportStatus]int64 `json:"by_status"`
	ByCategory    map[Category]int64 `json:"by_category"`
}

// ReportEvent is the payload pushed to the webhook queue whenever a
// report becomes publicly visible (verified by a moderator or created
// as an auto-verified SOS alert).
type ReportEvent struct {
	EventID    uuid.UUID    `json:"event_id"`
	ReportID   int64        `json:"report_id"`
	Category   Category     `json:"category"`
	Status     ReportStatus `json:"status"`
	Latitude   float64      `json:"latitude"`
	Longitude  float64      `json:"longitude"`
	OccurredAt time.Time    `json:"occurred_at"`
}
