package domain

import (
	"time"
)

type Category string

const (
	CategoryFlood      Category = "Flood"
	CategoryFire       Category = "Fire"
	CategoryEarthquake Category = "Earthquake"
	CategoryAccident   Category = "Accident"
	CategorySOS        Category = "SOS"
	CategoryOther      Category = "Other"
)

// Categories lists every category a report may carry, in a fixed order.
var Categories = []Category{
	CategoryFlood,
	CategoryFire,
	CategoryEarthquake,
	CategoryAccident,
	CategorySOS,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type ReportStatus string

const (
	StatusPending  ReportStatus = "Pending"
	StatusVerified ReportStatus = "Verified"
	StatusRejected ReportStatus = "Rejected"
)

type Report struct {
	ID            int64        `json:"id"`
	Text          string       `json:"text"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	Category      Category     `json:"category"`
	Status        ReportStatus `json:"status"`
	OriginAddress string       `json:"-"` // abuse accounting only, never rendered
	CreatedAt     time.Time    `json:"created_at"`
	VerifiedAt    *time.Time   `json:"verified_at,omitempty"`
}
