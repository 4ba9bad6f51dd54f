package model

import "time"

// Event is a logged event.
// swagger:model
type Event struct {
	// required: true
	ID uint `json:"id" gorm:"primaryKey"`
	// required: true
	Description string `json:"description" gorm:"not null"`
	// required: true
	CreateAt time.Time `json:"create_at" gorm:"not null"`
}

// EventResponse wraps a single event. Creating an event responds with the bare event instead.
type EventResponse struct {
	Event Event `json:"event"`
}

// EventsResponse wraps all events.
type EventsResponse struct {
	Event []Event `json:"event"`
}
