// Package event provides CRUD operations for the event log.
//
// The package follows a layered architecture with:
// - Handler: HTTP request/response handling
// - Service: Business logic
// - Repository: Data access layer
package event

import "github.com/dhis2-sre/event-log/pkg/model"

// swagger:response Event
type _ struct {
	// in: body
	Body model.Event
}

// swagger:response EventEnvelope
type _ struct {
	// in: body
	Body model.EventResponse
}

// swagger:response Events
type _ struct {
	// in: body
	Body model.EventsResponse
}

// swagger:response Deleted
type _ struct {
	// Confirmation message
	// in: body
	Message string
}

// swagger:parameters eventCreate eventUpdate
type _ struct {
	// in: body
	// required: true
	Body SaveEventRequest
}

// swagger:parameters findEventById eventUpdate eventDelete
type _ struct {
	// The event ID
	// in: path
	// required: true
	ID uint `json:"id"`
}
