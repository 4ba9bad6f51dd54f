package event

import (
	"context"
	"net/http"

	"github.com/dhis2-sre/event-log/internal/handler"
	"github.com/dhis2-sre/event-log/pkg/model"
	"github.com/gin-gonic/gin"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewHandler(eventService eventService) Handler {
	return Handler{eventService}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	Find(ctx context.Context, id uint) (model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	Create(ctx context.Context, description string) (model.Event, error)
	Update(ctx context.Context, id uint, description string) (model.Event, error)
	Delete(ctx context.Context, id uint) error
}

// SaveEventRequest is used both for creating and updating an event. The description key has to be
// present but may be empty.
type SaveEventRequest struct {
	Description *string `json:"description" binding:"required"`
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events eventCreate
	//
	// Create event
	//
	// Create an event. The created event is returned as is and not wrapped in an envelope.
	//
	// responses:
	//   201: Event
	//   400: Error
	//   415: Error
	var request SaveEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), *request.Description)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// FindAll find all events
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /events findAllEvents
	//
	// Find all events
	//
	// Find all events ordered by their creation time
	//
	// responses:
	//   200: Events
	events, err := h.eventService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	if events == nil {
		events = []model.Event{}
	}

	c.JSON(http.StatusOK, model.EventsResponse{Event: events})
}

// Find event by id
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /events/{id} findEventById
	//
	// Find event
	//
	// Find an event by its id
	//
	// responses:
	//   200: EventEnvelope
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.Find(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, model.EventResponse{Event: event})
}

// Update event
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /events/{id} eventUpdate
	//
	// Update event
	//
	// Replace the description of an event
	//
	// responses:
	//   200: EventEnvelope
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request SaveEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, *request.Description)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, model.EventResponse{Event: event})
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{id} eventDelete
	//
	// Delete event
	//
	// Delete an event by its id
	//
	// responses:
	//   202: Deleted
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	err := h.eventService.Delete(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.String(http.StatusAccepted, "Event (id= %d ) deleted!", id)
}
