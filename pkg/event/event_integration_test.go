package event_test

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/dhis2-sre/event-log/internal/errdef"
	"github.com/dhis2-sre/event-log/pkg/client"
	"github.com/dhis2-sre/event-log/pkg/event"
	"github.com/dhis2-sre/event-log/pkg/inttest"
	"github.com/dhis2-sre/event-log/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHandler(t *testing.T) {
	t.Parallel()

	db := inttest.SetupDB(t)

	eventRepository := event.NewRepository(db)
	eventService := event.NewService(eventRepository)

	client := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
		eventHandler := event.NewHandler(eventService)
		event.Routes(engine, eventHandler)
	})

	var first model.Event
	t.Run("Create", func(t *testing.T) {
		requestBody := strings.NewReader(`{"description": "Dentist"}`)

		client.PostJSON(t, "/events", requestBody, &first)

		assert.NotZero(t, first.ID)
		assert.Equal(t, "Dentist", first.Description)
		assert.False(t, first.CreateAt.IsZero())
	})

	var second model.Event
	t.Run("CreateWithEmptyDescription", func(t *testing.T) {
		requestBody := strings.NewReader(`{"description": ""}`)

		client.PostJSON(t, "/events", requestBody, &second)

		assert.NotZero(t, second.ID)
		assert.Empty(t, second.Description)
	})

	t.Run("CreateWithoutDescription", func(t *testing.T) {
		client.Do(t, http.MethodPost, "/events", strings.NewReader(`{}`), http.StatusBadRequest, inttest.WithHeader("Content-Type", "application/json"))
	})

	t.Run("ReadAll", func(t *testing.T) {
		var events model.EventsResponse
		client.GetJSON(t, "/events", &events)

		require.Len(t, events.Event, 2)
		assert.Equal(t, first.ID, events.Event[0].ID)
		assert.Equal(t, second.ID, events.Event[1].ID)
	})

	t.Run("Read", func(t *testing.T) {
		var event model.EventResponse
		client.GetJSON(t, "/events/"+itoa(first.ID), &event)

		assert.Equal(t, first.ID, event.Event.ID)
		assert.Equal(t, "Dentist", event.Event.Description)
		assert.True(t, first.CreateAt.Equal(event.Event.CreateAt))
	})

	t.Run("Update", func(t *testing.T) {
		requestBody := strings.NewReader(`{"description": "Dentist at 3"}`)

		var event model.EventResponse
		client.PutJSON(t, "/events/"+itoa(first.ID), requestBody, &event)

		assert.Equal(t, first.ID, event.Event.ID)
		assert.Equal(t, "Dentist at 3", event.Event.Description)
		assert.True(t, first.CreateAt.Equal(event.Event.CreateAt), "want the creation time to be left alone")
	})

	t.Run("UpdateNonExisting", func(t *testing.T) {
		client.Do(t, http.MethodPut, "/events/4242", strings.NewReader(`{"description": "nope"}`), http.StatusNotFound, inttest.WithHeader("Content-Type", "application/json"))
	})

	t.Run("Delete", func(t *testing.T) {
		body := client.Delete(t, "/events/"+itoa(second.ID))

		assert.Equal(t, "Event (id= "+itoa(second.ID)+" ) deleted!", string(body))
	})

	t.Run("DeleteNonExisting", func(t *testing.T) {
		client.Do(t, http.MethodDelete, "/events/"+itoa(second.ID), nil, http.StatusNotFound)
	})

	t.Run("ReadAllAfterDelete", func(t *testing.T) {
		var events model.EventsResponse
		client.GetJSON(t, "/events", &events)

		require.Len(t, events.Event, 1)
		assert.Equal(t, first.ID, events.Event[0].ID)
	})
}

func TestEventClient(t *testing.T) {
	t.Parallel()

	db := inttest.SetupDB(t)

	httpClient := inttest.SetupHTTPServer(t, func(engine *gin.Engine) {
		eventHandler := event.NewHandler(event.NewService(event.NewRepository(db)))
		event.Routes(engine, eventHandler)
	})
	c := client.New(httpClient.ServerURL, client.WithHTTPClient(httpClient.Client))

	created, err := c.Create(t.Context(), "X")
	require.NoError(t, err)
	assert.Equal(t, "X", created.Description)

	updated, err := c.Update(t.Context(), created.ID, "Y")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Y", updated.Description)

	found, err := c.Find(t.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)

	events, err := c.FindAll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []model.Event{updated}, events)

	require.NoError(t, c.Delete(t.Context(), created.ID))

	err = c.Delete(t.Context(), created.ID)
	assert.True(t, errdef.IsNotFound(err))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
