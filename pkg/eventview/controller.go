// Package eventview holds the state behind the event log views: the events as last seen on the
// server and the create and edit forms. Remote mutations patch the local events instead of
// reloading them.
package eventview

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dhis2-sre/event-log/pkg/model"
)

// TimeLayout renders creation times as month/day followed by the short time of day.
const TimeLayout = "01/02,3:04 PM"

// Client is the subset of the event log API the controller needs.
type Client interface {
	FindAll(ctx context.Context) ([]model.Event, error)
	Create(ctx context.Context, description string) (model.Event, error)
	Update(ctx context.Context, id uint, description string) (model.Event, error)
	Delete(ctx context.Context, id uint) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithLocation sets the location creation times are rendered in. Defaults to [time.Local].
func WithLocation(location *time.Location) Option {
	return func(c *Controller) {
		c.location = location
	}
}

// Controller mirrors the server's events and holds the form state. Every method is safe for
// concurrent use, though overlapping mutations are applied in the order they complete.
type Controller struct {
	client   Client
	logger   *slog.Logger
	location *time.Location

	mu     sync.Mutex
	events []model.Event
	form   FormState
}

func New(client Client, logger *slog.Logger, options ...Option) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	controller := &Controller{
		client:   client,
		logger:   logger,
		location: time.Local,
	}

	for _, option := range options {
		option(controller)
	}

	return controller
}

// Load replaces the local events with the events on the server. Errors are returned as is and the
// local events are left untouched.
func (c *Controller) Load(ctx context.Context) error {
	events, err := c.client.FindAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = slices.Clone(events)
	return nil
}

// SetCreateText replaces the create buffer. Any text, including none, is accepted.
func (c *Controller) SetCreateText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = c.form.WithCreateText(text)
}

// SetEditText replaces the edit buffer while an event is being edited.
func (c *Controller) SetEditText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = c.form.WithEditText(text)
}

// Edit starts editing the given event. Editing another event retargets the single edit buffer.
func (c *Controller) Edit(event model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = c.form.Editing(event)
}

// Cancel stops editing without sending anything.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = c.form.Cancelled()
}

// Submit sends the form selected by the mode. While editing, the tracked event is updated with the
// edit buffer and replaced locally by the server's version. Otherwise an event is created from the
// create buffer and appended locally. Both buffers are cleared on success. On failure the error is
// logged and returned and nothing changes locally.
func (c *Controller) Submit(ctx context.Context) error {
	form := c.Form()

	if id, ok := form.EditingID(); ok {
		event, err := c.client.Update(ctx, id, form.EditText())
		if err != nil {
			c.logger.ErrorContext(ctx, "Failed to update event", "id", id, "error", err)
			return err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		c.events = replace(c.events, id, event)
		c.form = c.form.Cleared()
		return nil
	}

	event, err := c.client.Create(ctx, form.CreateText())
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to create event", "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(slices.Clip(c.events), event)
	c.form = c.form.Cleared()
	return nil
}

// Delete deletes the event with the given id and removes it locally. On failure the error is
// logged and returned and nothing changes locally. The form is left as is, even if the deleted
// event is being edited.
func (c *Controller) Delete(ctx context.Context, id uint) error {
	if err := c.client.Delete(ctx, id); err != nil {
		c.logger.ErrorContext(ctx, "Failed to delete event", "id", id, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = slices.DeleteFunc(slices.Clone(c.events), func(event model.Event) bool {
		return event.ID == id
	})
	return nil
}

// Events returns a copy of the local events.
func (c *Controller) Events() []model.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.events)
}

// Form returns the current form state.
func (c *Controller) Form() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Row is a single entry of the event list.
type Row struct {
	Event model.Event
	// Editing rows are rendered as an inline form holding Text.
	Editing bool
	// Time is the formatted creation time. Empty for editing rows.
	Time string
	// Text is the description for read-only rows and the edit buffer for editing rows.
	Text string
}

// String renders a read-only row as "<time>: <description>".
func (r Row) String() string {
	if r.Editing {
		return r.Text
	}
	return r.Time + ": " + r.Text
}

// Rows returns one row per local event, in order. The event being edited is rendered as an inline
// form, every other event as a read-only row.
func (c *Controller) Rows() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]Row, len(c.events))
	for i, event := range c.events {
		if c.form.IsEditing(event.ID) {
			rows[i] = Row{Event: event, Editing: true, Text: c.form.EditText()}
			continue
		}
		rows[i] = Row{Event: event, Time: FormatTime(event.CreateAt, c.location), Text: event.Description}
	}
	return rows
}

// FormatTime formats t in the given location using [TimeLayout].
func FormatTime(t time.Time, location *time.Location) string {
	return t.In(location).Format(TimeLayout)
}

// replace returns a copy of events where every event with the given id is replaced by event.
func replace(events []model.Event, id uint, event model.Event) []model.Event {
	replaced := slices.Clone(events)
	for i := range replaced {
		if replaced[i].ID == id {
			replaced[i] = event
		}
	}
	return replaced
}
