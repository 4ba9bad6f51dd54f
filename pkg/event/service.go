package event

import (
	"context"
	"time"

	"github.com/dhis2-sre/event-log/pkg/model"
)

func NewService(eventRepository *repository) Service {
	return Service{
		eventRepository: eventRepository,
		now:             time.Now,
	}
}

type Service struct {
	eventRepository *repository
	now             func() time.Time
}

func (s Service) Find(ctx context.Context, id uint) (model.Event, error) {
	return s.eventRepository.find(ctx, id)
}

// FindAll returns all events ordered by their creation time.
func (s Service) FindAll(ctx context.Context) ([]model.Event, error) {
	return s.eventRepository.findAll(ctx)
}

func (s Service) Create(ctx context.Context, description string) (model.Event, error) {
	event := model.Event{
		Description: description,
		// PostgreSQL stores timestamps with microsecond precision
		CreateAt: s.now().UTC().Truncate(time.Microsecond),
	}

	err := s.eventRepository.create(ctx, &event)
	if err != nil {
		return model.Event{}, err
	}

	return event, nil
}

// Update replaces the description of the event. Its id and creation time stay the same.
func (s Service) Update(ctx context.Context, id uint, description string) (model.Event, error) {
	err := s.eventRepository.updateDescription(ctx, id, description)
	if err != nil {
		return model.Event{}, err
	}

	return s.eventRepository.find(ctx, id)
}

func (s Service) Delete(ctx context.Context, id uint) error {
	return s.eventRepository.delete(ctx, id)
}
