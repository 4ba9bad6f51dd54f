package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhis2-sre/event-log/internal/errdef"
	"github.com/dhis2-sre/event-log/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) find(ctx context.Context, id uint) (model.Event, error) {
	var event model.Event
	err := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Event{}, errdef.NewNotFound("event with id %d doesn't exist", id)
	}

	if err != nil {
		return model.Event{}, fmt.Errorf("failed to find event: %v", err)
	}

	return event, nil
}

func (r repository) findAll(ctx context.Context) ([]model.Event, error) {
	events := []model.Event{}
	err := r.db.
		WithContext(ctx).
		Order("create_at asc").
		Order("id asc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %v", err)
	}

	return events, nil
}

func (r repository) create(ctx context.Context, event *model.Event) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to create event: %v", err)
	}

	return nil
}

func (r repository) updateDescription(ctx context.Context, id uint, description string) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	db := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", id).
		Update("description", description)
	if db.Error != nil {
		return fmt.Errorf("failed to update event: %v", db.Error)
	}

	if db.RowsAffected < 1 {
		return errdef.NewNotFound("event with id %d doesn't exist", id)
	}

	return nil
}

func (r repository) delete(ctx context.Context, id uint) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	db := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete event: %v", db.Error)
	}

	if db.RowsAffected < 1 {
		return errdef.NewNotFound("event with id %d doesn't exist", id)
	}

	return nil
}
