package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// snapshotRepository encodes whole collections as JSON documents in a DocumentStore.
type snapshotRepository struct {
	documents adapter.DocumentStore
}

// NewSnapshotRepository creates a snapshot repository over documents.
func NewSnapshotRepository(documents adapter.DocumentStore) adapter.SnapshotRepository {
	return &snapshotRepository{documents: documents}
}

// load decodes the document into dest, leaving dest untouched when it does not exist.
func (r *snapshotRepository) load(ctx context.Context, userID uuid.UUID, key adapter.DocumentKey, dest interface{}) error {
	payload, err := r.documents.Get(ctx, userID, key)
	if err != nil {
		return err
	}
	if payload == nil {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", key, err)
	}
	return nil
}

func (r *snapshotRepository) save(ctx context.Context, userID uuid.UUID, key adapter.DocumentKey, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", key, err)
	}
	return r.documents.Put(ctx, userID, key, payload)
}

func (r *snapshotRepository) LoadGoals(ctx context.Context, userID uuid.UUID) (*entity.GoalBoard, error) {
	var doc model.GoalsDocument
	if err := r.load(ctx, userID, adapter.DocumentGoals, &doc); err != nil {
		return nil, err
	}
	return doc.ToEntity(), nil
}

func (r *snapshotRepository) SaveGoals(ctx context.Context, userID uuid.UUID, board *entity.GoalBoard) error {
	return r.save(ctx, userID, adapter.DocumentGoals, model.GoalsDocumentFromEntity(board))
}

func (r *snapshotRepository) LoadHabits(ctx context.Context, userID uuid.UUID) (*entity.HabitBook, error) {
	var doc model.HabitsDocument
	if err := r.load(ctx, userID, adapter.DocumentHabits, &doc); err != nil {
		return nil, err
	}
	return doc.ToEntity(), nil
}

func (r *snapshotRepository) SaveHabits(ctx context.Context, userID uuid.UUID, book *entity.HabitBook) error {
	return r.save(ctx, userID, adapter.DocumentHabits, model.HabitsDocumentFromEntity(book))
}

func (r *snapshotRepository) LoadTodos(ctx context.Context, userID uuid.UUID) (*entity.TodoList, error) {
	var doc model.TodosDocument
	if err := r.load(ctx, userID, adapter.DocumentTodos, &doc); err != nil {
		return nil, err
	}
	return doc.ToEntity(), nil
}

func (r *snapshotRepository) SaveTodos(ctx context.Context, userID uuid.UUID, list *entity.TodoList) error {
	return r.save(ctx, userID, adapter.DocumentTodos, model.TodosDocumentFromEntity(list))
}

func (r *snapshotRepository) LoadSchedule(ctx context.Context, userID uuid.UUID) (*entity.Schedule, error) {
	var doc model.ScheduleDocument
	if err := r.load(ctx, userID, adapter.DocumentScheduleItems, &doc); err != nil {
		return nil, err
	}
	return doc.ToEntity(), nil
}

func (r *snapshotRepository) SaveSchedule(ctx context.Context, userID uuid.UUID, schedule *entity.Schedule) error {
	return r.save(ctx, userID, adapter.DocumentScheduleItems, model.ScheduleDocumentFromEntity(schedule))
}

func (r *snapshotRepository) LoadTemplates(ctx context.Context, userID uuid.UUID) (*entity.TemplateSet, error) {
	var doc model.TemplatesDocument
	if err := r.load(ctx, userID, adapter.DocumentTemplates, &doc); err != nil {
		return nil, err
	}
	return doc.ToEntity(), nil
}

func (r *snapshotRepository) SaveTemplates(ctx context.Context, userID uuid.UUID, templates *entity.TemplateSet) error {
	return r.save(ctx, userID, adapter.DocumentTemplates, model.TemplatesDocumentFromEntity(templates))
}

func (r *snapshotRepository) LoadSavedItems(ctx context.Context, userID uuid.UUID) (*entity.SavedItemSet, error) {
	var doc model.SavedItemsDocument
	if err := r.load(ctx, userID, adapter.DocumentSavedItems, &doc); err != nil {
		return nil, err
	}
	return doc.ToEntity(), nil
}

func (r *snapshotRepository) SaveSavedItems(ctx context.Context, userID uuid.UUID, items *entity.SavedItemSet) error {
	return r.save(ctx, userID, adapter.DocumentSavedItems, model.SavedItemsDocumentFromEntity(items))
}
