package service

import (
	"fmt"
	"versioned-task-api/internal/domain"
)

type TaskStore interface {
	FindByID(id int64) (domain.Task, bool)
	Create(fields domain.TaskFields) (domain.Task, error)
	Replace(id int64, fields domain.TaskFields) (domain.Task, bool)
	Merge(id int64, patch domain.TaskPatch) (domain.Task, bool)
	Delete(id int64) bool
	List() ([]domain.Task, error)
}

// TaskService validates input and runs task operations against one store.
// Each API version owns its own service and store.
type TaskService struct {
	store TaskStore
}

func New(store TaskStore) (*TaskService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	return &TaskService{store: store}, nil
}

func (s *TaskService) CreateTask(fields domain.TaskFields) (domain.Task, error) {
	title, ok := domain.NormalizeTitle(fields.Title)
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	fields.Title = title

	return s.store.Create(fields)
}

func (s *TaskService) GetTask(id int64) (domain.Task, error) {
	if id <= 0 {
		return domain.Task{}, ErrInvalidID
	}

	task, ok := s.store.FindByID(id)
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

func (s *TaskService) ListTasks() ([]domain.Task, error) {
	return s.store.List()
}

// ReplaceTask overwrites the whole task. Description and completion revert
// to their defaults when fields leaves them nil.
func (s *TaskService) ReplaceTask(id int64, fields domain.TaskFields) (domain.Task, error) {
	if id <= 0 {
		return domain.Task{}, ErrInvalidID
	}

	title, ok := domain.NormalizeTitle(fields.Title)
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	fields.Title = title

	task, ok := s.store.Replace(id, fields)
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

// MergeTask overwrites only the fields present in patch.
func (s *TaskService) MergeTask(id int64, patch domain.TaskPatch) (domain.Task, error) {
	if id <= 0 {
		return domain.Task{}, ErrInvalidID
	}

	if patch.Title != nil {
		title, ok := domain.NormalizeTitle(*patch.Title)
		if !ok {
			return domain.Task{}, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		patch.Title = &title
	}

	task, ok := s.store.Merge(id, patch)
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

func (s *TaskService) DeleteTask(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	if !s.store.Delete(id) {
		return ErrNotFound
	}
	return nil
}
