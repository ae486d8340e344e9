package memory

import (
	"sync"
	"versioned-task-api/internal/domain"
	"versioned-task-api/internal/store"
)

var _ store.TaskStore = (*TaskStore)(nil)

type TaskStore struct {
	mu     sync.RWMutex
	policy store.IDPolicy
	lastID int64
	tasks  []domain.Task
	seed   []domain.TaskFields
}

type Option func(*TaskStore)

func WithIDPolicy(policy store.IDPolicy) Option {
	return func(ts *TaskStore) {
		ts.policy = policy
	}
}

// WithSeed stores the given tasks as if they were created in order.
func WithSeed(fields ...domain.TaskFields) Option {
	return func(ts *TaskStore) {
		ts.seed = append(ts.seed, fields...)
	}
}

func New(opts ...Option) *TaskStore {
	ts := &TaskStore{
		policy: store.IDPolicySize,
		tasks:  make([]domain.Task, 0),
	}
	for _, opt := range opts {
		opt(ts)
	}

	// seeded after every option so IDs follow the configured policy
	for _, f := range ts.seed {
		ts.insert(f.Task())
	}
	ts.seed = nil

	return ts
}

func (ts *TaskStore) FindByID(id int64) (domain.Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}

	// task is non-pointer value
	return ts.tasks[i], true
}

func (ts *TaskStore) Create(fields domain.TaskFields) (domain.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	return ts.insert(fields.Task()), nil
}

func (ts *TaskStore) Replace(id int64, fields domain.TaskFields) (domain.Task, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}

	task := fields.Task()
	task.ID = ts.tasks[i].ID
	ts.tasks[i] = task

	return task, true
}

func (ts *TaskStore) Merge(id int64, patch domain.TaskPatch) (domain.Task, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}

	ts.tasks[i] = patch.Apply(ts.tasks[i])

	return ts.tasks[i], true
}

func (ts *TaskStore) Delete(id int64) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return false
	}

	// keep insertion order, remaining IDs are not renumbered
	ts.tasks = append(ts.tasks[:i], ts.tasks[i+1:]...)

	return true
}

func (ts *TaskStore) List() ([]domain.Task, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	tasks := make([]domain.Task, len(ts.tasks))
	copy(tasks, ts.tasks)

	return tasks, nil
}

func (ts *TaskStore) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return len(ts.tasks)
}

// insert assigns the next ID and appends. Caller holds mu.
func (ts *TaskStore) insert(task domain.Task) domain.Task {
	switch ts.policy {
	case store.IDPolicyMonotonic:
		task.ID = ts.lastID + 1
	default:
		task.ID = int64(len(ts.tasks)) + 1
	}
	if task.ID > ts.lastID {
		ts.lastID = task.ID
	}

	ts.tasks = append(ts.tasks, task)

	return task
}

// indexOf returns the position of the first task with the given ID, or -1.
func (ts *TaskStore) indexOf(id int64) int {
	for i := range ts.tasks {
		if ts.tasks[i].ID == id {
			return i
		}
	}

	return -1
}
