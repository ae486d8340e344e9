package service

import (
	"errors"
	"testing"

	"versioned-task-api/internal/domain"
	"versioned-task-api/internal/store/memory"
)

// --- fakes ---

type fakeStore struct {
	findFn    func(int64) (domain.Task, bool)
	createFn  func(domain.TaskFields) (domain.Task, error)
	replaceFn func(int64, domain.TaskFields) (domain.Task, bool)
	mergeFn   func(int64, domain.TaskPatch) (domain.Task, bool)
	deleteFn  func(int64) bool
	listFn    func() ([]domain.Task, error)
}

func (s *fakeStore) FindByID(id int64) (domain.Task, bool) {
	return s.findFn(id)
}
func (s *fakeStore) Create(f domain.TaskFields) (domain.Task, error) {
	return s.createFn(f)
}
func (s *fakeStore) Replace(id int64, f domain.TaskFields) (domain.Task, bool) {
	return s.replaceFn(id, f)
}
func (s *fakeStore) Merge(id int64, p domain.TaskPatch) (domain.Task, bool) {
	return s.mergeFn(id, p)
}
func (s *fakeStore) Delete(id int64) bool {
	return s.deleteFn(id)
}
func (s *fakeStore) List() ([]domain.Task, error) {
	return s.listFn()
}

// untouchedStore fails the test on any call.
func untouchedStore(t *testing.T) *fakeStore {
	t.Helper()

	return &fakeStore{
		findFn: func(int64) (domain.Task, bool) {
			t.Fatalf("FindByID() should not be called")
			return domain.Task{}, false
		},
		createFn: func(domain.TaskFields) (domain.Task, error) {
			t.Fatalf("Create() should not be called")
			return domain.Task{}, nil
		},
		replaceFn: func(int64, domain.TaskFields) (domain.Task, bool) {
			t.Fatalf("Replace() should not be called")
			return domain.Task{}, false
		},
		mergeFn: func(int64, domain.TaskPatch) (domain.Task, bool) {
			t.Fatalf("Merge() should not be called")
			return domain.Task{}, false
		},
		deleteFn: func(int64) bool {
			t.Fatalf("Delete() should not be called")
			return false
		},
		listFn: func() ([]domain.Task, error) {
			t.Fatalf("List() should not be called")
			return nil, nil
		},
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// --- tests ---

func TestNew_NilStore(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatalf("New() err=nil, want non-nil")
	}
	if !errors.Is(err, ErrStoreNil) {
		t.Fatalf("New() err=%v, want %v", err, ErrStoreNil)
	}
}

func TestCreateTask_InvalidInput(t *testing.T) {
	svc, err := New(untouchedStore(t))
	if err != nil {
		t.Fatalf("New() err=%v, want nil", err)
	}

	for _, title := range []string{"", "   "} {
		_, e := svc.CreateTask(domain.TaskFields{Title: title})
		if !errors.Is(e, ErrInvalidInput) {
			t.Fatalf("CreateTask(%q) err=%v, want %v", title, e, ErrInvalidInput)
		}
	}
}

func TestCreateTask_TrimsTitle(t *testing.T) {
	var got domain.TaskFields
	store := untouchedStore(t)
	store.createFn = func(f domain.TaskFields) (domain.Task, error) {
		got = f
		task := f.Task()
		task.ID = 1
		return task, nil
	}

	svc, _ := New(store)

	out, err := svc.CreateTask(domain.TaskFields{Title: "  Lab Activity "})
	if err != nil {
		t.Fatalf("CreateTask() err=%v, want nil", err)
	}
	if got.Title != "Lab Activity" {
		t.Fatalf("store received title=%q, want %q", got.Title, "Lab Activity")
	}
	if out.ID != 1 {
		t.Fatalf("out.ID=%d, want 1", out.ID)
	}
}

func TestCreateTask_StoreError(t *testing.T) {
	boom := errors.New("boom")
	store := untouchedStore(t)
	store.createFn = func(domain.TaskFields) (domain.Task, error) { return domain.Task{}, boom }

	svc, _ := New(store)

	if _, err := svc.CreateTask(domain.TaskFields{Title: "t"}); !errors.Is(err, boom) {
		t.Fatalf("CreateTask() err=%v, want %v", err, boom)
	}
}

func TestGetTask_InvalidID(t *testing.T) {
	svc, _ := New(untouchedStore(t))

	_, err := svc.GetTask(0)
	if err == nil || !errors.Is(err, ErrInvalidID) {
		t.Fatalf("GetTask() err=%v, want %v", err, ErrInvalidID)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	store := untouchedStore(t)
	store.findFn = func(int64) (domain.Task, bool) { return domain.Task{}, false }

	svc, _ := New(store)

	if _, err := svc.GetTask(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetTask() err=%v, want %v", err, ErrNotFound)
	}
}

func TestReplaceTask_RequiresTitle(t *testing.T) {
	svc, _ := New(untouchedStore(t))

	_, err := svc.ReplaceTask(1, domain.TaskFields{Completed: boolPtr(true)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ReplaceTask() err=%v, want %v", err, ErrInvalidInput)
	}
}

func TestReplaceTask_NotFound(t *testing.T) {
	store := untouchedStore(t)
	store.replaceFn = func(int64, domain.TaskFields) (domain.Task, bool) { return domain.Task{}, false }

	svc, _ := New(store)

	if _, err := svc.ReplaceTask(5, domain.TaskFields{Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ReplaceTask() err=%v, want %v", err, ErrNotFound)
	}
}

func TestMergeTask_EmptyTitleRejected(t *testing.T) {
	svc, _ := New(untouchedStore(t))

	_, err := svc.MergeTask(1, domain.TaskPatch{Title: strPtr("  ")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("MergeTask() err=%v, want %v", err, ErrInvalidInput)
	}
}

func TestMergeTask_WithoutTitle(t *testing.T) {
	var got domain.TaskPatch
	store := untouchedStore(t)
	store.mergeFn = func(id int64, p domain.TaskPatch) (domain.Task, bool) {
		got = p
		return domain.Task{ID: id, Title: "kept", Completed: true}, true
	}

	svc, _ := New(store)

	out, err := svc.MergeTask(1, domain.TaskPatch{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("MergeTask() err=%v, want nil", err)
	}
	if got.Title != nil || got.Description != nil {
		t.Fatalf("store received patch=%+v, want only completed", got)
	}
	if out.Title != "kept" {
		t.Fatalf("out.Title=%q, want %q", out.Title, "kept")
	}
}

func TestDeleteTask(t *testing.T) {
	store := untouchedStore(t)
	store.deleteFn = func(id int64) bool { return id == 1 }

	svc, _ := New(store)

	if err := svc.DeleteTask(1); err != nil {
		t.Fatalf("DeleteTask(1) err=%v, want nil", err)
	}
	if err := svc.DeleteTask(2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteTask(2) err=%v, want %v", err, ErrNotFound)
	}
	if err := svc.DeleteTask(-1); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("DeleteTask(-1) err=%v, want %v", err, ErrInvalidID)
	}
}

// Walks the create/merge/replace scenario against two independent stores.
func TestVersionScenario_ReplaceVersusMerge(t *testing.T) {
	v1, _ := New(memory.New())
	v2, _ := New(memory.New())

	for _, svc := range []*TaskService{v1, v2} {
		created, err := svc.CreateTask(domain.TaskFields{Title: "Lab Activity"})
		if err != nil {
			t.Fatalf("CreateTask() err=%v, want nil", err)
		}
		if created.ID != 1 || created.Description != "" || created.Completed {
			t.Fatalf("CreateTask()=%+v, want id=1 with defaults", created)
		}
		if _, err := svc.MergeTask(1, domain.TaskPatch{Description: strPtr("Create Lab Act 2")}); err != nil {
			t.Fatalf("MergeTask() err=%v, want nil", err)
		}
	}

	merged, err := v2.MergeTask(1, domain.TaskPatch{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("MergeTask() err=%v, want nil", err)
	}
	if merged.Title != "Lab Activity" || merged.Description != "Create Lab Act 2" || !merged.Completed {
		t.Fatalf("MergeTask()=%+v, want title and description kept, completed=true", merged)
	}

	replaced, err := v1.ReplaceTask(1, domain.TaskFields{Title: "X"})
	if err != nil {
		t.Fatalf("ReplaceTask() err=%v, want nil", err)
	}
	if replaced.Title != "X" || replaced.Description != "" || replaced.Completed {
		t.Fatalf("ReplaceTask()=%+v, want description reset", replaced)
	}

	// v2 is untouched by the v1 replace
	got, _ := v2.GetTask(1)
	if got.Title != "Lab Activity" {
		t.Fatalf("v2 GetTask().Title=%q, want %q", got.Title, "Lab Activity")
	}
}
