package store

import (
	"fmt"
	"versioned-task-api/internal/domain"
)

// TaskStore holds the tasks of a single API version. Lookups report absence
// with a false ok value instead of an error.
type TaskStore interface {
	FindByID(id int64) (domain.Task, bool)
	Create(fields domain.TaskFields) (domain.Task, error)
	// Replace overwrites every field; fields left nil revert to their defaults.
	Replace(id int64, fields domain.TaskFields) (domain.Task, bool)
	// Merge overwrites only the fields present in the patch.
	Merge(id int64, patch domain.TaskPatch) (domain.Task, bool)
	Delete(id int64) bool
	List() ([]domain.Task, error)
	Len() int
}

// IDPolicy decides how a store assigns the ID of a new task.
type IDPolicy string

const (
	// IDPolicySize assigns len(tasks)+1 at call time. After a delete this can
	// hand out an ID that is still held by an existing task.
	IDPolicySize IDPolicy = "size"
	// IDPolicyMonotonic assigns one more than the highest ID ever handed out.
	IDPolicyMonotonic IDPolicy = "monotonic"
)

func ParseIDPolicy(s string) (IDPolicy, error) {
	switch p := IDPolicy(s); p {
	case IDPolicySize, IDPolicyMonotonic:
		return p, nil
	case "":
		return IDPolicySize, nil
	default:
		return "", fmt.Errorf("unknown id policy %q", s)
	}
}
