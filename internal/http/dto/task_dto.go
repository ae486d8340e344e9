package dto

import "versioned-task-api/internal/domain"

// TaskRequest is the body of create and update calls. Pointer fields tell
// an omitted (or null) field apart from a zero value.
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (r TaskRequest) Fields() domain.TaskFields {
	f := domain.TaskFields{
		Description: r.Description,
		Completed:   r.Completed,
	}
	if r.Title != nil {
		f.Title = *r.Title
	}

	return f
}

func (r TaskRequest) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func NewTaskResponse(t domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

type TaskEnvelope struct {
	Message string        `json:"message,omitempty"`
	Task    *TaskResponse `json:"task"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type RootResponse struct {
	Message  string   `json:"message"`
	Versions []string `json:"versions"`
}
