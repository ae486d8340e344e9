package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"versioned-task-api/internal/domain"
	"versioned-task-api/internal/http/dto"
	"versioned-task-api/internal/service"
)

type TaskService interface {
	CreateTask(fields domain.TaskFields) (domain.Task, error)
	GetTask(id int64) (domain.Task, error)
	ListTasks() ([]domain.Task, error)
	ReplaceTask(id int64, fields domain.TaskFields) (domain.Task, error)
	MergeTask(id int64, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(id int64) error
}

// TaskHandler serves the task endpoints of one API version. The router
// picks Replace or Merge as that version's PATCH handler.
type TaskHandler struct {
	taskService TaskService
}

func New(taskService TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// POST /{version}/task
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	task, err := h.taskService.CreateTask(req.Fields())
	if err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusCreated, dto.TaskEnvelope{
		Message: "Task created!",
		Task:    dto.NewTaskResponse(task),
	})
}

// GET /{version}/task/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusOK, dto.TaskEnvelope{Task: dto.NewTaskResponse(task)})
}

// GET /{version}/tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed getting tasks")

		return
	}

	response := dto.TaskListResponse{Tasks: make([]dto.TaskResponse, 0, len(tasks))}
	for _, task := range tasks {
		response.Tasks = append(response.Tasks, *dto.NewTaskResponse(task))
	}

	writeJSON(w, http.StatusOK, response)
}

// Replace overwrites the whole task; omitted fields go back to their defaults.
//
// PATCH /v1/task/{id}
func (h *TaskHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	task, err := h.taskService.ReplaceTask(id, req.Fields())
	if err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusOK, dto.TaskEnvelope{
		Message: "Task updated!",
		Task:    dto.NewTaskResponse(task),
	})
}

// Merge overwrites only the fields present in the body.
//
// PATCH /v2/task/{id}
func (h *TaskHandler) Merge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	task, err := h.taskService.MergeTask(id, req.Patch())
	if err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusOK, dto.TaskEnvelope{
		Message: "Task updated!",
		Task:    dto.NewTaskResponse(task),
	})
}

// DELETE /{version}/task/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		writeServiceError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, service.ErrInvalidID.Error())

		return 0, false
	}

	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, service.ErrInvalidID.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, service.ErrNotFound.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
