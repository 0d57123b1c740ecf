package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"taskmanager/internal/domain"

	"github.com/gin-gonic/gin"
)

// taskID parses the id path segment. Anything that is not a positive
// integer behaves like an id that does not exist.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListTasks returns every task. Order is unspecified.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	// empty list must serialize as [], not null
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, taskView(t))
	}
	c.JSON(http.StatusOK, views)
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	task, err := h.Store.FindByID(c.Request.Context(), id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		return
	}

	c.JSON(http.StatusOK, taskView(task))
}

// CreateTask validates the body, inserts the task and answers 201 with a
// Location pointing at the new resource. The completion flag is forced to
// false no matter what the client sent.
func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	task := req.toTask()
	task.IsCompleted = false

	if err := h.Store.Insert(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	c.JSON(http.StatusCreated, taskView(task))
}

// UpdateTask overwrites title, description and completion state of an
// existing task. Validation runs before the existence check.
func (h *Handler) UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	id, ok := taskID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	ctx := c.Request.Context()
	task, err := h.Store.FindByID(ctx, id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		return
	}

	req.apply(task)

	if err := h.Store.Update(ctx, task); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			// deleted between lookup and write; last writer loses here
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	err := h.Store.Delete(c.Request.Context(), id)
	if errors.Is(err, domain.ErrTaskNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}

	c.Status(http.StatusNoContent)
}
