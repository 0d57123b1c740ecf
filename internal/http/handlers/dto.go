package handlers

import (
	"unicode/utf8"

	"taskmanager/internal/domain"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

// TaskView is the wire shape returned for a task.
type TaskView struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
}

// CreateTaskRequest is the create body. Completion state is never taken
// from the client; new tasks always start incomplete.
type CreateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateTaskRequest is the update body. IsCompleted is a pointer so that
// an omitted flag is a validation error rather than a silent false.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}

// FieldError is one entry of a 400 validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validateTitleDescription(title, description *string) []FieldError {
	var errs []FieldError

	if title == nil || *title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if utf8.RuneCountInString(*title) > maxTitleLen {
		errs = append(errs, FieldError{Field: "title", Message: "title must be at most 100 characters"})
	}

	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		errs = append(errs, FieldError{Field: "description", Message: "description must be at most 500 characters"})
	}

	return errs
}

// Validate collects all field errors instead of stopping at the first.
func (r *CreateTaskRequest) Validate() []FieldError {
	return validateTitleDescription(r.Title, r.Description)
}

func (r *UpdateTaskRequest) Validate() []FieldError {
	errs := validateTitleDescription(r.Title, r.Description)
	if r.IsCompleted == nil {
		errs = append(errs, FieldError{Field: "isCompleted", Message: "isCompleted is required"})
	}
	return errs
}

func taskView(t *domain.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
	}
}

// toTask maps the create body to a fresh entity. The id stays zero for
// the store to assign, and the caller decides the completion state.
func (r *CreateTaskRequest) toTask() *domain.Task {
	return &domain.Task{
		Title:       r.Title,
		Description: r.Description,
	}
}

// apply overwrites the mutable fields of an existing task in place,
// leaving the id untouched. Only called after validation, so IsCompleted
// is non-nil here.
func (r *UpdateTaskRequest) apply(t *domain.Task) {
	t.Title = r.Title
	t.Description = r.Description
	t.IsCompleted = *r.IsCompleted
}
