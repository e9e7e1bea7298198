package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/task-saga-service/internal/domain"
	"github.com/jsamuelsen11/task-saga-service/internal/domain/task"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// validate is shared by all request DTOs; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so error locations match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DetailRequest is one task detail in a create or update body.
type DetailRequest struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description" validate:"required,max=1000"`
	Notes       *string `json:"notes,omitempty" validate:"omitnil,max=4000"`
}

// CreateTaskRequest represents the JSON body for creating a task with its
// details.
type CreateTaskRequest struct {
	UserID  int64           `json:"user_id" validate:"gt=0"`
	Title   string          `json:"task_title" validate:"required,max=255"`
	Status  string          `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	Details []DetailRequest `json:"details" validate:"dive"`
}

// Validate checks struct tags and returns a *domain.ValidationError keyed by
// JSON field path.
func (r *CreateTaskRequest) Validate() error {
	return validateStruct(r)
}

// ToInput maps the request to the service input. Detail ids are ignored on
// create.
func (r *CreateTaskRequest) ToInput() ports.CreateTaskInput {
	details := toDetailInputs(r.Details)
	for i := range details {
		details[i].ID = ""
	}
	return ports.CreateTaskInput{
		UserID:  r.UserID,
		Title:   r.Title,
		Status:  task.Status(r.Status),
		Details: details,
	}
}

// UpdateTaskRequest represents the JSON body for updating a task. Omitted
// fields are left unchanged. An omitted details array keeps the stored
// details; a present one, even empty, replaces them. Details carrying an id
// keep or edit that stored detail.
type UpdateTaskRequest struct {
	Title   *string         `json:"task_title,omitempty" validate:"omitnil,min=1,max=255"`
	Status  *string         `json:"status,omitempty" validate:"omitnil,oneof=pending in_progress completed"`
	Details []DetailRequest `json:"details" validate:"dive"`
}

// Validate checks struct tags and returns a *domain.ValidationError keyed by
// JSON field path.
func (r *UpdateTaskRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	seen := make(map[string]bool, len(r.Details))
	for i, d := range r.Details {
		if d.ID == "" {
			continue
		}
		if seen[d.ID] {
			return domain.NewValidationError(fmt.Sprintf("details[%d].id", i), "duplicate detail id")
		}
		seen[d.ID] = true
	}
	return nil
}

// ToInput maps the request to the service input.
func (r *UpdateTaskRequest) ToInput() ports.UpdateTaskInput {
	in := ports.UpdateTaskInput{Title: r.Title}
	if r.Status != nil {
		s := task.Status(*r.Status)
		in.Status = &s
	}
	if r.Details != nil {
		in.Details = toDetailInputs(r.Details)
	}
	return in
}

func toDetailInputs(details []DetailRequest) []ports.DetailInput {
	out := make([]ports.DetailInput, 0, len(details))
	for _, d := range details {
		out = append(out, ports.DetailInput{
			ID:          d.ID,
			Description: d.Description,
			Notes:       d.Notes,
		})
	}
	return out
}

// validateStruct runs tag validation and converts failures to a
// *domain.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = message(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

// fieldPath drops the struct name from the namespace, e.g.
// "CreateTaskRequest.details[0].description" -> "details[0].description".
func fieldPath(fe validator.FieldError) string {
	_, path, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "min":
		if fe.Param() == "1" {
			return domain.MsgMustNotEmpty
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("invalid: %q", fmt.Sprint(fe.Value()))
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
