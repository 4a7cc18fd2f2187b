package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/projects/internal/domain/project"
	"github.com/rpggio/projects/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var (
		verr *project.ValidationError
		nf   *project.NotFoundError
		serr *repository.StoreError
	)
	switch {
	case errors.As(err, &nf):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: nf.Error(), Details: map[string]any{"id": nf.ID}, RecoveryHint: "Call list_projects for valid IDs"}
	case errors.As(err, &verr):
		apiErr := &APIError{Code: "INVALID_INPUT", Message: verr.Error(), RecoveryHint: "Read projects://docs/fields"}
		if verr.Field != "" {
			apiErr.Details = map[string]any{"field": verr.Field}
		}
		return apiErr
	case errors.As(err, &serr):
		return &APIError{Code: "STORE_ERROR", Message: serr.Error()}
	default:
		return nil
	}
}

// toolError converts err for return from a tool handler. The SDK reports
// a handler error to the client as a tool result with IsError set.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
