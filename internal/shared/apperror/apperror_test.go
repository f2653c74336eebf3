package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-workboard/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type employeeForm struct {
	Name        string `json:"name" binding:"required"`
	JoiningDate string `json:"joiningDate" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	t.Run("required field uses json name as label", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(employeeForm{Email: "a@b.co", JoiningDate: "2026-01-01"})
		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, "Name is required", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("camel case field is split", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(employeeForm{Name: "Ana", Email: "a@b.co"})
		mapped := apperror.MapValidationError(err)
		assert.Equal(t, "Joining Date is required", mapped.Error())
	})

	t.Run("non required tag is invalid", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(employeeForm{Name: "Ana", JoiningDate: "2026-01-01", Email: "nope"})
		mapped := apperror.MapValidationError(err)
		assert.Equal(t, "Email is invalid", mapped.Error())
	})

	t.Run("non validator error", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("unexpected EOF"))
		assert.Equal(t, "Invalid input", mapped.Error())
	})
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		wrapped := fmt.Errorf("service: %w", apperror.ErrForbidden)
		httpErr := apperror.ToHTTP(wrapped)
		assert.Equal(t, http.StatusForbidden, httpErr.Status)
		assert.Equal(t, apperror.CodeForbidden, httpErr.Code)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}
