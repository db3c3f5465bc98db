package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("author", "author not found")

	assert.Equal(t, "author not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrAlreadyExists))

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("get author: %w", err)
		assert.True(t, errors.Is(wrapped, ErrNotFound))

		var nfe *NotFoundError
		assert.True(t, errors.As(wrapped, &nfe))
		assert.Equal(t, "author", nfe.Entity)
	})
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("author", "author with this email already exists")

	assert.Equal(t, "author with this email already exists", err.Error())
	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestValidationErrors(t *testing.T) {
	t.Run("formats field errors", func(t *testing.T) {
		err := &ValidationErrors{Errors: []FieldError{
			{Field: "name", Reason: "must not be empty"},
			{Field: "email", Reason: "must be a valid email address"},
		}}

		assert.Equal(t, "validation failed: name: must not be empty; email: must be a valid email address", err.Error())
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("empty list still reports failure", func(t *testing.T) {
		err := &ValidationErrors{}
		assert.Equal(t, "validation failed", err.Error())
	})
}
