package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrStorageUnavailable.Code, ErrStorageUnavailable.Status, "failed to insert document")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to insert document: connection refused", err.Error())
}

func TestFromErrorPassesThroughTypedErrors(t *testing.T) {
	typed := Clone(ErrNotFound, "course not found")
	got := FromError(fmt.Errorf("listing: %w", typed))

	require.NotNil(t, got)
	assert.Equal(t, "NOT_FOUND", got.Code)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Equal(t, "course not found", got.Message)
}

func TestFromErrorNormalisesUnknownErrors(t *testing.T) {
	got := FromError(errors.New("boom"))

	require.NotNil(t, got)
	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
}

func TestCloneLeavesOriginalUntouched(t *testing.T) {
	clone := Clone(ErrValidation, "year: must be at most 2100")

	assert.Equal(t, "year: must be at most 2100", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.Equal(t, ErrValidation.Code, clone.Code)
}
