package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatusCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindStorageUnavailable, http.StatusInternalServerError},
		{KindGenerationFailed, http.StatusInternalServerError},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.StatusCode())
		})
	}
}

func TestKindOfSeesThroughWrapping(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("list memories: %w", StorageUnavailable(cause))

	assert.Equal(t, KindStorageUnavailable, KindOf(err))
	assert.True(t, Is(err, KindStorageUnavailable))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.False(t, Is(nil, KindInternal))
}

func TestErrorMessageKeepsCauseOutOfClientMessage(t *testing.T) {
	err := GenerationFailed(errors.New("quota exceeded"))
	assert.Equal(t, "Failed to generate response", err.Message)
	assert.Contains(t, err.Error(), "quota exceeded")
}
