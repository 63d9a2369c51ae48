package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "missing")))
	assert.Equal(t, KindValidation, KindOf(Newf(KindValidation, "field %s", "name")))
	assert.Equal(t, KindPersistence, KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestKindOfWrappedChain(t *testing.T) {
	inner := New(KindConflict, "duplicate number")
	outer := fmt.Errorf("create sale: %w", inner)

	assert.True(t, IsConflict(outer))
	assert.Equal(t, KindConflict, KindOf(outer))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindPersistence, cause, "read product")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "read product")
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "read product", err.Message())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(New(KindValidation, "bad input")))
	assert.True(t, IsNotFound(New(KindNotFound, "gone")))
	assert.False(t, IsConflict(New(KindNotFound, "gone")))
	assert.False(t, IsValidation(nil))
}
