package validator

import (
	"testing"

	"go-pos-kasir/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string    `validate:"required"`
	Amount int64     `validate:"gte=0"`
	RefID  uuid.UUID `validate:"uuid_required"`
}

func TestValidateOK(t *testing.T) {
	err := Validate(&payload{Name: "Kopi", Amount: 100, RefID: uuid.New()})
	assert.NoError(t, err)
}

func TestValidateClassifiesFailure(t *testing.T) {
	err := Validate(&payload{Name: "", Amount: 100, RefID: uuid.New()})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "required")
}

func TestUUIDRequiredRejectsNil(t *testing.T) {
	err := Validate(&payload{Name: "Kopi", Amount: 100})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "uuid_required")
}

func TestValidateStructCollectsAll(t *testing.T) {
	errs := ValidateStruct(&payload{Amount: -1})
	assert.Len(t, errs, 3)
}
