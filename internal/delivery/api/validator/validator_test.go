package validator

import (
	"strings"
	"testing"

	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Street   string   `json:"street" validate:"required,max=255"`
	Zip      string   `json:"zip" validate:"max=32"`
	Email    *string  `json:"email" validate:"omitnil,email,max=255"`
	Latitude *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
}

type patchRequest struct {
	Door     optional.Value[string]  `json:"door" validate:"omitnil,max=255"`
	Street   optional.Value[string]  `json:"street" validate:"omitnil,min=1,max=255"`
	Email    optional.Value[string]  `json:"email" validate:"omitnil,email"`
	Latitude optional.Value[float64] `json:"latitude" validate:"omitnil,gte=-90,lte=90"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name    string
		input   any
		wantMsg string
	}{
		{
			name:  "valid create",
			input: &createRequest{Street: "123 Main St", Latitude: ptr(0.0)},
		},
		{
			name:    "missing fields",
			input:   &createRequest{},
			wantMsg: "street is required; latitude is required",
		},
		{
			name:    "latitude out of range",
			input:   &createRequest{Street: "x", Latitude: ptr(90.5)},
			wantMsg: "latitude must be less than or equal to 90",
		},
		{
			name:    "bad email",
			input:   &createRequest{Street: "x", Latitude: ptr(1.0), Email: ptr("nope")},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "street longer than its column",
			input:   &createRequest{Street: strings.Repeat("s", 256), Latitude: ptr(1.0)},
			wantMsg: "street must be at most 255 characters",
		},
		{
			name:  "street at its column width",
			input: &createRequest{Street: strings.Repeat("s", 255), Zip: strings.Repeat("9", 32), Latitude: ptr(1.0)},
		},
		{
			name:    "zip longer than its column",
			input:   &createRequest{Street: "x", Zip: strings.Repeat("9", 33), Latitude: ptr(1.0)},
			wantMsg: "zip must be at most 32 characters",
		},
		{
			name:    "width counts characters, not bytes",
			input:   &createRequest{Street: strings.Repeat("é", 256), Latitude: ptr(1.0)},
			wantMsg: "street must be at most 255 characters",
		},
		{
			name:  "multibyte street within width",
			input: &createRequest{Street: strings.Repeat("é", 200), Latitude: ptr(1.0)},
		},
		{
			name:    "present door is width checked",
			input:   &patchRequest{Door: optional.Of(strings.Repeat("d", 256))},
			wantMsg: "door must be at most 255 characters",
		},
		{
			name:  "empty patch is left to the usecase",
			input: &patchRequest{},
		},
		{
			name:  "empty door is allowed",
			input: &patchRequest{Door: optional.Of("")},
		},
		{
			name:    "empty street is rejected",
			input:   &patchRequest{Street: optional.Of("")},
			wantMsg: "street must not be empty",
		},
		{
			name:    "present email is checked",
			input:   &patchRequest{Email: optional.Of("not-an-email")},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "present latitude is range checked",
			input:   &patchRequest{Latitude: optional.Of(-91.0)},
			wantMsg: "latitude must be greater than or equal to -90",
		},
		{
			name:  "zero latitude is a value",
			input: &patchRequest{Latitude: optional.Of(0.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, domainerrors.IsValidation(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
