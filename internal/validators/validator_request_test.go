// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-taskflow/models"
)

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		in      any
		fields  []string
		wantErr error
	}{
		{name: "valid", in: models.Credentials{Login: "a", Password: "b"}},
		{name: "pointer valid", in: &models.Credentials{Login: "a", Password: "b"}},
		{name: "empty login", in: models.Credentials{Password: "b"}, wantErr: ErrEmptyCredentials},
		{name: "empty password", in: models.Credentials{Login: "a"}, wantErr: ErrEmptyCredentials},
		{name: "only login checked", in: models.Credentials{Login: "a"}, fields: []string{FieldLogin}},
		{name: "unknown field", in: models.Credentials{Login: "a", Password: "b"}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.in, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Tasks and notes
// ---------------------------------------------------------------------------

func TestValidate_Titles(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.TaskRequest{Title: "buy milk"}))
	assert.ErrorIs(t, v.Validate(ctx, models.TaskRequest{Title: "   "}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, &models.NoteRequest{}), ErrEmptyTitle)
	assert.NoError(t, v.Validate(ctx, models.NoteRequest{Title: "t", Content: ""}))
}

func TestValidate_StoredEntities(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Task{Title: "t", UserID: 1}))
	assert.ErrorIs(t, v.Validate(ctx, models.Task{Title: "t"}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.Note{Title: "t", UserID: 1}, FieldID), ErrInvalidID)
	assert.NoError(t, v.Validate(ctx, models.Note{ID: 3, Title: "t", UserID: 1}, FieldID, FieldTitle, FieldUserID))
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
