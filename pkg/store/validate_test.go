package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		wantErr string
	}{
		{
			name: "valid",
			fields: map[string]any{
				"name": "Leanne Graham", "username": "Bret", "email": "Sincere@april.biz",
			},
		},
		{
			name:    "missing name",
			fields:  map[string]any{"username": "Bret", "email": "a@b.c"},
			wantErr: "Name, email, and username are required",
		},
		{
			name:    "missing email",
			fields:  map[string]any{"name": "Leanne", "username": "Bret"},
			wantErr: "Name, email, and username are required",
		},
		{
			name:    "missing username",
			fields:  map[string]any{"name": "Leanne", "email": "a@b.c"},
			wantErr: "Name, email, and username are required",
		},
		{
			name:    "empty body",
			fields:  map[string]any{},
			wantErr: "Name, email, and username are required",
		},
		{
			name:    "non-string name",
			fields:  map[string]any{"name": 42, "username": "Bret", "email": "a@b.c"},
			wantErr: "Name, email, and username are required",
		},
		{
			name:    "email without at sign",
			fields:  map[string]any{"name": "Leanne", "username": "Bret", "email": "not-an-email"},
			wantErr: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(tt.fields)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, 400, ve.StatusCode())
		})
	}
}
