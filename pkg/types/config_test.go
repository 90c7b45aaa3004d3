package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid sqlite backend",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/data"},
		},
		{
			name:   "empty data dir is allowed",
			config: Config{Backend: BackendSQLite},
		},
		{
			name:    "empty backend rejected",
			config:  Config{DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "bsddb"},
			wantErr: ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewHandleUnique(t *testing.T) {
	a := NewHandle()
	b := NewHandle()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
