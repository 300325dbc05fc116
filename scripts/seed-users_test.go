package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showsapi/showsapi/internal/model"
)

func TestRun_RejectsBadArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"memory driver", []string{"-driver", "memory"}, "memory driver"},
		{"unknown driver", []string{"-driver", "sqlite"}, `unsupported store driver "sqlite"`},
		{"invalid format", []string{"-driver", "postgres", "-database-url", "postgres://unreachable.invalid/db", "-format", "yaml"}, `invalid format "yaml"`},
		{"unknown flag", []string{"-verbose"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := run(context.Background(), tt.args, &stdout)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestWriteOutput(t *testing.T) {
	users := []*model.User{
		{ID: "u1", Name: "John Doe", Email: "john@example.com", Age: 25, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	out := output{Driver: "mongo", CacheInvalidated: true, Count: 1, Users: users}

	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeOutput(&buf, "plain", out))
		assert.Equal(t, "u1\tjohn@example.com\tJohn Doe\t25\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeOutput(&buf, "json", out))

		var got output
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "mongo", got.Driver)
		assert.True(t, got.CacheInvalidated)
		assert.Equal(t, 1, got.Count)
		require.Len(t, got.Users, 1)
		assert.Equal(t, "john@example.com", got.Users[0].Email)
	})
}
