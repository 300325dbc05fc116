//go:build e2e

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showsapi/showsapi/internal/handler/dto"
)

// TestE2ESmoke drives a running server. Start it with any store driver and
// point SHOWS_BASE_URL at it. The test reseeds the store.
func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("SHOWS_BASE_URL", "http://localhost:3000")
	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Get(baseURL + "/readyz")
	if err != nil {
		t.Skipf("server not available: %v", err)
	}
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "server not ready")

	var seeded dto.SeedResponse
	status := doJSON(t, client, http.MethodPost, baseURL+"/api/users/seed", nil, &seeded)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 4, seeded.Count)

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	var created dto.UserResponse
	status = doJSON(t, client, http.MethodPost, baseURL+"/api/users",
		map[string]any{"name": "  E2E User  ", "email": email, "age": 33}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotNil(t, created.Data)
	assert.Equal(t, "E2E User", created.Data.Name)

	var dup dto.ErrorResponse
	status = doJSON(t, client, http.MethodPost, baseURL+"/api/users",
		map[string]any{"name": "Again", "email": email, "age": 20}, &dup)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, dup.Success)

	var list dto.UserListResponse
	status = doJSON(t, client, http.MethodGet, baseURL+"/api/users", nil, &list)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, list.Count)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func doJSON(t *testing.T, client *http.Client, method, url string, in, out any) int {
	t.Helper()

	var body bytes.Buffer
	if in != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(in))
	}

	req, err := http.NewRequest(method, url, &body)
	require.NoError(t, err)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
