package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleReady_DatabaseUp(t *testing.T) {
	server := &Server{dbHealth: func() map[string]string {
		return map[string]string{"status": "up", "message": "It's healthy"}
	}}

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()

	server.handleReady(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]string
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "up", response["status"])
}

func TestHandleReady_DatabaseDown(t *testing.T) {
	server := &Server{dbHealth: func() map[string]string {
		return map[string]string{"status": "down", "error": "db down: connection refused"}
	}}

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()

	server.handleReady(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)

	var response map[string]string
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "down", response["status"])
	assert.Contains(t, response["error"], "db down")
}
