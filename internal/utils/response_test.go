package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryankirkland/99grind/internal/utils"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.Success(rec, map[string]int{"xp": 150})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
}

func TestErrorSimple(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.ErrorSimple(rec, http.StatusConflict, "You've already worked hard today!")

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "You've already worked hard today!", resp.Error)
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.Message(rec, "ok")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
}
