package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, 200, map[string]int{"count": 3})

	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":3}`, rr.Body.String())
}

func TestRespondWithJSONNilPayload(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, 204, nil)

	assert.Equal(t, 204, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithError(rr, 404, "submission not found")

	assert.Equal(t, 404, rr.Code)
	var resp Response
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "submission not found", resp.Message)
}
