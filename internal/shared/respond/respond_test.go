package respond

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	JSON(rr, http.StatusCreated, map[string]int{"count": 2})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":2}`, rr.Body.String())
}

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()

	Error(rr, http.StatusBadGateway, "failed to load activities")

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.JSONEq(t, `{"error":"failed to load activities"}`, rr.Body.String())
}
