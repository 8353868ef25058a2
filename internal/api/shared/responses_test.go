package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "world", body["hello"])
}

func TestRespondWithJSONNullBody(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	// Data-absent successes serialize as JSON null.
	RespondWithJSON(recorder, req, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "null", recorder.Body.String())
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(recorder, req, http.StatusForbidden, "Forbidden")

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Forbidden", resp.Error)
	assert.Len(t, resp.TraceID, 32)
}

func TestRespondWithErrorAndLogSanitizes(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	internal := errors.New("dial tcp 10.0.0.8:27017: connection refused")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Something went wrong", internal)

	// The raw error never reaches the client.
	assert.NotContains(t, recorder.Body.String(), "10.0.0.8")
	assert.Contains(t, recorder.Body.String(), "Something went wrong")
}

func TestTraceIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)

	assert.Len(t, traceID, 32)
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestUserEmailFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), UserEmailContextKey, "a@x.com")
	email, ok := UserEmail(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", email)

	_, ok = UserEmail(context.Background())
	assert.False(t, ok)

	// An empty stored email counts as absent.
	ctx = context.WithValue(context.Background(), UserEmailContextKey, "")
	_, ok = UserEmail(ctx)
	assert.False(t, ok)
}
