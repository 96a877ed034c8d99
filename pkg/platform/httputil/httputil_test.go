package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "profiles/pkg/domain-errors"
)

type codedErr struct{ code dErrors.Code }

func (e codedErr) Error() string      { return "coded" }
func (e codedErr) Code() dErrors.Code { return e.code }

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "internal_error", body["error"])
		_, ok := body["error_description"]
		assert.False(t, ok)
	})

	t.Run("bad request includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid input"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "bad_request", body["error"])
		assert.Equal(t, "invalid input", body["error_description"])
	})

	t.Run("error exposing its own code wins", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, codedErr{code: dErrors.CodeConflict})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", decodeBody(t, w)["error"])
	})

	t.Run("plain error is internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(dErrors.CodeValidation))
	assert.Equal(t, http.StatusNotFound, StatusFor(dErrors.CodeNotFound))
	assert.Equal(t, http.StatusServiceUnavailable, StatusFor(dErrors.CodeUnavailable))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("something_else"))
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		ID string `json:"id"`
	}

	t.Run("decodes object", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"abc"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "abc", p.ID)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		err := DecodeJSON(r, &p)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		assert.Equal(t, "request body is required", err.Error())
	})

	t.Run("malformed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":`))
		var p payload
		assert.True(t, dErrors.HasCode(DecodeJSON(r, &p), dErrors.CodeBadRequest))
	})

	t.Run("trailing data", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"a"}{"id":"b"}`))
		var p payload
		assert.True(t, dErrors.HasCode(DecodeJSON(r, &p), dErrors.CodeBadRequest))
	})
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "abc", decodeBody(t, w)["id"])
}
