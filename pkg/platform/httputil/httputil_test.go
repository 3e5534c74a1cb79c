package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "retireplan/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		code   dErrors.Code
		status int
		kind   string
	}{
		{dErrors.CodeMissingConsent, http.StatusBadRequest, "consent_error"},
		{dErrors.CodeValidation, http.StatusBadRequest, "validation_error"},
		{dErrors.CodeRender, http.StatusInternalServerError, "render_error"},
		{dErrors.CodeDelivery, http.StatusBadGateway, "delivery_error"},
		{dErrors.CodeStorage, http.StatusInternalServerError, "storage_error"},
		{dErrors.CodeTimeout, http.StatusGatewayTimeout, "timeout"},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, dErrors.New(tc.code, "something failed"))

			assert.Equal(t, tc.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.kind, body["error"])
			assert.Equal(t, "something failed", body["error_description"])
		})
	}

	t.Run("plain errors do not leak their message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("smtp password rejected for user x"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "internal_error", body["error"])
		assert.NotContains(t, body, "error_description")
	})
}
