package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdev-order-api/models"
	"webdev-order-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runTransitionError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondTransitionError(c, err)
	return w
}

func TestRespondTransitionError_StatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", services.ErrApplicationNotFound, http.StatusNotFound},
		{"invalid status", services.ErrInvalidStatus, http.StatusBadRequest},
		{"permission denied", services.ErrPermissionDenied, http.StatusForbidden},
		// Retry-safe failures must stay 5xx so clients classifying by
		// status code never confuse them with the 409 illegal transition.
		{"concurrent modification", services.ErrConcurrentModification, http.StatusServiceUnavailable},
		{"persistence", services.ErrPersistence, http.StatusInternalServerError},
		{"integrity violation", services.ErrIntegrityViolation, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := runTransitionError(t, tc.err)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestRespondTransitionError_IllegalTransitionCarriesAlternatives(t *testing.T) {
	w := runTransitionError(t, &services.IllegalTransitionError{
		From:    models.StatusInReview,
		To:      models.StatusCompleted,
		Allowed: services.AvailableTransitions(models.StatusInReview),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"current_status":"in_review"`)
	assert.Contains(t, body, models.StatusNeedsInfo)
	assert.Contains(t, body, models.StatusEstimated)
	assert.Contains(t, body, models.StatusCancelled)
}

func TestRespondTransitionError_RetrySafeErrorsAreNeverConflict(t *testing.T) {
	for _, err := range []error{services.ErrConcurrentModification, services.ErrPersistence} {
		w := runTransitionError(t, err)
		require.GreaterOrEqual(t, w.Code, http.StatusInternalServerError, err.Error())
	}
}

func resetRequestWithBody(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	req, err := http.NewRequest(http.MethodPost, "/api/v1/applications/1/reset", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	ResetApplicationToDraft(c)
	return w
}

func TestResetApplicationToDraft_MalformedBodyRejected(t *testing.T) {
	for _, body := range []string{`{"reason":`, `not json`, `{"reason": 5}`} {
		w := resetRequestWithBody(t, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestResetApplicationToDraft_EmptyBodyPassesBinding(t *testing.T) {
	// An empty body is fine: binding is skipped and the handler moves on to
	// authentication, which fails here because no user is set.
	w := resetRequestWithBody(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
