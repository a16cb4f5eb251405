package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_Generated(t *testing.T) {
	e := echo.New()

	handler := func(c echo.Context) error {
		assert.NotEmpty(t, GetRequestID(c))
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequestID()(handler)(c)
	assert.NoError(t, err)

	id := rec.Header().Get(RequestIDHeader)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
}

func TestRequestID_Propagated(t *testing.T) {
	e := echo.New()

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequestID()(handler)(c)
	assert.NoError(t, err)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "client-supplied-id", GetRequestID(c))
}
