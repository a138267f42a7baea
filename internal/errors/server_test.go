package errors_test

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	internalerrors "github.com/zestagio/geo-server/internal/errors"
)

func TestServerError(t *testing.T) {
	err := internalerrors.NewServerError(
		http.StatusNotFound,
		"resource not found",
		fmt.Errorf("open points.geojson: %w", fs.ErrNotExist),
	)
	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	code, msg, _ := internalerrors.ProcessServerError(fmt.Errorf("serve: %w", err))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "resource not found", msg)
}

func TestProcessServerError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		expCode    int
		expMsg     string
		expDetails string
	}{
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			expCode:    http.StatusNotFound,
			expMsg:     "Not Found",
			expDetails: "code=404, message=Not Found",
		},
		{
			name: "custom error",
			err: internalerrors.NewServerError(
				http.StatusInternalServerError,
				"cannot read resource",
				fmt.Errorf("read points.geojson: %w", io.ErrUnexpectedEOF),
			),
			expCode:    http.StatusInternalServerError,
			expMsg:     "cannot read resource",
			expDetails: "cannot read resource: read points.geojson: unexpected EOF",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("cannot serve file: %w", context.Canceled),
			expCode:    http.StatusInternalServerError,
			expMsg:     "something went wrong",
			expDetails: "cannot serve file: context canceled",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			code, msg, details := internalerrors.ProcessServerError(tt.err)
			assert.Equal(t, tt.expCode, code)
			assert.Equal(t, tt.expMsg, msg)
			assert.Equal(t, tt.expDetails, details)
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, internalerrors.HTTPStatus(http.StatusNotFound))
	assert.Equal(t, http.StatusMethodNotAllowed, internalerrors.HTTPStatus(http.StatusMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, internalerrors.HTTPStatus(1000))
	assert.Equal(t, http.StatusInternalServerError, internalerrors.HTTPStatus(0))
}
