package serverdebug_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/geo-server/internal/logger"
	"github.com/zestagio/geo-server/internal/resources"
	"github.com/zestagio/geo-server/internal/server"
	serverdebug "github.com/zestagio/geo-server/internal/server-debug"
)

func TestServer_LoggerLevel(t *testing.T) {
	// Arrange.
	err := logger.Init(logger.NewOptions("debug"))
	require.NoError(t, err)

	testSrv := newTestServer(t, listerStub{})
	logLevelURL := testSrv.URL + "/log/level"

	cases := []struct {
		name      string
		level     string
		expStatus int
	}{
		{
			name:      "success set debug",
			level:     "debug",
			expStatus: http.StatusOK,
		},
		{
			name:      "set info",
			level:     "info",
			expStatus: http.StatusOK,
		},
		{
			name:      "set warn",
			level:     "warn",
			expStatus: http.StatusOK,
		},
		{
			name:      "set error",
			level:     "error",
			expStatus: http.StatusOK,
		},
		{
			name:      "unsupported level",
			level:     "any_invalid_level",
			expStatus: http.StatusBadRequest,
		},
		{
			name:      "empty level",
			level:     "",
			expStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			// Action.
			status := setLevel(t, logLevelURL, tt.level)

			// Assert.
			require.Equal(t, tt.expStatus, status)

			if tt.expStatus == http.StatusOK {
				lvl := getLevel(t, logLevelURL)
				assert.Equal(t, tt.level, lvl)
			}
		})
	}
}

func TestServer_Resources(t *testing.T) {
	testSrv := newTestServer(t, listerStub{
		{Path: "/your-backend-endpoint", File: "/srv/PointFileProjected.geojson", ContentType: resources.MIMEGeoJSON, Served: 42},
	})

	status, body := get(t, testSrv.URL+"/resources")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{
		"path": "/your-backend-endpoint",
		"file": "/srv/PointFileProjected.geojson",
		"contentType": "application/geo+json",
		"served": 42
	}]`, body)
}

func TestServer_Index(t *testing.T) {
	testSrv := newTestServer(t, listerStub{
		{Path: "/your-backend-endpoint", File: "/srv/PointFileProjected.geojson", ContentType: resources.MIMEGeoJSON, Served: 7},
	})

	status, body := get(t, testSrv.URL+"/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Geo Server Debug")
	assert.Contains(t, body, "/srv/PointFileProjected.geojson")
	assert.Contains(t, body, "/schema/public")
}

func TestServer_SchemaPublic(t *testing.T) {
	testSrv := newTestServer(t, listerStub{})

	status, body := get(t, testSrv.URL+"/schema/public")
	require.Equal(t, http.StatusOK, status)

	var schema struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &schema))
	assert.Equal(t, "3.0.3", schema.OpenAPI)
	assert.Contains(t, schema.Paths, "/your-backend-endpoint")
}

func TestServer_Version(t *testing.T) {
	testSrv := newTestServer(t, listerStub{})

	status, _ := get(t, testSrv.URL+"/version")
	assert.Equal(t, http.StatusOK, status)
}

func TestNew_InvalidOptions(t *testing.T) {
	swagger, err := server.GetSwagger()
	require.NoError(t, err)

	_, err = serverdebug.New(serverdebug.NewOptions("localhost", swagger, listerStub{}))
	require.Error(t, err)

	_, err = serverdebug.New(serverdebug.NewOptions(":3001", nil, listerStub{}))
	require.Error(t, err)

	_, err = serverdebug.New(serverdebug.NewOptions(":3001", swagger, nil))
	require.Error(t, err)
}

type listerStub []resources.Info

func (l listerStub) List() []resources.Info {
	return l
}

func newTestServer(t *testing.T, lister listerStub) *httptest.Server {
	t.Helper()

	swagger, err := server.GetSwagger()
	require.NoError(t, err)

	srv, err := serverdebug.New(serverdebug.NewOptions(":3001", swagger, lister))
	require.NoError(t, err)

	testSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(testSrv.Close)
	return testSrv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func setLevel(t *testing.T, url, level string) int {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url,
		io.NopCloser(strings.NewReader("level="+level)))
	require.NoError(t, err)

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()
	return resp.StatusCode
}

func getLevel(t *testing.T, url string) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Level string `json:"level"`
	}
	err = json.NewDecoder(resp.Body).Decode(&data)
	require.NoError(t, err)

	return data.Level
}
