package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eulerfn/partitionfn/httpapi"
	"github.com/eulerfn/partitionfn/partition"
)

func newTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.WarnLevel,
	)
	return zap.New(consoleCore)
}

func newTestServer() *httptest.Server {
	s := httpapi.NewServer(partition.New(), newTestLogger())
	return httptest.NewServer(s.Router())
}

type partitionResponse struct {
	N      int    `json:"n"`
	P      string `json:"p"`
	Cached bool   `json:"cached"`
}

func getPartition(t *testing.T, ts *httptest.Server, path string) (*http.Response, partitionResponse) {
	t.Helper()
	res, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	var body partitionResponse
	if res.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	}
	return res, body
}

func TestGetPartition(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	res, body := getPartition(t, ts, "/v1/partitions/10")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, partitionResponse{N: 10, P: "42", Cached: false}, body)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))

	// Same evaluator serves the second query from cache.
	res, body = getPartition(t, ts, "/v1/partitions/10")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, partitionResponse{N: 10, P: "42", Cached: true}, body)
}

func TestGetPartitionLargeValueIsExact(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	res, body := getPartition(t, ts, "/v1/partitions/100")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "190569292", body.P)
}

func TestGetPartitionRejectsBadInput(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	for _, path := range []string{"/v1/partitions/abc", "/v1/partitions/-3", "/v1/partitions/1.5"} {
		res, _ := getPartition(t, ts, path)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, path)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
