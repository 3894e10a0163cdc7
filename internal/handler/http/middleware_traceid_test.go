package http

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesWhenAbsent(t *testing.T) {
	srv := newTestServer(t)

	resp := getWithKey(t, srv.URL+"/health", "")
	defer resp.Body.Close()

	traceID := resp.Header.Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace id should be a uuid")
}

func TestWithTraceID_EchoesProvided(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-from-client")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-from-client", resp.Header.Get(traceIDHeader))
}
