package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	ts := newTestServer(deps{})
	defer ts.Close()

	resp := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Equal(t, "ok", got["status"])
}
