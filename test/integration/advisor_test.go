package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"uniadvisor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/query", map[string]interface{}{"query": "Which IELTS score do I need?"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	data := helpers.ParseJSON(t, body)
	assert.Equal(t, "ielts", data["topic"])
	assert.Contains(t, data["answer"], "IELTS")

	res, body = ts.SendRequest(t, "POST", "/query", map[string]interface{}{"query": "   "})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, `"code":"MISSING_INPUT"`)
}

func TestVisa(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "GET", "/api/visa/requirements/germany", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "Germany", helpers.ParseJSON(t, body)["country_name"])

	res, body = ts.SendRequest(t, "GET", "/api/visa/requirements/JAPAN", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Country requirements not found")

	res, _ = ts.SendRequest(t, "GET", "/api/visa/requirements/1", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, body = ts.SendRequest(t, "GET", "/api/visa/countries", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var countries []map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &countries))
	assert.Len(t, countries, 3)
}
