package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveFlags(t *testing.T, args ...string) *ServeFlags {
	t.Helper()
	fs, flags := SetupServeFlags()
	require.NoError(t, fs.Parse(args))
	return flags
}

func TestSetupServeFlags(t *testing.T) {
	flags := serveFlags(t)
	assert.Equal(t, ":8080", flags.Addr)
	assert.Equal(t, "/openapi.json", flags.JSONPath)
	assert.Equal(t, "/openapi.yaml", flags.YAMLPath)
	assert.False(t, flags.Strict)
	assert.False(t, flags.Verbose)
}

func TestNewServeHandler(t *testing.T) {
	captureOutput(t, "")
	handler, err := NewServeHandler(writeManifest(t, testManifest), serveFlags(t))
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/openapi.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "Pet Store", doc.Info.Title)

	yamlResp, err := http.Get(srv.URL + "/openapi.yaml")
	require.NoError(t, err)
	defer yamlResp.Body.Close()
	assert.Equal(t, http.StatusOK, yamlResp.StatusCode)
	assert.Contains(t, yamlResp.Header.Get("Content-Type"), "application/yaml")
}

func TestNewServeHandler_CustomPaths(t *testing.T) {
	_, errOut := captureOutput(t, "")
	flags := serveFlags(t, "-json-path", "/spec.json", "-yaml-path", "", "-v")
	handler, err := NewServeHandler(writeManifest(t, testManifest), flags)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/spec.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Contains(t, errOut.String(), "/spec.json")
}

func TestNewServeHandler_Errors(t *testing.T) {
	captureOutput(t, "")

	_, err := NewServeHandler(StdinFilePath, serveFlags(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")

	_, err = NewServeHandler(writeManifest(t, "title: x\nschemas:\n  Pet: \"{id:i\"\n"), serveFlags(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed schema")
}

func TestHandleServe_Args(t *testing.T) {
	captureOutput(t, "")
	assert.Error(t, HandleServe(nil))
	assert.NoError(t, HandleServe([]string{"-h"}))
}

func TestHandleMCP_Args(t *testing.T) {
	captureOutput(t, "")
	assert.Error(t, HandleMCP([]string{"extra"}))
	assert.NoError(t, HandleMCP([]string{"-help"}))
}
