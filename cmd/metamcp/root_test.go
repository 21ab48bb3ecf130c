package main

import (
	"testing"
	"time"

	"github.com/MKhiriev/buildmcp/internal/config"
	"github.com/MKhiriev/buildmcp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetServerFlags сбрасывает флаги команды server create между тестами.
func resetServerFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagServerName = ""
		flagServerType = ""
		flagServerDescription = ""
		flagServerCommand = ""
		flagServerArgs = nil
		flagServerEnv = nil
		flagServerURL = ""
		flagServerBearerToken = ""
		flagServerFile = ""
	})
}

// ── extractServers ──

func TestExtractServers_WrappedDocument(t *testing.T) {
	raw := []byte(`{"mcpServers": {"weather": {"command": "uvx", "args": ["mcp-weather"]}}}`)

	servers, err := extractServers(raw)

	require.NoError(t, err)
	require.Contains(t, servers, "weather")
	entry, ok := servers["weather"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "uvx", entry["command"])
}

func TestExtractServers_BareDocument(t *testing.T) {
	raw := []byte(`{"weather": {"command": "uvx"}, "search": {"url": "https://host/mcp"}}`)

	servers, err := extractServers(raw)

	require.NoError(t, err)
	assert.Len(t, servers, 2)
}

func TestExtractServers_MalformedJSON(t *testing.T) {
	_, err := extractServers([]byte(`{"mcpServers":`))

	assert.Error(t, err)
}

func TestExtractServers_EmptyDocument(t *testing.T) {
	_, err := extractServers([]byte(`{"mcpServers": {}}`))

	assert.ErrorContains(t, err, "no servers")
}

// ── serverFromInput ──

func TestServerFromInput_Flags(t *testing.T) {
	resetServerFlags(t)
	flagServerName = "weather"
	flagServerType = models.ServerTypeSTDIO
	flagServerCommand = "uvx"
	flagServerArgs = []string{"mcp-weather"}
	flagServerEnv = map[string]string{"API_KEY": "k"}

	server, err := serverFromInput()

	require.NoError(t, err)
	assert.Equal(t, "weather", server.Name)
	assert.Equal(t, models.ServerTypeSTDIO, server.Type)
	assert.Equal(t, []string{"mcp-weather"}, server.Args)
	assert.Equal(t, map[string]string{"API_KEY": "k"}, server.Env)
}

func TestServerFromInput_MissingNameAndType(t *testing.T) {
	resetServerFlags(t)
	flagServerCommand = "uvx"

	_, err := serverFromInput()

	assert.ErrorContains(t, err, "name and type are required")
}

func TestServerFromInput_UnknownType(t *testing.T) {
	resetServerFlags(t)
	flagServerName = "weather"
	flagServerType = "WEBSOCKET"

	_, err := serverFromInput()

	assert.ErrorContains(t, err, "unknown server type")
}

// ── resolveTools ──

func testNamespaceTools() []models.NamespaceTool {
	return []models.NamespaceTool{
		{UUID: "t-1", Name: "lookup", ServerUUID: "s-1", Status: models.StatusActive},
		{UUID: "t-2", Name: "lookup", ServerUUID: "s-2", Status: models.StatusActive},
		{UUID: "t-3", Name: "forecast", ServerUUID: "s-1", OverrideName: "weather_forecast"},
	}
}

func TestResolveTools_ByUUID(t *testing.T) {
	picked, err := resolveTools(testNamespaceTools(), []string{"t-3"})

	require.NoError(t, err)
	require.Len(t, picked, 1)
	assert.Equal(t, "forecast", picked[0].Name)
}

func TestResolveTools_NameSelectsAllServers(t *testing.T) {
	picked, err := resolveTools(testNamespaceTools(), []string{"lookup"})

	require.NoError(t, err)
	assert.Len(t, picked, 2)
}

func TestResolveTools_ByOverrideName(t *testing.T) {
	picked, err := resolveTools(testNamespaceTools(), []string{"weather_forecast"})

	require.NoError(t, err)
	require.Len(t, picked, 1)
	assert.Equal(t, "t-3", picked[0].UUID)
}

func TestResolveTools_DuplicateSelectorsCollapse(t *testing.T) {
	picked, err := resolveTools(testNamespaceTools(), []string{"forecast", "t-3", "weather_forecast"})

	require.NoError(t, err)
	assert.Len(t, picked, 1)
}

func TestResolveTools_UnknownSelector(t *testing.T) {
	_, err := resolveTools(testNamespaceTools(), []string{"lookup", "no-such-tool"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "no-such-tool")
}

// ── applyFlags ──

func TestApplyFlags_OverridesOnlySetValues(t *testing.T) {
	t.Cleanup(func() {
		flagBaseURL = ""
		flagSessionToken = ""
		flagCookieFile = ""
		flagTimeout = 0
	})
	flagBaseURL = "http://override:9000"
	flagTimeout = 5 * time.Second

	cfg := &config.MetaMCPConfig{
		BaseURL:        "http://localhost:12008",
		SessionToken:   "from-env",
		CookieFile:     "/tmp/cookie",
		RequestTimeout: 30 * time.Second,
	}
	applyFlags(cfg)

	assert.Equal(t, "http://override:9000", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "from-env", cfg.SessionToken)
	assert.Equal(t, "/tmp/cookie", cfg.CookieFile)
}

// ── table helpers ──

func TestFitCell(t *testing.T) {
	assert.Equal(t, "short", fitCell("short", 10))
	assert.Equal(t, "longlon...", fitCell("longlonglong", 10))
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "x", orDash("x"))
}
