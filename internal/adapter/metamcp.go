package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/buildmcp/internal/config"
	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/models"
)

// trpcEnvelope is one element of the batch array MetaMCP wraps every
// response in: [{"result": {"data": {...}}}].
type trpcEnvelope struct {
	Result struct {
		Data trpcResult `json:"data"`
	} `json:"result"`
}

// trpcResult is the payload level of the envelope. Data stays raw because
// its shape depends on the procedure.
type trpcResult struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Imported int             `json:"imported"`
}

type metaMCPAdapter struct {
	client *resty.Client
	token  string

	logs *logger.Logger
}

// NewMetaMCP constructs the HTTP implementation of [MetaMCP].
// It normalises and validates the base URL, resolves the session token from
// the configured value or cookie file, and configures the underlying resty
// client with the resolved base URL and request timeout.
//
// Returns an error if the base URL cannot be parsed or no session token is
// available.
func NewMetaMCP(cfg config.MetaMCPConfig, logs *logger.Logger) (MetaMCP, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid metamcp base url: %w", err)
	}

	token, err := ResolveSessionToken(cfg.SessionToken, cfg.CookieFile)
	if err != nil {
		return nil, err
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &metaMCPAdapter{client: cli, token: token, logs: logs}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a resty request carrying the session cookie MetaMCP's
// better-auth layer expects.
func (m *metaMCPAdapter) request(ctx context.Context) *resty.Request {
	return m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Cookie", "better-auth.session_token="+m.token)
}

// query performs a tRPC batch GET. A nil input sends the literal "{}" the
// list procedures expect; anything else is wrapped as {"0": input}.
func (m *metaMCPAdapter) query(ctx context.Context, procedure string, input any) (trpcResult, error) {
	encoded := "{}"
	if input != nil {
		wrapped, err := json.Marshal(map[string]any{"0": input})
		if err != nil {
			return trpcResult{}, fmt.Errorf("encode %s input: %w", procedure, err)
		}
		encoded = string(wrapped)
	}

	m.logs.Debug().Str("procedure", procedure).Msg("metamcp query")
	resp, err := m.request(ctx).
		SetQueryParam("batch", "1").
		SetQueryParam("input", encoded).
		Get("/trpc/" + procedure)
	if err != nil {
		return trpcResult{}, fmt.Errorf("%s request: %w", procedure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return trpcResult{}, err
	}

	return unwrapEnvelope(resp.Body(), procedure)
}

// mutate performs a tRPC batch POST with the input wrapped as {"0": input}.
func (m *metaMCPAdapter) mutate(ctx context.Context, procedure string, input any) (trpcResult, error) {
	m.logs.Debug().Str("procedure", procedure).Msg("metamcp mutation")
	resp, err := m.request(ctx).
		SetQueryParam("batch", "1").
		SetBody(map[string]any{"0": input}).
		Post("/trpc/" + procedure)
	if err != nil {
		return trpcResult{}, fmt.Errorf("%s request: %w", procedure, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return trpcResult{}, err
	}

	return unwrapEnvelope(resp.Body(), procedure)
}

func unwrapEnvelope(body []byte, procedure string) (trpcResult, error) {
	var batch []trpcEnvelope
	if err := json.Unmarshal(body, &batch); err != nil {
		return trpcResult{}, fmt.Errorf("decode %s response: %w", procedure, err)
	}
	if len(batch) == 0 {
		return trpcResult{}, fmt.Errorf("%s response: empty batch", procedure)
	}

	result := batch[0].Result.Data
	if !result.Success {
		return trpcResult{}, fmt.Errorf("%w: %s: %s", ErrAPIFailure, procedure, result.Message)
	}
	return result, nil
}

// ListServers implements [MetaMCP]. It GETs frontend.mcpServers.list and
// decodes the server array from the envelope.
func (m *metaMCPAdapter) ListServers(ctx context.Context) ([]models.MCPServer, error) {
	result, err := m.query(ctx, "frontend.mcpServers.list", nil)
	if err != nil {
		return nil, err
	}

	var servers []models.MCPServer
	if err := json.Unmarshal(result.Data, &servers); err != nil {
		return nil, fmt.Errorf("decode server list: %w", err)
	}
	return servers, nil
}

// CreateServer implements [MetaMCP]. It POSTs the server definition to
// frontend.mcpServers.create and returns the stored record, including the
// assigned UUID. Nil Args/Env are normalised to empty collections because
// the API schema rejects null for them.
func (m *metaMCPAdapter) CreateServer(ctx context.Context, server models.MCPServer) (models.MCPServer, error) {
	if server.Args == nil {
		server.Args = []string{}
	}
	if server.Env == nil {
		server.Env = map[string]string{}
	}

	result, err := m.mutate(ctx, "frontend.mcpServers.create", server)
	if err != nil {
		return models.MCPServer{}, err
	}

	var created models.MCPServer
	if err := json.Unmarshal(result.Data, &created); err != nil {
		return models.MCPServer{}, fmt.Errorf("decode created server: %w", err)
	}
	return created, nil
}

// DeleteServer implements [MetaMCP]. It POSTs the UUID to
// frontend.mcpServers.delete.
func (m *metaMCPAdapter) DeleteServer(ctx context.Context, uuid string) error {
	_, err := m.mutate(ctx, "frontend.mcpServers.delete", map[string]string{"uuid": uuid})
	return err
}

// BulkImport implements [MetaMCP]. It POSTs a whole mcpServers mapping to
// frontend.mcpServers.bulkImport and returns the imported count reported in
// the envelope.
func (m *metaMCPAdapter) BulkImport(ctx context.Context, servers map[string]any) (int, error) {
	result, err := m.mutate(ctx, "frontend.mcpServers.bulkImport", map[string]any{"mcpServers": servers})
	if err != nil {
		return 0, err
	}
	return result.Imported, nil
}

// ListNamespaces implements [MetaMCP]. It GETs frontend.namespaces.list.
// Server lists are not populated in list responses.
func (m *metaMCPAdapter) ListNamespaces(ctx context.Context) ([]models.Namespace, error) {
	result, err := m.query(ctx, "frontend.namespaces.list", nil)
	if err != nil {
		return nil, err
	}

	var namespaces []models.Namespace
	if err := json.Unmarshal(result.Data, &namespaces); err != nil {
		return nil, fmt.Errorf("decode namespace list: %w", err)
	}
	return namespaces, nil
}

// GetNamespace implements [MetaMCP]. It GETs frontend.namespaces.get with
// the UUID in the batch input and decodes the namespace with its servers.
// A success envelope with empty data means the namespace does not exist.
func (m *metaMCPAdapter) GetNamespace(ctx context.Context, uuid string) (models.Namespace, error) {
	result, err := m.query(ctx, "frontend.namespaces.get", map[string]string{"uuid": uuid})
	if err != nil {
		return models.Namespace{}, err
	}

	if len(result.Data) == 0 || string(result.Data) == "null" {
		return models.Namespace{}, fmt.Errorf("%w: namespace %s", ErrNotFound, uuid)
	}

	var ns models.Namespace
	if err := json.Unmarshal(result.Data, &ns); err != nil {
		return models.Namespace{}, fmt.Errorf("decode namespace: %w", err)
	}
	return ns, nil
}

// GetNamespaceTools implements [MetaMCP]. It GETs frontend.namespaces.getTools
// with the namespace UUID in the batch input.
func (m *metaMCPAdapter) GetNamespaceTools(ctx context.Context, namespaceUUID string) ([]models.NamespaceTool, error) {
	result, err := m.query(ctx, "frontend.namespaces.getTools", map[string]string{"namespaceUuid": namespaceUUID})
	if err != nil {
		return nil, err
	}

	var tools []models.NamespaceTool
	if err := json.Unmarshal(result.Data, &tools); err != nil {
		return nil, fmt.Errorf("decode namespace tools: %w", err)
	}
	return tools, nil
}

// UpdateToolStatus implements [MetaMCP]. It POSTs the status change to
// frontend.namespaces.updateToolStatus.
func (m *metaMCPAdapter) UpdateToolStatus(ctx context.Context, namespaceUUID, toolUUID, serverUUID, status string) error {
	_, err := m.mutate(ctx, "frontend.namespaces.updateToolStatus", map[string]string{
		"namespaceUuid": namespaceUUID,
		"toolUuid":      toolUUID,
		"serverUuid":    serverUUID,
		"status":        status,
	})
	return err
}

// UpdateServerStatus implements [MetaMCP]. It POSTs the status change to
// frontend.namespaces.updateServerStatus.
func (m *metaMCPAdapter) UpdateServerStatus(ctx context.Context, namespaceUUID, serverUUID, status string) error {
	_, err := m.mutate(ctx, "frontend.namespaces.updateServerStatus", map[string]string{
		"namespaceUuid": namespaceUUID,
		"serverUuid":    serverUUID,
		"status":        status,
	})
	return err
}
