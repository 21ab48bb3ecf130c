package models

// Server type discriminators accepted by the MetaMCP API.
const (
	ServerTypeSTDIO          = "STDIO"
	ServerTypeSSE            = "SSE"
	ServerTypeStreamableHTTP = "STREAMABLE_HTTP"
)

// Activation statuses for namespace servers and tools.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// ValidStatus reports whether s is an activation status the API accepts.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

// ValidServerType reports whether t is a server type the API accepts.
func ValidServerType(t string) bool {
	switch t {
	case ServerTypeSTDIO, ServerTypeSSE, ServerTypeStreamableHTTP:
		return true
	}
	return false
}

// MCPServer describes one MCP server registered in MetaMCP.
//
// Field names follow the tRPC wire format exactly, which mixes camelCase and
// snake_case; do not normalize them.
type MCPServer struct {
	// UUID is the server identifier assigned by MetaMCP. Empty on create.
	UUID string `json:"uuid,omitempty"`

	// Name is the unique display name of the server.
	Name string `json:"name"`

	// Description is an optional free-form annotation.
	Description string `json:"description"`

	// Type is one of the ServerType constants (STDIO, SSE, STREAMABLE_HTTP).
	Type string `json:"type"`

	// Command is the executable for STDIO servers.
	Command string `json:"command"`

	// Args are the command arguments for STDIO servers.
	Args []string `json:"args"`

	// Env holds environment variables passed to STDIO servers.
	Env map[string]string `json:"env"`

	// URL is the endpoint for SSE and STREAMABLE_HTTP servers.
	URL string `json:"url"`

	// BearerToken authenticates requests to URL-based servers.
	BearerToken string `json:"bearerToken"`

	// CreatedAt is the server creation timestamp as reported by the API.
	CreatedAt string `json:"created_at,omitempty"`

	// UserID identifies the owning MetaMCP user.
	UserID string `json:"user_id,omitempty"`
}

// NamespaceServer is a server as it appears inside a namespace, carrying its
// activation status there.
type NamespaceServer struct {
	MCPServer

	// Status is ACTIVE or INACTIVE within the namespace.
	Status string `json:"status"`

	// ErrorStatus carries the namespace-level error state, when any.
	ErrorStatus string `json:"error_status,omitempty"`
}

// NamespaceTool is a tool exposed by a namespace server, with per-namespace
// status and optional name/description overrides.
type NamespaceTool struct {
	// UUID is the tool identifier.
	UUID string `json:"uuid"`

	// Name is the tool name as exported by its server.
	Name string `json:"name"`

	// MCPServerUUID is the owning server's identifier.
	MCPServerUUID string `json:"mcp_server_uuid"`

	// ServerName is the owning server's display name.
	ServerName string `json:"serverName"`

	// ServerUUID duplicates the owning server's identifier in the
	// namespace-scoped responses.
	ServerUUID string `json:"serverUuid"`

	// Status is ACTIVE or INACTIVE within the namespace.
	Status string `json:"status"`

	// Description is the tool's description as exported by its server.
	Description string `json:"description"`

	// ToolSchema is the raw JSON schema of the tool's input.
	ToolSchema map[string]any `json:"toolSchema,omitempty"`

	// OverrideName replaces Name inside this namespace, when set.
	OverrideName string `json:"overrideName,omitempty"`

	// OverrideDescription replaces Description inside this namespace.
	OverrideDescription string `json:"overrideDescription,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Namespace groups servers under one MetaMCP endpoint.
type Namespace struct {
	// UUID is the namespace identifier.
	UUID string `json:"uuid"`

	// Name is the namespace display name.
	Name string `json:"name"`

	// Description is an optional free-form annotation.
	Description string `json:"description"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`

	// UserID identifies the owning MetaMCP user.
	UserID string `json:"user_id,omitempty"`

	// Servers lists the namespace's servers. Populated only by the
	// single-namespace endpoint; list responses leave it empty.
	Servers []NamespaceServer `json:"servers,omitempty"`
}

// DisplayName returns the tool name effective in its namespace, preferring
// the override when one is set.
func (t NamespaceTool) DisplayName() string {
	if t.OverrideName != "" {
		return t.OverrideName
	}
	return t.Name
}
