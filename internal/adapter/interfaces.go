// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to a MetaMCP deployment.
//
// The primary abstraction is [MetaMCP], which decouples the CLI and TUI from
// the tRPC-flavored HTTP protocol MetaMCP speaks. The package ships an HTTP
// implementation ([NewMetaMCP]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). An API-level failure
// (an envelope carrying success=false) maps to [ErrAPIFailure].
package adapter

import (
	"context"

	"github.com/MKhiriev/buildmcp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/metamcp_mock.go -package=mock

// MetaMCP defines transport-agnostic access to a MetaMCP deployment.
// Implementations are responsible for serialisation, session-cookie
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type MetaMCP interface {
	// ListServers fetches all MCP servers registered in the deployment.
	ListServers(ctx context.Context) ([]models.MCPServer, error)

	// CreateServer registers a new MCP server and returns it as stored,
	// including the UUID assigned by MetaMCP. Nil Args/Env are sent as
	// empty collections; the API rejects null there.
	CreateServer(ctx context.Context, server models.MCPServer) (models.MCPServer, error)

	// DeleteServer removes the server with the given UUID.
	DeleteServer(ctx context.Context, uuid string) error

	// BulkImport registers every entry of an mcpServers mapping in one call
	// and returns the number of servers the deployment imported.
	BulkImport(ctx context.Context, servers map[string]any) (int, error)

	// ListNamespaces fetches all namespaces. Server lists inside the
	// results are not populated; use GetNamespace for one namespace's
	// servers.
	ListNamespaces(ctx context.Context) ([]models.Namespace, error)

	// GetNamespace fetches one namespace with its servers and their
	// per-namespace statuses. Returns [ErrNotFound] (wrapped) when the
	// deployment reports no such namespace.
	GetNamespace(ctx context.Context, uuid string) (models.Namespace, error)

	// GetNamespaceTools fetches the tools exposed by a namespace's servers,
	// with per-namespace statuses and overrides.
	GetNamespaceTools(ctx context.Context, namespaceUUID string) ([]models.NamespaceTool, error)

	// UpdateToolStatus sets one tool's status (ACTIVE or INACTIVE) within a
	// namespace.
	UpdateToolStatus(ctx context.Context, namespaceUUID, toolUUID, serverUUID, status string) error

	// UpdateServerStatus sets one server's status (ACTIVE or INACTIVE)
	// within a namespace.
	UpdateServerStatus(ctx context.Context, namespaceUUID, serverUUID, status string) error
}
