package tui

import (
	"github.com/MKhiriev/buildmcp/models"
)

type serversLoadedMsg struct {
	servers []models.MCPServer
	err     error
}

type namespacesLoadedMsg struct {
	namespaces []models.Namespace
	err        error
}

type namespaceLoadedMsg struct {
	namespace models.Namespace
	tools     []models.NamespaceTool
	err       error
}

type serverSavedMsg struct {
	err error
}

type serverDeletedMsg struct {
	err error
}

type importDoneMsg struct {
	imported int
	err      error
}

type statusUpdatedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
