package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/buildmcp/internal/adapter"
	"github.com/MKhiriev/buildmcp/models"
)

type screen int

const (
	screenServers screen = iota
	screenNamespaces
	screenServerDetail
	screenNamespaceDetail
	screenTypeSelect
	screenFormStdio
	screenFormRemote
	screenImport
)

type browserModel struct {
	ctx           context.Context
	api           adapter.MetaMCP
	currentScreen screen

	servers    serversModel
	namespaces namespacesModel
	detail     serverDetailModel
	nsDetail   nsDetailModel
	typeSelect typeSelectModel
	formStdio  formStdioModel
	formRemote formRemoteModel
	importForm importModel

	buildInfo models.AppBuildInfo
	showInfo  bool

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newBrowserModel(ctx context.Context, api adapter.MetaMCP, buildInfo models.AppBuildInfo) browserModel {
	return browserModel{
		ctx:           ctx,
		api:           api,
		currentScreen: screenServers,
		servers:       newServersModel(),
		namespaces:    newNamespacesModel(),
		nsDetail:      newNSDetailModel(),
		typeSelect:    newTypeSelectModel(),
		buildInfo:     buildInfo,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.servers.spinner.Tick, m.cmdLoadServers())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global hotkey for every screen.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showInfo = false
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteServer(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case serversLoadedMsg:
		m.servers.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeAPIError(msg.err))
			return m, nil
		}
		m.servers.servers = msg.servers
		m.servers.idx = clampIndex(m.servers.idx, len(m.servers.servers))
		return m, nil
	case namespacesLoadedMsg:
		m.namespaces.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeAPIError(msg.err))
			return m, nil
		}
		m.namespaces.namespaces = msg.namespaces
		m.namespaces.idx = clampIndex(m.namespaces.idx, len(m.namespaces.namespaces))
		return m, nil
	case namespaceLoadedMsg:
		m.nsDetail.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeAPIError(msg.err))
			m.currentScreen = screenNamespaces
			return m, nil
		}
		m.nsDetail.namespace = msg.namespace
		m.nsDetail.tools = msg.tools
		m.nsDetail.idx = clampIndex(m.nsDetail.idx, m.nsDetail.rows())
		return m, nil
	case serverSavedMsg:
		m.formStdio.submitting = false
		m.formRemote.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeAPIError(msg.err))
			return m, nil
		}
		m.currentScreen = screenServers
		m.servers.loading = true
		return m, tea.Batch(m.servers.spinner.Tick, m.cmdLoadServers())
	case serverDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeAPIError(msg.err))
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenServers
		m.servers.loading = true
		return m, tea.Batch(m.servers.spinner.Tick, m.cmdLoadServers())
	case importDoneMsg:
		m.importForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeAPIError(msg.err))
			return m, nil
		}
		m.currentScreen = screenServers
		m.servers.loading = true
		m.servers.status = fmt.Sprintf("Импортировано: %d", msg.imported)
		return m, tea.Batch(m.servers.spinner.Tick, m.cmdLoadServers(), cmdClearStatus())
	case statusUpdatedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeAPIError(msg.err))
			return m, nil
		}
		m.nsDetail.loading = true
		return m, tea.Batch(m.nsDetail.spinner.Tick, m.cmdLoadNamespace(m.nsDetail.namespace.UUID))
	case copiedMsg:
		if m.currentScreen == screenServerDetail {
			m.detail.status = "Скопировано!"
		}
		m.servers.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.servers.status = ""
		m.namespaces.status = ""
		m.nsDetail.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenServers:
		return m.updateServers(msg)
	case screenNamespaces:
		return m.updateNamespaces(msg)
	case screenServerDetail:
		return m.updateServerDetail(msg)
	case screenNamespaceDetail:
		return m.updateNamespaceDetail(msg)
	case screenTypeSelect:
		return m.updateTypeSelect(msg)
	case screenFormStdio:
		return m.updateFormStdio(msg)
	case screenFormRemote:
		return m.updateFormRemote(msg)
	case screenImport:
		return m.updateImport(msg)
	}

	return m, nil
}

func (m browserModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenServers:
		body = m.servers.View()
	case screenNamespaces:
		body = m.namespaces.View()
	case screenServerDetail:
		body = m.detail.View()
	case screenNamespaceDetail:
		body = m.nsDetail.View()
	case screenTypeSelect:
		body = m.typeSelect.View()
	case screenFormStdio:
		body = m.formStdio.View()
	case screenFormRemote:
		body = m.formRemote.View()
	case screenImport:
		body = m.importForm.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *browserModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m browserModel) updateServers(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.servers.idx > 0 {
				m.servers.idx--
			}
		case key.Matches(msg, keys.down):
			if m.servers.idx < len(m.servers.servers)-1 {
				m.servers.idx++
			}
		case key.Matches(msg, keys.tab):
			m.currentScreen = screenNamespaces
			m.namespaces.loading = true
			return m, tea.Batch(m.namespaces.spinner.Tick, m.cmdLoadNamespaces())
		case key.Matches(msg, keys.enter):
			srv, ok := m.servers.current()
			if !ok {
				return m, nil
			}
			m.detail = serverDetailModel{server: srv}
			m.currentScreen = screenServerDetail
		case key.Matches(msg, keys.refresh):
			m.servers.loading = true
			return m, tea.Batch(m.servers.spinner.Tick, m.cmdLoadServers())
		case key.Matches(msg, keys.create):
			m.typeSelect.idx = 0
			m.currentScreen = screenTypeSelect
		case key.Matches(msg, keys.imp):
			m.importForm = newImportModel()
			m.importForm.area.Focus()
			m.currentScreen = screenImport
		case key.Matches(msg, keys.del):
			srv, ok := m.servers.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = srv.Name
			m.pendingDelete = srv.UUID
		case key.Matches(msg, keys.copyDef):
			srv, ok := m.servers.current()
			if !ok {
				return m, nil
			}
			return m, cmdCopyServerJSON(srv)
		case key.Matches(msg, keys.info):
			m.showInfo = true
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.servers.loading {
			var cmd tea.Cmd
			m.servers.spinner, cmd = m.servers.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m browserModel) updateNamespaces(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.namespaces.idx > 0 {
				m.namespaces.idx--
			}
		case key.Matches(msg, keys.down):
			if m.namespaces.idx < len(m.namespaces.namespaces)-1 {
				m.namespaces.idx++
			}
		case key.Matches(msg, keys.tab):
			m.currentScreen = screenServers
			m.servers.loading = true
			return m, tea.Batch(m.servers.spinner.Tick, m.cmdLoadServers())
		case key.Matches(msg, keys.enter):
			ns, ok := m.namespaces.current()
			if !ok {
				return m, nil
			}
			m.nsDetail = newNSDetailModel()
			m.nsDetail.namespace = ns
			m.nsDetail.loading = true
			m.currentScreen = screenNamespaceDetail
			return m, tea.Batch(m.nsDetail.spinner.Tick, m.cmdLoadNamespace(ns.UUID))
		case key.Matches(msg, keys.refresh):
			m.namespaces.loading = true
			return m, tea.Batch(m.namespaces.spinner.Tick, m.cmdLoadNamespaces())
		case key.Matches(msg, keys.info):
			m.showInfo = true
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.namespaces.loading {
			var cmd tea.Cmd
			m.namespaces.spinner, cmd = m.namespaces.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m browserModel) updateServerDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenServers
	case key.Matches(keyMsg, keys.del):
		m.showConfirm = true
		m.confirm.message = m.detail.server.Name
		m.pendingDelete = m.detail.server.UUID
	case key.Matches(keyMsg, keys.copyDef):
		return m, cmdCopyServerJSON(m.detail.server)
	case key.Matches(keyMsg, keys.copyID):
		if m.detail.server.UUID == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.server.UUID)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m browserModel) updateNamespaceDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenNamespaces
		case key.Matches(msg, keys.up):
			if m.nsDetail.idx > 0 {
				m.nsDetail.idx--
			}
		case key.Matches(msg, keys.down):
			if m.nsDetail.idx < m.nsDetail.rows()-1 {
				m.nsDetail.idx++
			}
		case key.Matches(msg, keys.toggle):
			return m.toggleSelected()
		case key.Matches(msg, keys.refresh):
			m.nsDetail.loading = true
			return m, tea.Batch(m.nsDetail.spinner.Tick, m.cmdLoadNamespace(m.nsDetail.namespace.UUID))
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.nsDetail.loading {
			var cmd tea.Cmd
			m.nsDetail.spinner, cmd = m.nsDetail.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// toggleSelected flips ACTIVE/INACTIVE on the row under the cursor.
func (m browserModel) toggleSelected() (tea.Model, tea.Cmd) {
	if srv, ok := m.nsDetail.selectedServer(); ok {
		return m, m.cmdToggleServerStatus(m.nsDetail.namespace.UUID, srv.UUID, flipStatus(srv.Status))
	}
	if tool, ok := m.nsDetail.selectedTool(); ok {
		return m, m.cmdToggleToolStatus(m.nsDetail.namespace.UUID, tool.UUID, tool.ServerUUID, flipStatus(tool.Status))
	}
	return m, nil
}

func (m browserModel) updateTypeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenServers
	case key.Matches(keyMsg, keys.up):
		if m.typeSelect.idx > 0 {
			m.typeSelect.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.typeSelect.idx < len(m.typeSelect.items)-1 {
			m.typeSelect.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.typeSelect.selected() == models.ServerTypeSTDIO {
			m.formStdio = newFormStdioModel()
			m.currentScreen = screenFormStdio
		} else {
			m.formRemote = newFormRemoteModel(m.typeSelect.selected())
			m.currentScreen = screenFormRemote
		}
	}

	return m, nil
}

func (m browserModel) updateFormStdio(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenServers
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formStdio = focusNextStdio(m.formStdio)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formStdio = focusPrevStdio(m.formStdio)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			server := m.formStdio.toServer()
			if server.Name == "" || server.Command == "" {
				m.showErrorf("Название и команда обязательны")
				return m, nil
			}
			m.formStdio.submitting = true
			return m, m.cmdCreateServer(server)
		}
	}

	var cmd tea.Cmd
	m.formStdio.inputs[m.formStdio.focus], cmd = m.formStdio.inputs[m.formStdio.focus].Update(msg)
	return m, cmd
}

func (m browserModel) updateFormRemote(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenServers
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formRemote = focusNextRemote(m.formRemote)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formRemote = focusPrevRemote(m.formRemote)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			server := m.formRemote.toServer()
			if server.Name == "" || server.URL == "" {
				m.showErrorf("Название и URL обязательны")
				return m, nil
			}
			m.formRemote.submitting = true
			return m, m.cmdCreateServer(server)
		}
	}

	var cmd tea.Cmd
	m.formRemote.inputs[m.formRemote.focus], cmd = m.formRemote.inputs[m.formRemote.focus].Update(msg)
	return m, cmd
}

func (m browserModel) updateImport(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenServers
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			servers, err := parseImportPayload(m.importForm.area.Value())
			if err != nil {
				m.showErrorf("Некорректный JSON: " + err.Error())
				return m, nil
			}
			if len(servers) == 0 {
				m.showErrorf("В документе нет серверов")
				return m, nil
			}
			m.importForm.submitting = true
			return m, m.cmdBulkImport(servers)
		}
	}

	var cmd tea.Cmd
	m.importForm.area, cmd = m.importForm.area.Update(msg)
	return m, cmd
}

func (m browserModel) cmdLoadServers() tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		servers, err := api.ListServers(ctx)
		return serversLoadedMsg{servers: servers, err: err}
	}
}

func (m browserModel) cmdLoadNamespaces() tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		namespaces, err := api.ListNamespaces(ctx)
		return namespacesLoadedMsg{namespaces: namespaces, err: err}
	}
}

func (m browserModel) cmdLoadNamespace(uuid string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		ns, err := api.GetNamespace(ctx, uuid)
		if err != nil {
			return namespaceLoadedMsg{err: err}
		}
		tools, err := api.GetNamespaceTools(ctx, uuid)
		if err != nil {
			return namespaceLoadedMsg{err: err}
		}
		return namespaceLoadedMsg{namespace: ns, tools: tools}
	}
}

func (m browserModel) cmdCreateServer(server models.MCPServer) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		_, err := api.CreateServer(ctx, server)
		return serverSavedMsg{err: err}
	}
}

func (m browserModel) cmdDeleteServer(uuid string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.DeleteServer(ctx, uuid)
		return serverDeletedMsg{err: err}
	}
}

func (m browserModel) cmdBulkImport(servers map[string]any) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		imported, err := api.BulkImport(ctx, servers)
		return importDoneMsg{imported: imported, err: err}
	}
}

func (m browserModel) cmdToggleServerStatus(namespaceUUID, serverUUID, status string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.UpdateServerStatus(ctx, namespaceUUID, serverUUID, status)
		return statusUpdatedMsg{err: err}
	}
}

func (m browserModel) cmdToggleToolStatus(namespaceUUID, toolUUID, serverUUID, status string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		err := api.UpdateToolStatus(ctx, namespaceUUID, toolUUID, serverUUID, status)
		return statusUpdatedMsg{err: err}
	}
}

func cmdCopyServerJSON(server models.MCPServer) tea.Cmd {
	return func() tea.Msg {
		raw, err := json.MarshalIndent(server, "", "  ")
		if err != nil {
			return serverSavedMsg{err: fmt.Errorf("encode server: %w", err)}
		}
		if err := clipboard.WriteAll(string(raw)); err != nil {
			return serverSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return serverSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func flipStatus(status string) string {
	if status == models.StatusActive {
		return models.StatusInactive
	}
	return models.StatusActive
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func focusNextStdio(m formStdioModel) formStdioModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevStdio(m formStdioModel) formStdioModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRemote(m formRemoteModel) formRemoteModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRemote(m formRemoteModel) formRemoteModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
