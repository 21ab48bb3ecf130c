package tui

import (
	"fmt"

	"github.com/MKhiriev/buildmcp/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// nsDetailModel shows one namespace: its servers first, then its tools.
// idx addresses the combined list, servers before tools.
type nsDetailModel struct {
	namespace models.Namespace
	tools     []models.NamespaceTool
	idx       int
	loading   bool
	spinner   spinner.Model
	status    string
}

func newNSDetailModel() nsDetailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return nsDetailModel{spinner: s}
}

func (m nsDetailModel) rows() int {
	return len(m.namespace.Servers) + len(m.tools)
}

func (m nsDetailModel) selectedServer() (models.NamespaceServer, bool) {
	if m.idx < 0 || m.idx >= len(m.namespace.Servers) {
		return models.NamespaceServer{}, false
	}
	return m.namespace.Servers[m.idx], true
}

func (m nsDetailModel) selectedTool() (models.NamespaceTool, bool) {
	toolIdx := m.idx - len(m.namespace.Servers)
	if toolIdx < 0 || toolIdx >= len(m.tools) {
		return models.NamespaceTool{}, false
	}
	return m.tools[toolIdx], true
}

func statusMark(status string) string {
	if status == models.StatusActive {
		return "[+]"
	}
	return "[-]"
}

func (m nsDetailModel) View() string {
	out := titleStyle.Render("Неймспейс: " + m.namespace.Name)
	if m.loading {
		out += "  " + m.spinner.View()
	}
	out += "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else {
		out += "Серверы:\n"
		if len(m.namespace.Servers) == 0 {
			out += "  нет\n"
		}
		for i, srv := range m.namespace.Servers {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s %s", cursor, statusMark(srv.Status), fitText(srv.Name, 32))
			if srv.ErrorStatus != "" {
				line += "  " + errorStyle.Render(fitText(srv.ErrorStatus, 30))
			}
			out += line + "\n"
		}

		out += "\nИнструменты:\n"
		if len(m.tools) == 0 {
			out += "  нет\n"
		}
		for i, tool := range m.tools {
			cursor := "  "
			if len(m.namespace.Servers)+i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %-32s %s\n", cursor, statusMark(tool.Status), fitText(tool.DisplayName(), 32), fitText(tool.ServerName, 24))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("t вкл/выкл  r обновить  esc назад  q выход")
	return out
}
