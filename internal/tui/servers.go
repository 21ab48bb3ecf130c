package tui

import (
	"fmt"

	"github.com/MKhiriev/buildmcp/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type serversModel struct {
	servers []models.MCPServer
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newServersModel() serversModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return serversModel{spinner: s, loading: true}
}

func (m serversModel) current() (models.MCPServer, bool) {
	if len(m.servers) == 0 || m.idx < 0 || m.idx >= len(m.servers) {
		return models.MCPServer{}, false
	}
	return m.servers[m.idx], true
}

func serverTypeIcon(t string) string {
	switch t {
	case models.ServerTypeSTDIO:
		return "[S]"
	case models.ServerTypeSSE:
		return "[E]"
	case models.ServerTypeStreamableHTTP:
		return "[H]"
	default:
		return "[?]"
	}
}

func (m serversModel) View() string {
	header := titleStyle.Render("MetaMCP: Серверы") + "   Неймспейсы (tab)"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.servers) == 0 {
		out += "Нет серверов\n"
	} else {
		for i, srv := range m.servers {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			launch := srv.Command
			if launch == "" {
				launch = srv.URL
			}
			out += fmt.Sprintf("%s%s %-24s %s\n", cursor, serverTypeIcon(srv.Type), fitText(srv.Name, 24), fitText(launch, 40))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter детали  c создать  d удалить  i импорт  y копир. JSON  r обновить  v инфо  q выход")
	return out
}
