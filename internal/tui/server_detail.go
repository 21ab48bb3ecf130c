package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/buildmcp/internal/utils"
	"github.com/MKhiriev/buildmcp/models"
)

type serverDetailModel struct {
	server models.MCPServer
	status string
}

func (m serverDetailModel) View() string {
	srv := m.server
	out := fmt.Sprintf("%s  [%s]\n\n", titleStyle.Render(srv.Name), srv.Type)

	out += fmt.Sprintf("UUID:      %s\n", valueOrDash(srv.UUID))
	out += fmt.Sprintf("Описание:  %s\n", valueOrDash(srv.Description))

	switch srv.Type {
	case models.ServerTypeSTDIO:
		out += fmt.Sprintf("Команда:   %s\n", valueOrDash(srv.Command))
		out += fmt.Sprintf("Аргументы: %s\n", valueOrDash(strings.Join(srv.Args, " ")))
		if len(srv.Env) > 0 {
			out += "Окружение:\n"
			for _, k := range sortedEnvKeys(srv.Env) {
				out += fmt.Sprintf("  %s=%s\n", k, utils.MaskSensitive(k, srv.Env[k]))
			}
		}
	default:
		out += fmt.Sprintf("URL:       %s\n", valueOrDash(srv.URL))
		out += fmt.Sprintf("Токен:     %s\n", valueOrDash(utils.MaskSensitive("bearerToken", srv.BearerToken)))
	}

	out += "\n" + helpStyle.Render("y копир. JSON  u копир. UUID  d удалить  esc назад")
	if m.status != "" {
		out += "\n\n" + m.status
	}
	return out
}

func sortedEnvKeys(env map[string]string) []string {
	names := make([]string, 0, len(env))
	for k := range env {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
