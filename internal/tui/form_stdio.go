package tui

import (
	"strings"

	"github.com/MKhiriev/buildmcp/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formStdioModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormStdioModel() formStdioModel {
	inputs := make([]textinput.Model, 5)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[3].Placeholder = "-y @mcp/server"
	inputs[4].Placeholder = "KEY=value OTHER=value"
	inputs[0].Focus()
	return formStdioModel{inputs: inputs}
}

func (m formStdioModel) toServer() models.MCPServer {
	return models.MCPServer{
		Name:        strings.TrimSpace(m.inputs[0].Value()),
		Description: strings.TrimSpace(m.inputs[1].Value()),
		Type:        models.ServerTypeSTDIO,
		Command:     strings.TrimSpace(m.inputs[2].Value()),
		Args:        splitArgs(m.inputs[3].Value()),
		Env:         parseEnvPairs(m.inputs[4].Value()),
	}
}

func (m formStdioModel) View() string {
	out := "Новый STDIO сервер\n\n"
	out += "Название:  [" + m.inputs[0].View() + "]\n"
	out += "Описание:  [" + m.inputs[1].View() + "]\n"
	out += "Команда:   [" + m.inputs[2].View() + "]\n"
	out += "Аргументы: [" + m.inputs[3].View() + "]\n"
	out += "Окружение: [" + m.inputs[4].View() + "]\n\n"
	out += helpStyle.Render("esc отмена  tab следующее поле  enter сохранить")
	return out
}

func splitArgs(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return []string{}
	}
	return fields
}

// parseEnvPairs разбирает пары KEY=VALUE, разделённые пробелами
func parseEnvPairs(raw string) map[string]string {
	env := map[string]string{}
	for _, pair := range strings.Fields(raw) {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}
