package tui

import (
	"strings"

	"github.com/MKhiriev/buildmcp/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type formRemoteModel struct {
	serverType string
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormRemoteModel(serverType string) formRemoteModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[2].Placeholder = "https://host/mcp"
	inputs[0].Focus()
	return formRemoteModel{serverType: serverType, inputs: inputs}
}

func (m formRemoteModel) toServer() models.MCPServer {
	return models.MCPServer{
		Name:        strings.TrimSpace(m.inputs[0].Value()),
		Description: strings.TrimSpace(m.inputs[1].Value()),
		Type:        m.serverType,
		URL:         strings.TrimSpace(m.inputs[2].Value()),
		BearerToken: strings.TrimSpace(m.inputs[3].Value()),
	}
}

func (m formRemoteModel) View() string {
	out := "Новый " + m.serverType + " сервер\n\n"
	out += "Название:     [" + m.inputs[0].View() + "]\n"
	out += "Описание:     [" + m.inputs[1].View() + "]\n"
	out += "URL:          [" + m.inputs[2].View() + "]\n"
	out += "Bearer token: [" + m.inputs[3].View() + "]\n\n"
	out += helpStyle.Render("esc отмена  tab следующее поле  enter сохранить")
	return out
}
