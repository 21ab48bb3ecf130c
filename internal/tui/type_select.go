package tui

import "github.com/MKhiriev/buildmcp/models"

type typeSelectModel struct {
	items []string
	idx   int
}

func newTypeSelectModel() typeSelectModel {
	return typeSelectModel{items: []string{
		models.ServerTypeSTDIO,
		models.ServerTypeSSE,
		models.ServerTypeStreamableHTTP,
	}}
}

func (m typeSelectModel) selected() string {
	return m.items[m.idx]
}

func (m typeSelectModel) View() string {
	out := "Тип нового сервера:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("esc назад  enter выбрать")
	return out
}
