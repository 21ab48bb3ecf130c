package tui

import (
	"fmt"

	"github.com/MKhiriev/buildmcp/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type namespacesModel struct {
	namespaces []models.Namespace
	idx        int
	loading    bool
	spinner    spinner.Model
	status     string
}

func newNamespacesModel() namespacesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return namespacesModel{spinner: s}
}

func (m namespacesModel) current() (models.Namespace, bool) {
	if len(m.namespaces) == 0 || m.idx < 0 || m.idx >= len(m.namespaces) {
		return models.Namespace{}, false
	}
	return m.namespaces[m.idx], true
}

func (m namespacesModel) View() string {
	header := "Серверы (tab)   " + titleStyle.Render("MetaMCP: Неймспейсы")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.namespaces) == 0 {
		out += "Нет неймспейсов\n"
	} else {
		for i, ns := range m.namespaces {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%-24s %s\n", cursor, fitText(ns.Name, 24), fitText(ns.Description, 40))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter детали  r обновить  v инфо  q выход")
	return out
}
