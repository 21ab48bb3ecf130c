package tui

import (
	"encoding/json"

	"github.com/charmbracelet/bubbles/textarea"
)

type importModel struct {
	area       textarea.Model
	submitting bool
}

func newImportModel() importModel {
	area := textarea.New()
	area.Placeholder = `{"mcpServers": {"search": {"command": "uvx", "args": ["mcp-search"]}}}`
	area.SetWidth(70)
	area.SetHeight(12)
	return importModel{area: area}
}

// parseImportPayload принимает документ с ключом mcpServers или голый
// словарь серверов
func parseImportPayload(raw string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	if inner, ok := doc["mcpServers"].(map[string]any); ok {
		return inner, nil
	}
	return doc, nil
}

func (m importModel) View() string {
	out := "Импорт серверов (JSON с ключом mcpServers)\n\n"
	out += m.area.View() + "\n\n"
	out += helpStyle.Render("esc отмена  ctrl+s импортировать")
	return out
}
