package builder

import (
	"fmt"

	"github.com/MKhiriev/buildmcp/internal/document"
)

// Compose builds the server set for one profile: a deep copy of the base
// servers overlaid with each listed template, in order, keyed by template
// name. A later template wins a name conflict; templates are whole server
// entries, never patches of each other.
func Compose(src *Source, profile string) (document.Mapping, error) {
	declared, ok := src.Profiles[profile]
	if !ok {
		return nil, &CompositionError{Profile: profile, Key: profile}
	}

	list, ok := declared.(document.Sequence)
	if !ok {
		return nil, &CompositionError{
			Profile: profile,
			Msg:     fmt.Sprintf("template list is %s, want sequence", document.TypeName(declared)),
		}
	}

	built := document.Mapping{}
	for name, definition := range src.Servers {
		built[name] = document.Clone(definition)
	}

	for i, item := range list {
		name, ok := item.(document.String)
		if !ok {
			return nil, &CompositionError{
				Profile: profile,
				Msg:     fmt.Sprintf("template list entry %d is %s, want string", i, document.TypeName(item)),
			}
		}

		template, ok := src.Templates[string(name)]
		if !ok {
			return nil, &CompositionError{Profile: profile, Key: string(name)}
		}
		built[string(name)] = document.Clone(template)
	}

	return built, nil
}
