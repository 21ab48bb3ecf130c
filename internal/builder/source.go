package builder

import (
	"fmt"
	"sort"

	"github.com/MKhiriev/buildmcp/internal/document"
)

// Source is the parsed configuration document split into its four top-level
// sections. Absent sections are represented as empty mappings.
type Source struct {
	// Servers holds the base server definitions included in every profile.
	Servers document.Mapping
	// Templates holds the opt-in server definitions keyed by template name.
	Templates document.Mapping
	// Profiles maps profile names to ordered sequences of template names.
	Profiles document.Mapping
	// Targets maps profile names to target specifications.
	Targets document.Mapping
}

// ParseSource parses configuration text in the relaxed dialect and splits it
// into sections. The root must be a mapping; each present section must be a
// mapping as well.
func ParseSource(data []byte) (*Source, error) {
	value, err := document.ParseRelaxed(data)
	if err != nil {
		return nil, err
	}

	root, ok := value.(document.Mapping)
	if !ok {
		return nil, fmt.Errorf("config root is %s, want mapping", document.TypeName(value))
	}

	src := &Source{}
	sections := []struct {
		key  string
		dest *document.Mapping
	}{
		{"mcpServers", &src.Servers},
		{"templates", &src.Templates},
		{"profiles", &src.Profiles},
		{"targets", &src.Targets},
	}
	for _, s := range sections {
		value, ok := root[s.key]
		if !ok {
			*s.dest = document.Mapping{}
			continue
		}
		m, ok := value.(document.Mapping)
		if !ok {
			return nil, fmt.Errorf("config section %q is %s, want mapping", s.key, document.TypeName(value))
		}
		*s.dest = m
	}

	return src, nil
}

// ProfileNames returns the declared profile names in sorted order, giving
// runs a deterministic processing sequence.
func (s *Source) ProfileNames() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TargetFor returns the target specification declared for the profile, or
// false when the profile has none.
func (s *Source) TargetFor(profile string) (document.Value, bool) {
	spec, ok := s.Targets[profile]
	return spec, ok
}
