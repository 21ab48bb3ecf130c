package builder

import "sort"

// Status classifies the outcome of one profile in a run.
type Status int

const (
	// StatusSkipped means the profile's checksum matched the lock entry and
	// no dispatch was attempted.
	StatusSkipped Status = iota
	// StatusPlanned means a dry run reported the write without performing it.
	StatusPlanned
	// StatusWritten means the profile was dispatched to its target.
	StatusWritten
	// StatusFailed means the profile could not be dispatched.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusPlanned:
		return "planned"
	case StatusWritten:
		return "written"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProfileResult records the outcome of one profile.
type ProfileResult struct {
	// Name is the profile name.
	Name string
	// Status is the final state the profile reached.
	Status Status
	// Hash is the checksum of the substituted built profile.
	Hash string
	// Target describes the dispatch destination, when one was resolved.
	Target string
	// Reason carries a short explanation for skipped profiles.
	Reason string
	// Err is the failure cause for failed profiles.
	Err error
}

// Report aggregates the outcome of a whole run.
type Report struct {
	// DryRun records whether the run bypassed writes.
	DryRun bool
	// EnvCheck records whether unresolved variables fail the run.
	EnvCheck bool
	// Profiles lists per-profile results in processing order.
	Profiles []ProfileResult

	missing []string
}

func (r *Report) addMissing(names []string) {
	r.missing = append(r.missing, names...)
}

// MissingVars returns the unresolved variable names collected across all
// profiles, deduplicated and sorted for end-of-run reporting.
func (r *Report) MissingVars() []string {
	return dedupSorted(r.missing)
}

// Failed returns the profiles that could not be dispatched.
func (r *Report) Failed() []ProfileResult {
	var failed []ProfileResult
	for _, p := range r.Profiles {
		if p.Status == StatusFailed {
			failed = append(failed, p)
		}
	}
	return failed
}

// OK reports whether the run finished clean: no failed profiles and, when
// environment checking is on, no unresolved variables.
func (r *Report) OK() bool {
	if len(r.Failed()) > 0 {
		return false
	}
	if r.EnvCheck && len(r.missing) > 0 {
		return false
	}
	return true
}

func dedupSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	sort.Strings(unique)
	return unique
}
