package builder

import (
	"errors"
	"fmt"
)

// Errors reported while resolving and dispatching targets.
var (
	// ErrInvalidTarget indicates a target specification that is neither a
	// file path string nor a mapping with a "write" command.
	ErrInvalidTarget = errors.New("invalid target specification")
	// ErrNoTarget indicates a profile with no entry in the targets mapping.
	ErrNoTarget = errors.New("no target declared")
	// ErrMissingVariables indicates unresolved ${VAR} placeholders in a run
	// with environment checking enabled.
	ErrMissingVariables = errors.New("missing environment variables")
)

// CompositionError reports a failed lookup while composing a profile.
// An internally inconsistent configuration cannot be partially trusted, so
// the orchestrator treats it as fatal for the whole run.
type CompositionError struct {
	// Profile is the profile under composition.
	Profile string
	// Key is the missing profile or template name.
	Key string
	// Msg carries detail when the failure is structural rather than a
	// missing key.
	Msg string
}

func (e *CompositionError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("profile %q: %s", e.Profile, e.Msg)
	}
	if e.Key == e.Profile {
		return fmt.Sprintf("profile %q is not declared", e.Key)
	}
	return fmt.Sprintf("template %q referenced by profile %q is not declared", e.Key, e.Profile)
}

// TargetWriteError reports a failed dispatch: a file write that could not
// complete or a write command that exited non-zero without a recognized
// success message.
type TargetWriteError struct {
	// Target describes the target that failed.
	Target string
	// Output is the captured diagnostic output, if any.
	Output string
	// Err is the underlying cause.
	Err error
}

func (e *TargetWriteError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("write to %s: %v: %s", e.Target, e.Err, e.Output)
	}
	return fmt.Sprintf("write to %s: %v", e.Target, e.Err)
}

func (e *TargetWriteError) Unwrap() error { return e.Err }

// TargetReadError reports a failed preview read. Always non-fatal; callers
// log it and treat the prior target state as unknown.
type TargetReadError struct {
	// Target describes the target whose read failed.
	Target string
	// Err is the underlying cause.
	Err error
}

func (e *TargetReadError) Error() string {
	return fmt.Sprintf("read from %s: %v", e.Target, e.Err)
}

func (e *TargetReadError) Unwrap() error { return e.Err }
