// Package builder implements the configuration build pipeline: it composes
// named profiles from base servers and templates, substitutes environment
// variables, hashes the result for change detection, and dispatches changed
// profiles to their declared targets.
//
// The pipeline is strictly sequential. Fatal conditions (unparseable source
// document, corrupt lock file, composition lookup failure) abort a run before
// any target is written; per-profile dispatch failures are recorded in the
// run report and do not stop the remaining profiles.
package builder
