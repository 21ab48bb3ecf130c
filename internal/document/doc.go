// Package document defines the in-memory value tree shared by every stage
// of the build pipeline and the codecs for the two supported textual
// dialects.
//
// The strict dialect is standard JSON and is the only output dialect. The
// relaxed dialect is an input-only superset of JSON that additionally
// permits // line comments, /* block */ comments, trailing commas in
// mappings and sequences, unquoted identifier keys, and single-quoted
// strings. Both parsers produce the same [Value] tree; dialect quirks never
// survive parsing.
package document
