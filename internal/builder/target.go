// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/buildmcp/internal/document"
	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/internal/utils"
)

// successPhrases are the confirmation lines known MCP hosts print. Matching
// write-command output is echoed at debug level after a successful write;
// the exit status alone decides success.
var successPhrases = []string{
	"Configuration saved successfully",
	"successfully",
	"Success",
	"Updated",
	"Complete",
}

type targetResolver struct {
	logs *logger.Logger
}

// NewTargetResolver returns the standard resolver producing file and command
// targets.
func NewTargetResolver(logs *logger.Logger) TargetResolver {
	return targetResolver{logs: logs}
}

// Resolve interprets a target specification: a string is a file path
// (resolved to absolute), a mapping with a "write" key is a command pair.
func (r targetResolver) Resolve(spec document.Value) (Target, error) {
	switch v := spec.(type) {
	case document.String:
		path, err := utils.ResolvePath(string(v))
		if err != nil {
			return nil, fmt.Errorf("target path %q: %w", string(v), err)
		}
		return &FileTarget{Path: path}, nil

	case document.Mapping:
		write, ok := v["write"].(document.String)
		if !ok || write == "" {
			return nil, fmt.Errorf("target mapping has no \"write\" command: %w", ErrInvalidTarget)
		}
		read, _ := v["read"].(document.String)
		return &CommandTarget{ReadCommand: string(read), WriteCommand: string(write), logs: r.logs}, nil

	default:
		return nil, fmt.Errorf("target is %s: %w", document.TypeName(spec), ErrInvalidTarget)
	}
}

// FileTarget writes the built profile into a JSON document on disk under the
// mcpServers key, preserving the document's other top-level keys.
type FileTarget struct {
	// Path is the absolute destination path.
	Path string
}

func (t *FileTarget) Describe() string {
	return t.Path
}

// Read returns the current file content, or nil when the file is absent.
func (t *FileTarget) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(t.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &TargetReadError{Target: t.Describe(), Err: err}
	}
	return data, nil
}

// Write replaces the mcpServers key of the existing document (an absent file
// counts as an empty document) and rewrites the file atomically.
func (t *FileTarget) Write(ctx context.Context, built document.Mapping) error {
	root := document.Mapping{}

	data, err := os.ReadFile(t.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return &TargetWriteError{Target: t.Describe(), Err: err}
	default:
		existing, parseErr := document.ParseStrict(data)
		if parseErr != nil {
			return &TargetWriteError{Target: t.Describe(), Err: fmt.Errorf("existing content: %w", parseErr)}
		}
		m, ok := existing.(document.Mapping)
		if !ok {
			return &TargetWriteError{
				Target: t.Describe(),
				Err:    fmt.Errorf("existing root is %s, want mapping", document.TypeName(existing)),
			}
		}
		root = m
	}

	root["mcpServers"] = built

	out, err := document.SerializeIndent(root)
	if err != nil {
		return &TargetWriteError{Target: t.Describe(), Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(t.Path), 0o755); err != nil {
		return &TargetWriteError{Target: t.Describe(), Err: err}
	}

	// Built profiles can carry substituted secrets; keep the file private
	// and swap it in atomically so interruption never truncates it.
	tmpPath := t.Path + ".tmp"
	if err := os.WriteFile(tmpPath, out, 0o600); err != nil {
		return &TargetWriteError{Target: t.Describe(), Err: err}
	}
	if err := os.Rename(tmpPath, t.Path); err != nil {
		return &TargetWriteError{Target: t.Describe(), Err: err}
	}

	return nil
}

// CommandTarget delivers the built profile through a shell write command,
// feeding the serialized document on standard input. The optional read
// command fetches prior state for previews only.
type CommandTarget struct {
	// ReadCommand optionally fetches the target's current state.
	ReadCommand string
	// WriteCommand receives the serialized document on stdin.
	WriteCommand string

	logs *logger.Logger
}

func (t *CommandTarget) Describe() string {
	return fmt.Sprintf("command %q", t.WriteCommand)
}

// Read runs the read command, if declared, and returns its combined output.
func (t *CommandTarget) Read(ctx context.Context) ([]byte, error) {
	if t.ReadCommand == "" {
		return nil, nil
	}

	out, err := exec.CommandContext(ctx, "sh", "-c", t.ReadCommand).CombinedOutput()
	if err != nil {
		return nil, &TargetReadError{Target: fmt.Sprintf("command %q", t.ReadCommand), Err: err}
	}
	return out, nil
}

// Write feeds {"mcpServers": built} to the write command on stdin. A
// non-zero exit status is a write failure carrying the captured output.
func (t *CommandTarget) Write(ctx context.Context, built document.Mapping) error {
	payload, err := document.SerializeIndent(document.Mapping{"mcpServers": built})
	if err != nil {
		return &TargetWriteError{Target: t.Describe(), Err: err}
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", t.WriteCommand)
	cmd.Stdin = bytes.NewReader(payload)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &TargetWriteError{Target: t.Describe(), Output: strings.TrimSpace(string(out)), Err: err}
	}

	// MCP hosts tend to print their confirmation on stderr; surface it when
	// it matches a known phrase.
	if output := strings.TrimSpace(string(out)); output != "" && hasSuccessPhrase(output) {
		t.logs.Debug().Str("output", output).Msg("write command confirmed")
	}
	return nil
}

func hasSuccessPhrase(output string) bool {
	lower := strings.ToLower(output)
	for _, phrase := range successPhrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
