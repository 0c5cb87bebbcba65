// Package iojson are utilities for writing JSON output from a command
// line interface perspective.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteLine writes obj to w as a single compact JSON line. Intended
// for JSON-lines output consumed by scripts and other tools.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal JSON line: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write writes obj to w as indented JSON.
func Write(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
