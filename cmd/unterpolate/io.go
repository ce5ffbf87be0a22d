package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// readInput decodes a JSON or YAML document from path, or stdin for "-".
// An empty document decodes to nil.
func readInput(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}

	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to parse input %s: %w", path, err)
	}

	return value, nil
}

// writeOutput encodes value in format. JSON is indented when w is a terminal.
func writeOutput(w io.Writer, format string, value any) error {
	switch format {
	case formatJSON:
		var (
			data []byte
			err  error
		)

		if isTerminal(w) {
			data, err = json.MarshalIndent(value, "", "  ")
		} else {
			data, err = json.Marshal(value)
		}

		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}

		_, err = w.Write(append(data, '\n'))

		return err

	case formatYAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}

		if err := enc.Close(); err != nil {
			return err
		}

		_, err := w.Write(buf.Bytes())

		return err

	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)", format, formatJSON, formatYAML)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
