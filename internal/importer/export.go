package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

const filePerms = 0o644

// Marshal encodes f in the given format.
func Marshal(f *ScenarioFile, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, fmt.Errorf("encoding scenario YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding scenario YAML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding scenario JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown scenario format %q", format)
	}
}

// Write replaces path with f atomically, choosing the format from the
// extension.
func Write(path string, f *ScenarioFile) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(f, format)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	// atomic.WriteFile does not set permissions on new files.
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("setting scenario file permissions: %w", err)
	}
	return nil
}
