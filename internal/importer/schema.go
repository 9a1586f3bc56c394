// Package importer reads and writes scenario files: the complete planner
// input (settings, sprint caps and tasks) as YAML, JSON or JSON with comments.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// ScenarioFile is the on-disk shape of a scenario.
type ScenarioFile struct {
	Project ProjectSection `yaml:"project" json:"project"`
	Sprints SprintSection  `yaml:"sprints" json:"sprints"`
	Budget  BudgetSection  `yaml:"budget" json:"budget"`
	Tasks   []TaskEntry    `yaml:"tasks" json:"tasks"`
	View    *ViewSection   `yaml:"view,omitempty" json:"view,omitempty"`
}

type ProjectSection struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

type SprintSection struct {
	Start string `yaml:"start" json:"start"`
	Weeks int    `yaml:"weeks" json:"weeks"`
}

type BudgetSection struct {
	Total            float64          `yaml:"total" json:"total"`
	MonthlyCap       float64          `yaml:"monthly_cap" json:"monthly_cap"`
	SprintCapDefault float64          `yaml:"sprint_cap_default" json:"sprint_cap_default"`
	SprintCaps       []SprintCapEntry `yaml:"sprint_caps,omitempty" json:"sprint_caps,omitempty"`
}

type SprintCapEntry struct {
	Nr  int     `yaml:"nr" json:"nr"`
	Cap float64 `yaml:"cap" json:"cap"`
}

type TaskEntry struct {
	ID     string  `yaml:"id,omitempty" json:"id,omitempty"`
	Name   string  `yaml:"name" json:"name"`
	Sprint int     `yaml:"sprint" json:"sprint"`
	Hours  float64 `yaml:"hours" json:"hours"`
}

type ViewSection struct {
	Month string `yaml:"month,omitempty" json:"month,omitempty"`
}

// Format is a scenario file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from the file extension. JSON files may
// carry comments and trailing commas.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported scenario file extension %q (want .yaml, .yml, .json or .jsonc)", filepath.Ext(path))
	}
}

// Load reads and parses a scenario file. It does not validate.
func Load(path string) (*ScenarioFile, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*ScenarioFile, error) {
	var f ScenarioFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing scenario YAML: %w", err)
		}
	case FormatJSON:
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("invalid JSONC: %w", err)
		}
		if err := json.Unmarshal(standardized, &f); err != nil {
			return nil, fmt.Errorf("parsing scenario JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown scenario format %q", format)
	}
	return &f, nil
}
