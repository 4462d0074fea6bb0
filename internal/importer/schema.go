package importer

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/days.json data/sessions.json
var bundled embed.FS

// Tables is the full static dataset: the day table and the session list.
type Tables struct {
	Days     []DayRecord     `json:"days" yaml:"days"`
	Sessions []SessionRecord `json:"sessions" yaml:"sessions"`
}

// DayRecord maps a day label to a calendar date (YYYY-MM-DD).
type DayRecord struct {
	Day  string `json:"day" yaml:"day"`
	Date string `json:"date" yaml:"date"`
}

// SessionRecord is one timed session. Start and End are ISO-like timestamps;
// values without a zone are read in the configured location.
type SessionRecord struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Type  string `json:"type" yaml:"type"`
}

// BundledTables returns the tables compiled into the binary.
func BundledTables() (*Tables, error) {
	var t Tables

	days, err := bundled.ReadFile("data/days.json")
	if err != nil {
		return nil, fmt.Errorf("reading bundled days: %w", err)
	}
	if err := json.Unmarshal(days, &t.Days); err != nil {
		return nil, fmt.Errorf("parsing bundled days: %w", err)
	}

	sessions, err := bundled.ReadFile("data/sessions.json")
	if err != nil {
		return nil, fmt.Errorf("reading bundled sessions: %w", err)
	}
	if err := json.Unmarshal(sessions, &t.Sessions); err != nil {
		return nil, fmt.Errorf("parsing bundled sessions: %w", err)
	}

	return &t, nil
}

// LoadTables reads a tables file. Files ending in .yaml or .yml are parsed as
// YAML, everything else as JSON.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTables(data, filepath.Ext(path))
}

// ParseTables decodes raw tables data according to the file extension.
func ParseTables(data []byte, ext string) (*Tables, error) {
	var t Tables
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parsing tables file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parsing tables file: %w", err)
		}
	}
	return &t, nil
}
