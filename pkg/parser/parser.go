package parser

import (
	"path/filepath"
	"strings"

	"github.com/oldmonad/cloudsweep/pkg/errors"
)

// Settings is the optional file-based configuration loaded from CONFIG_PATH.
type Settings struct {
	Reaper ReaperSettings `json:"reaper"`
	Output OutputSettings `json:"output"`
}

type ReaperSettings struct {
	Status string `json:"status"`
	DryRun bool   `json:"dry_run"`
}

type OutputSettings struct {
	Format string `json:"format"`
}

const (
	DefaultVolumeStatus = "available"
	DefaultOutputFormat = "text"
)

// DefaultSettings matches the behaviour with no settings file at all.
func DefaultSettings() *Settings {
	return &Settings{
		Reaper: ReaperSettings{Status: DefaultVolumeStatus},
		Output: OutputSettings{Format: DefaultOutputFormat},
	}
}

func (s *Settings) applyDefaults() {
	if s.Reaper.Status == "" {
		s.Reaper.Status = DefaultVolumeStatus
	}
	if s.Output.Format == "" {
		s.Output.Format = DefaultOutputFormat
	}
}

type Parser interface {
	Parse(content []byte) (*Settings, error)
}

type ParserType string

const (
	HCL     ParserType = "hcl"
	JSON    ParserType = "json"
	Unknown ParserType = "unknown"
)

// TypeForPath picks a parser from the file extension.
func TypeForPath(path string) ParserType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return HCL
	case ".json":
		return JSON
	default:
		return Unknown
	}
}

func New(t ParserType, path string) (Parser, error) {
	switch t {
	case HCL:
		return &HCLParser{Filename: filepath.Base(path)}, nil
	case JSON:
		return &JSONParser{}, nil
	default:
		return nil, errors.NewUnsupportedSettingsFormat(path)
	}
}
