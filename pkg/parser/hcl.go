package parser

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/logger"
	"go.uber.org/zap"
)

// HCLParser reads settings written as HCL:
//
//	reaper {
//	  status  = "available"
//	  dry_run = false
//	}
//	output {
//	  format = "table"
//	}
type HCLParser struct {
	Filename string
}

type hclFile struct {
	Reaper *hclReaper `hcl:"reaper,block"`
	Output *hclOutput `hcl:"output,block"`
}

type hclReaper struct {
	Status string `hcl:"status,optional"`
	DryRun bool   `hcl:"dry_run,optional"`
}

type hclOutput struct {
	Format string `hcl:"format,optional"`
}

func (p *HCLParser) Parse(content []byte) (*Settings, error) {
	log := logger.WithField("component", "settings-parser")

	filename := p.Filename
	if filename == "" {
		filename = "cloudsweep.hcl"
	}

	file, diags := hclparse.NewParser().ParseHCL(content, filename)
	if diags.HasErrors() {
		log.Error("HCL parsing failed",
			zap.String("error", diags.Error()),
			zap.Int("error_count", len(diags)))
		logDiagnostics(log, "Parsing diagnostic", diags)
		return nil, errors.ErrHCLParseFailure{Diagnostics: diags}
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		log.Error("HCL decoding failed",
			zap.String("error", diags.Error()),
			zap.Int("error_count", len(diags)))
		logDiagnostics(log, "Decoding diagnostic", diags)
		return nil, errors.ErrHCLDecodeFailure{Diagnostics: diags}
	}

	settings := &Settings{}
	if raw.Reaper != nil {
		settings.Reaper = ReaperSettings{Status: raw.Reaper.Status, DryRun: raw.Reaper.DryRun}
	}
	if raw.Output != nil {
		settings.Output = OutputSettings{Format: raw.Output.Format}
	}
	settings.applyDefaults()

	log.Debug("Parsed settings file",
		zap.String("status", settings.Reaper.Status),
		zap.Bool("dry_run", settings.Reaper.DryRun),
		zap.String("format", settings.Output.Format))
	return settings, nil
}

func logDiagnostics(log *zap.Logger, msg string, diags hcl.Diagnostics) {
	for _, diag := range diags {
		log.Debug(msg,
			zap.String("summary", diag.Summary),
			zap.String("detail", diag.Detail),
			zap.String("position", fmt.Sprintf("%v", diag.Subject)))
	}
}
