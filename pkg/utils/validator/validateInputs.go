package validator

import (
	"strings"

	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/output"
)

// ValidateOutputFormat normalises case and rejects formats with no printer.
// An empty format selects text output.
func (v *ValidatorOptions) ValidateOutputFormat(format string) (output.Format, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return output.Text, nil
	}
	if err := v.validate.Var(format, v.outputRule); err != nil {
		return "", errors.NewInvalidOutputFormat(format, v.outputFormats)
	}
	return output.Format(format), nil
}

// ValidateVolumeStatus checks a reaper status filter against the EBS status
// enumeration. An empty status selects "available".
func (v *ValidatorOptions) ValidateVolumeStatus(status string) (string, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return "available", nil
	}
	if err := v.validate.Var(status, v.statusRule); err != nil {
		return "", errors.NewInvalidVolumeStatus(status, v.volumeStatus)
	}
	return status, nil
}
