package validator

import (
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/oldmonad/cloudsweep/pkg/output"
)

// VolumeStatuses is the EBS volume status enumeration accepted as a filter.
var VolumeStatuses = []string{"available", "creating", "deleted", "deleting", "error", "in-use"}

var OutputFormats = []string{string(output.Text), string(output.Table)}

type Validator interface {
	ValidateOutputFormat(format string) (output.Format, error)
	ValidateVolumeStatus(status string) (string, error)
}

type ValidatorOptions struct {
	validate      *playground.Validate
	statusRule    string
	outputRule    string
	volumeStatus  []string
	outputFormats []string
}

func NewValidator() Validator {
	return newValidatorOptions(VolumeStatuses, OutputFormats)
}

func NewValidatorOptionsForTesting(statuses, formats []string) *ValidatorOptions {
	return newValidatorOptions(statuses, formats)
}

func newValidatorOptions(statuses, formats []string) *ValidatorOptions {
	return &ValidatorOptions{
		validate:      playground.New(),
		statusRule:    oneOf(statuses),
		outputRule:    oneOf(formats),
		volumeStatus:  statuses,
		outputFormats: formats,
	}
}

// oneOf builds a required,oneof rule. Values must not contain spaces.
func oneOf(values []string) string {
	return "required,oneof=" + strings.Join(values, " ")
}
