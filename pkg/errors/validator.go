package errors

import (
	"fmt"
	"strings"
)

// ErrInvalidOutputFormat is returned for an --output value with no printer.
type ErrInvalidOutputFormat struct {
	Format string
	Valid  []string
}

func (e ErrInvalidOutputFormat) Error() string {
	return fmt.Sprintf("invalid output format %q; valid are: %s", e.Format, strings.Join(e.Valid, ", "))
}

func NewInvalidOutputFormat(format string, valid []string) error {
	return ErrInvalidOutputFormat{Format: format, Valid: valid}
}

// ErrInvalidVolumeStatus is returned for a volume status filter outside the
// EBS status enumeration.
type ErrInvalidVolumeStatus struct {
	Status string
	Valid  []string
}

func (e ErrInvalidVolumeStatus) Error() string {
	var validFormatted string
	for _, s := range e.Valid {
		validFormatted += fmt.Sprintf("  - %s\n", s)
	}
	return fmt.Sprintf("invalid volume status %q\nValid options:\n%s", e.Status, validFormatted)
}

func NewInvalidVolumeStatus(status string, valid []string) error {
	return ErrInvalidVolumeStatus{Status: status, Valid: valid}
}
