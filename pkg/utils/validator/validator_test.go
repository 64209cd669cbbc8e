package validator_test

import (
	"testing"

	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/output"
	"github.com/oldmonad/cloudsweep/pkg/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		input    string
		expected output.Format
		wantErr  bool
	}{
		{input: "", expected: output.Text},
		{input: "text", expected: output.Text},
		{input: "TABLE", expected: output.Table},
		{input: " table ", expected: output.Table},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := v.ValidateOutputFormat(tt.input)
			if tt.wantErr {
				var formatErr errors.ErrInvalidOutputFormat
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, []string{"text", "table"}, formatErr.Valid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestValidateVolumeStatus(t *testing.T) {
	v := validator.NewValidator()

	t.Run("empty selects available", func(t *testing.T) {
		status, err := v.ValidateVolumeStatus("")
		require.NoError(t, err)
		assert.Equal(t, "available", status)
	})

	t.Run("every EBS status is accepted", func(t *testing.T) {
		for _, s := range validator.VolumeStatuses {
			status, err := v.ValidateVolumeStatus(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, status)
		}
	})

	t.Run("hyphenated status", func(t *testing.T) {
		status, err := v.ValidateVolumeStatus("In-Use")
		require.NoError(t, err)
		assert.Equal(t, "in-use", status)
	})

	t.Run("unknown status lists options", func(t *testing.T) {
		_, err := v.ValidateVolumeStatus("detached")
		var statusErr errors.ErrInvalidVolumeStatus
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, "detached", statusErr.Status)
		assert.Contains(t, err.Error(), "  - available\n")
	})
}

func TestCustomOptions(t *testing.T) {
	v := validator.NewValidatorOptionsForTesting([]string{"available"}, []string{"text"})

	_, err := v.ValidateVolumeStatus("error")
	assert.Error(t, err)

	_, err = v.ValidateOutputFormat("table")
	assert.Error(t, err)
}
