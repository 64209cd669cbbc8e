package output_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/oldmonad/cloudsweep/internal/lister"
	"github.com/oldmonad/cloudsweep/internal/reaper"
	"github.com/oldmonad/cloudsweep/pkg/output"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = false
}

func TestTextInstances(t *testing.T) {
	var buf bytes.Buffer
	output.NewPrinter(&buf, output.Text).Instances([]lister.InstanceRecord{
		{InstanceID: "i-1", State: "running", InstanceType: "t2.micro"},
		{InstanceID: "i-2", State: "stopped", InstanceType: lister.UnknownInstanceType},
	})

	assert.Equal(t, "i-1 - running - t2.micro\ni-2 - stopped - unknown\n", buf.String())
}

func TestTextInstancesEmpty(t *testing.T) {
	var buf bytes.Buffer
	output.NewPrinter(&buf, "").Instances(nil)
	assert.Empty(t, buf.String())
}

func TestTextBuckets(t *testing.T) {
	created := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	var buf bytes.Buffer
	output.NewPrinter(&buf, output.Text).Buckets([]lister.BucketRecord{
		{Name: "logs", CreationDate: created},
	})

	assert.Equal(t, "logs - Created on 2024-01-02 15:04:05+00:00\n", buf.String())
}

func TestVolumeNotice(t *testing.T) {
	var buf bytes.Buffer
	p := output.NewPrinter(&buf, output.Table)
	p.VolumeNotice("vol-1", false)
	p.VolumeNotice("vol-2", true)

	assert.Equal(t, "Deleting volume vol-1\nWould delete volume vol-2\n", buf.String())
}

func TestTableInstancesHeaderAndColors(t *testing.T) {
	var buf bytes.Buffer
	output.NewPrinter(&buf, output.Table).Instances([]lister.InstanceRecord{
		{InstanceID: "i-1", State: "running", InstanceType: "t2.micro"},
		{InstanceID: "i-2", State: "terminated", InstanceType: "m5.large"},
		{InstanceID: "i-3", State: "stopped", InstanceType: "c5.large"},
	})
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "INSTANCE ID"), "table should start with header")
	assert.Regexp(t, regexp.MustCompile(`i-1\s+\x1b\[32mrunning\x1b\[0m\s+t2\.micro`), out)
	assert.Contains(t, out, "\x1b[31mterminated\x1b[0m")
	assert.Contains(t, out, "\x1b[33mstopped\x1b[0m")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestTableBucketsEmpty(t *testing.T) {
	var buf bytes.Buffer
	output.NewPrinter(&buf, output.Table).Buckets(nil)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "NAME\tCREATED"), "table should start with header")
	assert.Equal(t, 1, strings.Count(out, "\n"), "only header should be present")
}

func TestReapResult(t *testing.T) {
	t.Run("text prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		output.NewPrinter(&buf, output.Text).ReapResult(reaper.Result{Deleted: []string{"vol-1"}})
		assert.Empty(t, buf.String())
	})

	t.Run("table marks outcomes", func(t *testing.T) {
		var buf bytes.Buffer
		output.NewPrinter(&buf, output.Table).ReapResult(reaper.Result{
			Status:  "available",
			Matched: []string{"vol-1", "vol-2"},
			Deleted: []string{"vol-1"},
		})
		out := buf.String()

		assert.Regexp(t, regexp.MustCompile(`vol-1\s+\x1b\[32mdeleted\x1b\[0m`), out)
		assert.Regexp(t, regexp.MustCompile(`vol-2\s+\x1b\[33mnot deleted\x1b\[0m`), out)
		assert.Contains(t, out, "Deleted 1 of 2 volume(s) with status available")
	})

	t.Run("table dry run", func(t *testing.T) {
		var buf bytes.Buffer
		output.NewPrinter(&buf, output.Table).ReapResult(reaper.Result{
			Status:  "available",
			DryRun:  true,
			Matched: []string{"vol-1"},
		})

		assert.Contains(t, buf.String(), "\x1b[33mwould delete\x1b[0m")
		assert.Contains(t, buf.String(), "Deleted 0 of 1 volume(s)")
	})
}
