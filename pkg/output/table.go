package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/oldmonad/cloudsweep/internal/lister"
	"github.com/oldmonad/cloudsweep/internal/reaper"
	"github.com/olekukonko/tablewriter"
)

type Format string

const (
	Text  Format = "text"
	Table Format = "table"
)

// CreationDateLayout renders bucket creation dates with a numeric UTC offset.
const CreationDateLayout = "2006-01-02 15:04:05-07:00"

type Printer struct {
	w      io.Writer
	format Format
}

func NewPrinter(w io.Writer, format Format) *Printer {
	if format == "" {
		format = Text
	}
	return &Printer{w: w, format: format}
}

func (p *Printer) Instances(records []lister.InstanceRecord) {
	if p.format == Table {
		table := newTable(p.w, []string{"Instance ID", "State", "Instance Type"})
		for _, r := range records {
			table.Append([]string{r.InstanceID, colorState(r.State), r.InstanceType})
		}
		table.Render()
		return
	}

	for _, r := range records {
		fmt.Fprintf(p.w, "%s - %s - %s\n", r.InstanceID, r.State, r.InstanceType)
	}
}

func (p *Printer) Buckets(records []lister.BucketRecord) {
	if p.format == Table {
		table := newTable(p.w, []string{"Name", "Created"})
		for _, r := range records {
			table.Append([]string{r.Name, r.CreationDate.Format(CreationDateLayout)})
		}
		table.Render()
		return
	}

	for _, r := range records {
		fmt.Fprintf(p.w, "%s - Created on %s\n", r.Name, r.CreationDate.Format(CreationDateLayout))
	}
}

// VolumeNotice is printed before each delete call, so it is always a plain
// line regardless of format.
func (p *Printer) VolumeNotice(volumeID string, dryRun bool) {
	if dryRun {
		fmt.Fprintf(p.w, "Would delete volume %s\n", volumeID)
		return
	}
	fmt.Fprintf(p.w, "Deleting volume %s\n", volumeID)
}

// ReapResult prints a summary table in table mode. Text mode prints nothing
// beyond the per-volume notices.
func (p *Printer) ReapResult(result reaper.Result) {
	if p.format != Table {
		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	table := newTable(p.w, []string{"Volume ID", "Outcome"})
	deleted := make(map[string]bool, len(result.Deleted))
	for _, id := range result.Deleted {
		deleted[id] = true
	}
	for _, id := range result.Matched {
		switch {
		case deleted[id]:
			table.Append([]string{id, green("deleted")})
		case result.DryRun:
			table.Append([]string{id, yellow("would delete")})
		default:
			table.Append([]string{id, yellow("not deleted")})
		}
	}
	table.Render()
	fmt.Fprintf(p.w, "Deleted %d of %d volume(s) with status %s\n",
		result.Count(), len(result.Matched), result.Status)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

func colorState(state string) string {
	switch state {
	case "running":
		return color.New(color.FgGreen).Sprint(state)
	case "pending", "stopping", "stopped":
		return color.New(color.FgYellow).Sprint(state)
	case "shutting-down", "terminated":
		return color.New(color.FgRed).Sprint(state)
	default:
		return state
	}
}
