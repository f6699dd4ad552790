package tui

import (
	"fmt"
	"strings"

	"github.com/carverauto/netaudit/pkg/models"
)

// Summary renders the plain text form of a report for non-interactive
// output: one line per device plus run totals and incomplete devices.
func Summary(report *models.RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "run %s  %s\n", report.RunID, report.Status)

	counts := report.Counts()
	fmt.Fprintf(&b, "%d pass, %d fail, %d info, %d skip\n",
		counts[models.StatusPass], counts[models.StatusFail],
		counts[models.StatusInfo], counts[models.StatusSkip])

	for i := range report.Devices {
		device := &report.Devices[i]

		fmt.Fprintf(&b, "  %-16s %-10s %s", device.Device, device.Family, device.Status)

		if n := device.FailCount(); n > 0 {
			fmt.Fprintf(&b, "  (%d failing)", n)
		}

		b.WriteByte('\n')
	}

	for i := range report.Incomplete {
		device := &report.Incomplete[i]
		fmt.Fprintf(&b, "  %-16s incomplete: %s\n", device.Device, device.Reason)
	}

	return b.String()
}
