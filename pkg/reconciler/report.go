package reconciler

import (
	"sort"

	"github.com/carverauto/netaudit/pkg/models"
)

// sortResults orders results by (category, check, object, field) with a
// stable sort, so results sharing a key keep their emission order.
// Objects sort numerically where both are numbers, matching how ports
// and VLAN ids read.
func sortResults(results []models.CheckResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]

		if a.Category != b.Category {
			return a.Category < b.Category
		}

		if a.Check != b.Check {
			return a.Check < b.Check
		}

		if a.Object != b.Object {
			return models.PortLess(a.Object, b.Object)
		}

		return a.Field < b.Field
	})
}

// deviceStatus is FAIL when any result is FAIL, PASS otherwise. INFO and
// SKIP never affect it.
func deviceStatus(results []models.CheckResult) models.Status {
	for i := range results {
		if results[i].Status == models.StatusFail {
			return models.StatusFail
		}
	}

	return models.StatusPass
}

// finalize puts the report into its canonical order and computes the
// run-level status.
func finalize(report *models.RunReport) {
	sort.Slice(report.Devices, func(i, j int) bool {
		return report.Devices[i].Device < report.Devices[j].Device
	})

	sort.Slice(report.Incomplete, func(i, j int) bool {
		return report.Incomplete[i].Device < report.Incomplete[j].Device
	})

	report.Status = models.StatusPass

	for i := range report.Devices {
		if report.Devices[i].Status == models.StatusFail {
			report.Status = models.StatusFail
			break
		}
	}
}
