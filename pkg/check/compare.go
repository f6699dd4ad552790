package check

import (
	"slices"
	"strings"

	"github.com/carverauto/netaudit/pkg/models"
)

// CompareSets diffs an expected against an actual integer set for one
// field. Every missing element and every extra element yields its own
// FAIL; the matched subset, when non-empty, yields a single PASS
// carrying the sorted members. Two empty sets yield nothing.
func CompareSets(object, field string, expected, actual []int) []models.CheckResult {
	want := make(map[int]bool, len(expected))
	for _, v := range expected {
		want[v] = true
	}

	have := make(map[int]bool, len(actual))
	for _, v := range actual {
		have[v] = true
	}

	var missing, extra, matched []int

	for v := range want {
		if have[v] {
			matched = append(matched, v)
		} else {
			missing = append(missing, v)
		}
	}

	for v := range have {
		if !want[v] {
			extra = append(extra, v)
		}
	}

	slices.Sort(missing)
	slices.Sort(extra)
	slices.Sort(matched)

	results := make([]models.CheckResult, 0, len(missing)+len(extra)+1)

	for _, v := range missing {
		results = append(results, models.CheckResult{
			Object:   object,
			Field:    field,
			Status:   models.StatusFail,
			Expected: v,
			Message:  "missing",
		})
	}

	for _, v := range extra {
		results = append(results, models.CheckResult{
			Object:  object,
			Field:   field,
			Status:  models.StatusFail,
			Actual:  v,
			Message: "extra",
		})
	}

	if len(matched) > 0 {
		results = append(results, models.CheckResult{
			Object:   object,
			Field:    field,
			Status:   models.StatusPass,
			Expected: matched,
			Actual:   matched,
			Message:  "matched",
		})
	}

	return results
}

// compareBoolField applies the tri-state rules to an optional bool. A
// nil expectation skips, a nil actual is unknown and informational.
func compareBoolField(object, field string, expected, actual *bool) models.CheckResult {
	if expected == nil {
		return skipped(object, field)
	}

	if actual == nil {
		return unknown(object, field, *expected)
	}

	if *expected == *actual {
		return passed(object, field, *expected, *actual)
	}

	return failed(object, field, *expected, *actual)
}

// compareIntField treats a zero expectation as undesigned and an
// UnknownInt actual as unreported.
func compareIntField(object, field string, expected, actual int) models.CheckResult {
	if expected == 0 {
		return skipped(object, field)
	}

	if actual == models.UnknownInt {
		return unknown(object, field, expected)
	}

	if expected == actual {
		return passed(object, field, expected, actual)
	}

	return failed(object, field, expected, actual)
}

// compareStringField treats an empty expectation as undesigned and an
// empty actual as unreported.
func compareStringField(object, field string, expected, actual string) models.CheckResult {
	if expected == "" {
		return skipped(object, field)
	}

	if actual == "" {
		return unknown(object, field, expected)
	}

	if expected == actual {
		return passed(object, field, expected, actual)
	}

	return failed(object, field, expected, actual)
}

func passed(object, field string, expected, actual any) models.CheckResult {
	return models.CheckResult{
		Object:   object,
		Field:    field,
		Status:   models.StatusPass,
		Expected: expected,
		Actual:   actual,
	}
}

func failed(object, field string, expected, actual any) models.CheckResult {
	return models.CheckResult{
		Object:   object,
		Field:    field,
		Status:   models.StatusFail,
		Expected: expected,
		Actual:   actual,
		Message:  "mismatch",
	}
}

func unknown(object, field string, expected any) models.CheckResult {
	return models.CheckResult{
		Object:   object,
		Field:    field,
		Status:   models.StatusInfo,
		Expected: expected,
		Message:  "actual value not reported",
	}
}

func skipped(object, field string) models.CheckResult {
	return models.CheckResult{
		Object:  object,
		Field:   field,
		Status:  models.StatusSkip,
		Message: "no designed value",
	}
}

// failMissing reports a designed object the device did not report at all.
func failMissing(object, message string) models.CheckResult {
	return models.CheckResult{
		Object:   object,
		Field:    "exists",
		Status:   models.StatusFail,
		Expected: true,
		Actual:   false,
		Message:  message,
	}
}

// categoryUnknown is the single INFO a check emits when the device did
// not report the data set the check depends on.
func categoryUnknown(field, message string) []models.CheckResult {
	return []models.CheckResult{{
		Field:   field,
		Status:  models.StatusInfo,
		Message: message,
	}}
}

// hostnameMatch accepts either an exact case-insensitive name match or
// a vendor-formatted LLDP system name whose last token is the
// configured device name, e.g. "Meraki MS220-8P - sw01" for "sw01".
func hostnameMatch(expected, measured string) bool {
	if strings.EqualFold(expected, measured) {
		return true
	}

	return merakiHostnameMatch(expected, measured)
}

func merakiHostnameMatch(expected, measured string) bool {
	if !strings.HasPrefix(measured, "Meraki") {
		return false
	}

	fields := strings.Fields(measured)
	if len(fields) == 0 {
		return false
	}

	return fields[len(fields)-1] == expected
}

func portMatch(expected, measured string) bool {
	return strings.EqualFold(expected, measured)
}
