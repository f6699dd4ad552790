package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netaudit/pkg/models"
)

func forObject(results []models.CheckResult, object string) []models.CheckResult {
	var out []models.CheckResult

	for _, r := range results {
		if r.Object == object {
			out = append(out, r)
		}
	}

	return out
}

func forField(results []models.CheckResult, field string) []models.CheckResult {
	var out []models.CheckResult

	for _, r := range results {
		if r.Field == field {
			out = append(out, r)
		}
	}

	return out
}

func TestCompareSetsReportsEachDifference(t *testing.T) {
	results := CompareSets("Gi1/0/1", "trunk_allowed_vlans", []int{10, 20, 30}, []int{10, 20, 40})
	require.Len(t, results, 3)

	missing := results[0]
	assert.Equal(t, models.StatusFail, missing.Status)
	assert.Equal(t, 30, missing.Expected)
	assert.Nil(t, missing.Actual)
	assert.Equal(t, "missing", missing.Message)

	extra := results[1]
	assert.Equal(t, models.StatusFail, extra.Status)
	assert.Nil(t, extra.Expected)
	assert.Equal(t, 40, extra.Actual)
	assert.Equal(t, "extra", extra.Message)

	matched := results[2]
	assert.Equal(t, models.StatusPass, matched.Status)
	assert.Equal(t, []int{10, 20}, matched.Expected)
	assert.Equal(t, []int{10, 20}, matched.Actual)
}

func TestCompareSetsAllMatched(t *testing.T) {
	results := CompareSets("", "exclusive_list", []int{20, 10}, []int{10, 20})
	require.Len(t, results, 1)

	assert.Equal(t, models.StatusPass, results[0].Status)
	assert.Equal(t, []int{10, 20}, results[0].Expected)
}

func TestCompareSetsNothingMatched(t *testing.T) {
	results := CompareSets("", "exclusive_list", []int{10}, []int{20})
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Equal(t, models.StatusFail, r.Status)
	}
}

func TestCompareSetsBothEmpty(t *testing.T) {
	assert.Empty(t, CompareSets("", "exclusive_list", nil, nil))
}

func TestHostnameMatch(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		measured string
		want     bool
	}{
		{name: "exact", expected: "sw01", measured: "sw01", want: true},
		{name: "case insensitive", expected: "sw01", measured: "SW01", want: true},
		{name: "vendor formatted", expected: "sw-b", measured: "Meraki MS220 - sw-b", want: true},
		{name: "vendor formatted with model", expected: "ap01", measured: "Meraki MR36 - ap01", want: true},
		{name: "vendor formatted wrong host", expected: "sw01", measured: "Meraki MS220 - sw02", want: false},
		{name: "other vendor prefix", expected: "sw01", measured: "Arista - sw01", want: false},
		{name: "plain mismatch", expected: "sw01", measured: "sw02", want: false},
		{name: "empty measured", expected: "sw01", measured: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hostnameMatch(tt.expected, tt.measured))
		})
	}
}

func TestCompareBoolField(t *testing.T) {
	up := true
	down := false

	assert.Equal(t, models.StatusSkip, compareBoolField("1", "oper_up", nil, &up).Status)
	assert.Equal(t, models.StatusInfo, compareBoolField("1", "oper_up", &up, nil).Status)
	assert.Equal(t, models.StatusPass, compareBoolField("1", "oper_up", &up, &up).Status)
	assert.Equal(t, models.StatusFail, compareBoolField("1", "oper_up", &up, &down).Status)
}

func TestCompareIntField(t *testing.T) {
	assert.Equal(t, models.StatusSkip, compareIntField("1", "speed", 0, 1000).Status)
	assert.Equal(t, models.StatusInfo, compareIntField("1", "speed", 1000, models.UnknownInt).Status)
	assert.Equal(t, models.StatusPass, compareIntField("1", "speed", 1000, 1000).Status)
	assert.Equal(t, models.StatusFail, compareIntField("1", "speed", 1000, 100).Status)
}

func TestCompareStringField(t *testing.T) {
	assert.Equal(t, models.StatusSkip, compareStringField("wan1", "if_ipaddr", "", "10.0.0.1/24").Status)
	assert.Equal(t, models.StatusInfo, compareStringField("wan1", "if_ipaddr", "10.0.0.1/24", "").Status)
	assert.Equal(t, models.StatusPass, compareStringField("wan1", "if_ipaddr", "10.0.0.1/24", "10.0.0.1/24").Status)
	assert.Equal(t, models.StatusFail, compareStringField("wan1", "if_ipaddr", "10.0.0.1/24", "10.0.0.2/24").Status)
}
