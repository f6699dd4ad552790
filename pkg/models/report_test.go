package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceReportFailCount(t *testing.T) {
	report := DeviceReport{
		Device: "sw01",
		Status: StatusFail,
		Results: []CheckResult{
			{Status: StatusPass},
			{Status: StatusFail},
			{Status: StatusInfo},
			{Status: StatusFail},
			{Status: StatusSkip},
		},
	}

	assert.Equal(t, 2, report.FailCount())
}

func TestRunReportCounts(t *testing.T) {
	report := RunReport{
		Devices: []DeviceReport{
			{
				Device: "sw01",
				Results: []CheckResult{
					{Status: StatusPass},
					{Status: StatusPass},
					{Status: StatusFail},
				},
			},
			{
				Device: "sw02",
				Results: []CheckResult{
					{Status: StatusInfo},
					{Status: StatusPass},
				},
			},
		},
	}

	counts := report.Counts()
	assert.Equal(t, 3, counts[StatusPass])
	assert.Equal(t, 1, counts[StatusFail])
	assert.Equal(t, 1, counts[StatusInfo])
	assert.Zero(t, counts[StatusSkip])
}

func TestStateSetLookups(t *testing.T) {
	up := true
	state := DeviceState{
		Interfaces: InterfaceSet{
			Known: true,
			Items: []InterfaceState{
				{Name: "1", Used: true, OperUp: &up, SpeedMbps: 1000},
				{Name: "2", Used: false, SpeedMbps: UnknownInt},
			},
		},
		Switchports: SwitchportSet{
			Known: true,
			Items: []SwitchportState{
				{Port: "1", Mode: SwitchportTrunk, NativeVLAN: 1, AllowAll: true},
			},
		},
	}

	assert.NotNil(t, state.Interfaces.Interface("2"))
	assert.Nil(t, state.Interfaces.Interface("3"))
	assert.NotNil(t, state.Switchports.Port("1"))
	assert.Nil(t, state.Switchports.Port("9"))
	assert.Equal(t, UnknownInt, state.Interfaces.Interface("2").SpeedMbps)
}
