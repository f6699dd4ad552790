package check

import (
	"slices"

	"github.com/carverauto/netaudit/pkg/models"
)

// Switchports verifies the designed layer-2 configuration of each port.
// A mode mismatch stops further checks on that port since the remaining
// fields are mode-specific.
func Switchports(design *models.DeviceDesign, state *models.DeviceState) []models.CheckResult {
	if len(design.Switchports) == 0 {
		return nil
	}

	if !state.Switchports.Known {
		return categoryUnknown("switchports", "device reported no switchport configuration")
	}

	var results []models.CheckResult

	for _, want := range design.Switchports {
		actual := state.Switchports.Port(want.Port)
		if actual == nil {
			results = append(results, failMissing(want.Port, "switchport not reported"))
			continue
		}

		if want.Mode != actual.Mode {
			results = append(results, failed(want.Port, "switchport_mode", want.Mode, actual.Mode))
			continue
		}

		results = append(results, passed(want.Port, "switchport_mode", want.Mode, actual.Mode))

		switch want.Mode {
		case models.SwitchportAccess:
			results = append(results, compareIntField(want.Port, "access_vlan", want.AccessVLAN, actual.AccessVLAN))
		case models.SwitchportTrunk:
			results = append(results, trunkResults(want, actual)...)
		}
	}

	return results
}

func trunkResults(want models.SwitchportDesign, actual *models.SwitchportState) []models.CheckResult {
	results := make([]models.CheckResult, 0, 2)

	if actual.DropUntagged {
		results = append(results, models.CheckResult{
			Object:  want.Port,
			Field:   "native_vlan",
			Status:  models.StatusSkip,
			Message: "port drops untagged traffic",
		})
	} else {
		results = append(results, compareIntField(want.Port, "native_vlan", want.NativeVLAN, actual.NativeVLAN))
	}

	wantAllowed := slices.Clone(want.AllowedVLANs)
	slices.Sort(wantAllowed)

	switch {
	case want.AllowAll && actual.AllowAll:
		results = append(results, passed(want.Port, "trunk_allowed_vlans", "all", "all"))
	case want.AllowAll:
		results = append(results, failed(want.Port, "trunk_allowed_vlans", "all", actual.AllowedVLANs))
	case len(wantAllowed) == 0:
		results = append(results, skipped(want.Port, "trunk_allowed_vlans"))
	case actual.AllowAll:
		// The trunk carries everything, including the designed set.
		results = append(results, passed(want.Port, "trunk_allowed_vlans", wantAllowed, "all"))
		results = append(results, models.CheckResult{
			Object:  want.Port,
			Field:   "trunk_allowed_vlans",
			Status:  models.StatusInfo,
			Message: "trunk port allows 'all' vlans",
		})
	default:
		results = append(results, CompareSets(want.Port, "trunk_allowed_vlans", wantAllowed, actual.AllowedVLANs)...)
	}

	return results
}
