package check

import (
	"github.com/carverauto/netaudit/pkg/models"
)

// IPAddrs verifies each designed layer-3 interface address and flags
// reported addresses absent from the design. An interface running DHCP
// reports an empty CIDR, which downgrades the comparison to INFO.
func IPAddrs(design *models.DeviceDesign, state *models.DeviceState) []models.CheckResult {
	if len(design.IPAddrs) == 0 {
		return nil
	}

	if !state.IPInterfaces.Known {
		return categoryUnknown("ipaddrs", "device reported no ip interfaces")
	}

	var results []models.CheckResult

	designed := make(map[string]bool, len(design.IPAddrs))

	for _, want := range design.IPAddrs {
		designed[want.Name] = true

		actual := state.IPInterfaces.Interface(want.Name)
		if actual == nil {
			results = append(results, failMissing(want.Name, "ip interface not reported"))
			continue
		}

		results = append(results, compareStringField(want.Name, "if_ipaddr", want.CIDR, actual.CIDR))
	}

	for _, got := range state.IPInterfaces.Items {
		if designed[got.Name] {
			continue
		}

		results = append(results, models.CheckResult{
			Object:  got.Name,
			Field:   "exists",
			Status:  models.StatusFail,
			Actual:  got.CIDR,
			Message: "extra",
		})
	}

	return results
}
