package check

import (
	"github.com/carverauto/netaudit/pkg/models"
)

// Cabling verifies each designed link end against the observed neighbor
// table. Links are undirected: the same cable declared on either device
// verifies on both, since each end observes the other as its peer.
// Neighbor system names go through hostnameMatch, so a vendor-formatted
// LLDP name still matches the designed device name.
func Cabling(design *models.DeviceDesign, state *models.DeviceState) []models.CheckResult {
	if len(design.Cabling) == 0 {
		return nil
	}

	if !state.Cabling.Known {
		return categoryUnknown("cabling", "device reported no neighbor data")
	}

	var results []models.CheckResult

	for _, want := range design.Cabling {
		nei := state.Cabling.Neighbor(want.Port)
		if nei == nil {
			results = append(results, failMissing(want.Port, "no neighbor observed"))
			continue
		}

		deviceOK := hostnameMatch(want.PeerDevice, nei.PeerName)
		portOK := portMatch(want.PeerPort, nei.PeerPort)

		if deviceOK && portOK {
			results = append(results, passed(want.Port, "link",
				want.PeerDevice+":"+want.PeerPort, nei.PeerName+":"+nei.PeerPort))
			continue
		}

		if !deviceOK {
			results = append(results, failed(want.Port, "peer_device", want.PeerDevice, nei.PeerName))
		}

		if !portOK {
			results = append(results, failed(want.Port, "peer_port", want.PeerPort, nei.PeerPort))
		}
	}

	return results
}
