package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netaudit/pkg/models"
)

func ipaddrsFixture() (*models.DeviceDesign, *models.DeviceState) {
	design := &models.DeviceDesign{
		Name: "gw01",
		IPAddrs: []models.IPInterfaceDesign{
			{Name: "Vlan10", CIDR: "10.0.10.1/24"},
			{Name: "Vlan20", CIDR: "10.0.20.1/24"},
			{Name: "wan1"},
			{Name: "wan2", CIDR: "198.51.100.2/30"},
		},
	}

	state := &models.DeviceState{
		Name:   "gw01",
		Family: models.FamilyAppliance,
		IPInterfaces: models.IPInterfaceSet{
			Known: true,
			Items: []models.IPInterfaceState{
				{Name: "Vlan10", CIDR: "10.0.10.1/24"},
				{Name: "Vlan30", CIDR: "10.0.30.1/24"},
				{Name: "wan1", CIDR: "203.0.113.9/29"},
				{Name: "wan2", CIDR: ""},
			},
		},
	}

	return design, state
}

func TestIPAddrs(t *testing.T) {
	design, state := ipaddrsFixture()

	results := IPAddrs(design, state)
	require.Len(t, results, 5)

	vlan10 := forObject(results, "Vlan10")
	require.Len(t, vlan10, 1)
	assert.Equal(t, models.StatusPass, vlan10[0].Status)
	assert.Equal(t, "if_ipaddr", vlan10[0].Field)

	// Designed but not reported.
	vlan20 := forObject(results, "Vlan20")
	require.Len(t, vlan20, 1)
	assert.Equal(t, models.StatusFail, vlan20[0].Status)
	assert.Equal(t, "exists", vlan20[0].Field)

	// Designed without an address expectation.
	wan1 := forObject(results, "wan1")
	require.Len(t, wan1, 1)
	assert.Equal(t, models.StatusSkip, wan1[0].Status)

	// Address expected but the uplink runs DHCP.
	wan2 := forObject(results, "wan2")
	require.Len(t, wan2, 1)
	assert.Equal(t, models.StatusInfo, wan2[0].Status)

	// Reported but not designed.
	vlan30 := forObject(results, "Vlan30")
	require.Len(t, vlan30, 1)
	assert.Equal(t, models.StatusFail, vlan30[0].Status)
	assert.Equal(t, "extra", vlan30[0].Message)
	assert.Equal(t, "10.0.30.1/24", vlan30[0].Actual)
}

func TestIPAddrsMismatch(t *testing.T) {
	design, state := ipaddrsFixture()
	state.IPInterfaces.Items[0].CIDR = "10.0.10.254/24"

	vlan10 := forObject(IPAddrs(design, state), "Vlan10")
	require.Len(t, vlan10, 1)
	assert.Equal(t, models.StatusFail, vlan10[0].Status)
	assert.Equal(t, "10.0.10.1/24", vlan10[0].Expected)
	assert.Equal(t, "10.0.10.254/24", vlan10[0].Actual)
}

func TestIPAddrsCategoryUnknown(t *testing.T) {
	design, state := ipaddrsFixture()
	state.IPInterfaces = models.IPInterfaceSet{}

	results := IPAddrs(design, state)
	require.Len(t, results, 1)
	assert.Equal(t, models.StatusInfo, results[0].Status)
	assert.Equal(t, "ipaddrs", results[0].Field)
}
