package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/netaudit/pkg/models"
)

func vlansFixture() (*models.DeviceDesign, *models.DeviceState) {
	design := &models.DeviceDesign{
		Name: "sw01",
		VLANs: []models.VLANDesign{
			{ID: 10, Name: "users", Interfaces: []string{"2", "1", "Vlan10"}},
			{ID: 20, Name: "voice"},
			{ID: 30, Name: "cameras", Interfaces: []string{"3"}},
		},
	}

	state := &models.DeviceState{
		Name:   "sw01",
		Family: models.FamilySwitch,
		VLANs: models.VLANSet{
			Known: true,
			Items: []models.VLANState{
				{ID: 10, Name: "users", Interfaces: []string{"1", "2"}},
				{ID: 20, Name: "voice", Interfaces: []string{}},
				{ID: 40, Interfaces: []string{"5"}},
			},
		},
	}

	return design, state
}

func TestVLANsExclusiveSetAndMembership(t *testing.T) {
	design, state := vlansFixture()

	results := VLANs(design, state)
	require.Len(t, results, 4)

	set := forField(results, "exclusive_list")
	require.Len(t, set, 3)
	assert.Equal(t, models.StatusFail, set[0].Status)
	assert.Equal(t, 30, set[0].Expected)
	assert.Equal(t, models.StatusFail, set[1].Status)
	assert.Equal(t, 40, set[1].Actual)
	assert.Equal(t, models.StatusPass, set[2].Status)
	assert.Equal(t, []int{10, 20}, set[2].Expected)

	// SVI names in the design are not switchport members.
	members := forObject(results, "10")
	require.Len(t, members, 1)
	assert.Equal(t, models.StatusPass, members[0].Status)
	assert.Equal(t, []string{"1", "2"}, members[0].Expected)

	// VLAN 30 is missing; the set FAIL already covers it, so no
	// membership result is added.
	assert.Empty(t, forObject(results, "30"))
}

func TestVLANsMembershipMismatch(t *testing.T) {
	design, state := vlansFixture()
	state.VLANs.Items[0].Interfaces = []string{"1", "7"}

	members := forObject(VLANs(design, state), "10")
	require.Len(t, members, 1)
	assert.Equal(t, models.StatusFail, members[0].Status)
	assert.Equal(t, []string{"1", "2"}, members[0].Expected)
	assert.Equal(t, []string{"1", "7"}, members[0].Actual)
}

// Wireless devices report VLAN usage without port visibility; designed
// membership downgrades to INFO instead of failing.
func TestVLANsMembershipNotObservable(t *testing.T) {
	design := &models.DeviceDesign{
		Name: "ap01",
		VLANs: []models.VLANDesign{
			{ID: 100, Name: "corp", Interfaces: []string{"wired0"}},
			{ID: 200, Name: "guest"},
		},
	}
	state := &models.DeviceState{
		Name:   "ap01",
		Family: models.FamilyWireless,
		VLANs: models.VLANSet{
			Known: true,
			Items: []models.VLANState{
				{ID: 100, Name: "corp"},
				{ID: 200, Name: "guest"},
			},
		},
	}

	results := VLANs(design, state)

	set := forField(results, "exclusive_list")
	require.Len(t, set, 1)
	assert.Equal(t, models.StatusPass, set[0].Status)

	members := forObject(results, "100")
	require.Len(t, members, 1)
	assert.Equal(t, models.StatusInfo, members[0].Status)
	assert.Equal(t, []string{"wired0"}, members[0].Expected)

	assert.Empty(t, forObject(results, "200"))
}

func TestVLANsCategoryUnknown(t *testing.T) {
	design, state := vlansFixture()
	state.VLANs = models.VLANSet{}

	results := VLANs(design, state)
	require.Len(t, results, 1)
	assert.Equal(t, models.StatusInfo, results[0].Status)
	assert.Equal(t, "vlans", results[0].Field)
}
