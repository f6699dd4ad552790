/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package state

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/netaudit/pkg/logger"
	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/models"
)

func TestFamilyForModel(t *testing.T) {
	tests := []struct {
		model   string
		want    string
		wantErr bool
	}{
		{model: "MS220-8P", want: models.FamilySwitch},
		{model: "MX68", want: models.FamilyAppliance},
		{model: "MR36", want: models.FamilyWireless},
		{model: "MV12", wantErr: true},
		{model: "", wantErr: true},
	}

	for _, tt := range tests {
		family, err := FamilyForModel(tt.model)

		if tt.wantErr {
			require.Error(t, err, "model %q", tt.model)
			assert.ErrorIs(t, err, models.ErrConfig)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, family)
	}
}

func TestCollectSwitch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockDashboardAPI(ctrl)
	device := &meraki.Device{Name: "sw01", Serial: "Q2XX-1111-AAAA", NetworkID: "N_1", Model: "MS220-8P"}

	api.EXPECT().DeviceByName(gomock.Any(), "sw01").Return(device, nil)
	api.EXPECT().SwitchPorts(gomock.Any(), "Q2XX-1111-AAAA").Return([]meraki.SwitchPort{
		{PortID: "1", Enabled: true, Type: "access", VLAN: 10},
	}, nil)
	api.EXPECT().SwitchPortStatuses(gomock.Any(), "Q2XX-1111-AAAA").Return([]meraki.SwitchPortStatus{
		{PortID: "1", Enabled: true, Status: "Connected", Speed: "1 Gbps"},
	}, nil)

	collector := NewCollector(api, logger.NewTestLogger())

	st, err := collector.Collect(context.Background(), switchDesign())
	require.NoError(t, err)

	assert.Equal(t, models.FamilySwitch, st.Family)
	assert.Equal(t, "Q2XX-1111-AAAA", st.Serial)
	assert.True(t, st.Interfaces.Known)
	assert.True(t, st.Switchports.Known)
	assert.NotNil(t, st.Raw)
	assert.Equal(t, "MS220-8P", st.Raw["model"])
}

func TestCollectApplianceMissingCategoryGoesUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockDashboardAPI(ctrl)
	device := &meraki.Device{Name: "gw01", Serial: "Q2YY-2222-BBBB", NetworkID: "N_1", Model: "MX68"}

	api.EXPECT().DeviceByName(gomock.Any(), "gw01").Return(device, nil)
	api.EXPECT().AppliancePorts(gomock.Any(), "N_1").Return([]meraki.AppliancePort{
		{Number: 3, Enabled: true, Type: "access", VLAN: 10},
	}, nil)
	api.EXPECT().ApplianceVLANs(gomock.Any(), "N_1").
		Return(nil, fmt.Errorf("%w: no vlans here", meraki.ErrNotFound))
	api.EXPECT().DeviceLLDPCDP(gomock.Any(), "Q2YY-2222-BBBB").Return(&meraki.LLDPCDP{}, nil)

	collector := NewCollector(api, logger.NewTestLogger())

	st, err := collector.Collect(context.Background(), applianceDesign())
	require.NoError(t, err)

	assert.Equal(t, models.FamilyAppliance, st.Family)
	assert.True(t, st.Interfaces.Known)
	assert.False(t, st.IPInterfaces.Known, "a 404 on one route leaves just that category unknown")
}

func TestCollectWireless(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockDashboardAPI(ctrl)
	device := &meraki.Device{Name: "ap01", Serial: "Q2ZZ-3333-CCCC", NetworkID: "N_1", Model: "MR36"}

	api.EXPECT().DeviceByName(gomock.Any(), "ap01").Return(device, nil)
	api.EXPECT().WirelessSSIDs(gomock.Any(), "N_1").Return([]meraki.SSID{
		{Number: 0, Enabled: true, UseVLANTagging: true, DefaultVLANID: 100},
	}, nil)
	api.EXPECT().DeviceManagementInterface(gomock.Any(), "Q2ZZ-3333-CCCC").
		Return(&meraki.ManagementInterface{WAN1: &meraki.WANConfig{VLAN: 99}}, nil)
	api.EXPECT().DeviceLLDPCDP(gomock.Any(), "Q2ZZ-3333-CCCC").Return(&meraki.LLDPCDP{
		Ports: map[string]meraki.LLDPCDPPort{
			wiredUplink: {LLDP: &meraki.LLDPSummary{SystemName: "sw01", PortID: "4"}},
		},
	}, nil)

	collector := NewCollector(api, logger.NewTestLogger())

	st, err := collector.Collect(context.Background(), wirelessDesign())
	require.NoError(t, err)

	assert.Equal(t, models.FamilyWireless, st.Family)
	require.True(t, st.VLANs.Known)
	assert.NotNil(t, st.VLANs.VLAN(99))
	assert.NotNil(t, st.VLANs.VLAN(100))
}

func TestCollectUnknownModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockDashboardAPI(ctrl)
	collector := NewCollector(api, logger.NewTestLogger())

	design := &models.DeviceDesign{Name: "cam01", ProductModel: "MV12"}

	_, err := collector.Collect(context.Background(), design)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConfig)
}

func TestCollectDeviceNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockDashboardAPI(ctrl)
	api.EXPECT().DeviceByName(gomock.Any(), "sw01").
		Return(nil, fmt.Errorf("%w: device %q", meraki.ErrNotFound, "sw01"))

	collector := NewCollector(api, logger.NewTestLogger())

	_, err := collector.Collect(context.Background(), switchDesign())
	require.Error(t, err)
	assert.ErrorIs(t, err, meraki.ErrNotFound)
}

func TestCollectFetchErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transient := &meraki.TransientError{StatusCode: 502, Err: errors.New("bad gateway")}

	api := NewMockDashboardAPI(ctrl)
	device := &meraki.Device{Name: "sw01", Serial: "Q2XX-1111-AAAA", NetworkID: "N_1", Model: "MS220-8P"}

	api.EXPECT().DeviceByName(gomock.Any(), "sw01").Return(device, nil)
	api.EXPECT().SwitchPorts(gomock.Any(), "Q2XX-1111-AAAA").Return(nil, transient)

	collector := NewCollector(api, logger.NewTestLogger())

	_, err := collector.Collect(context.Background(), switchDesign())
	require.Error(t, err)
	assert.True(t, meraki.IsTransient(err))
}
