package reconciler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/netaudit/pkg/check"
	"github.com/carverauto/netaudit/pkg/logger"
	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/models"
	"github.com/carverauto/netaudit/pkg/state"
)

func testEngine(t *testing.T, cfg Config, provider StateProvider) *Engine {
	t.Helper()

	registry, err := check.Default()
	require.NoError(t, err)

	eng, err := NewEngine(cfg, provider, registry, logger.NewTestLogger())
	require.NoError(t, err)

	eng.newRunID = func() string { return "run-fixed" }
	eng.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	return eng
}

func switchDesign(name string) models.DeviceDesign {
	return models.DeviceDesign{Name: name, ProductModel: "MS220-8P"}
}

func switchState(name string) *models.DeviceState {
	return &models.DeviceState{
		Name:         name,
		Serial:       "Q2XX-0000-" + name,
		ProductModel: "MS220-8P",
		Family:       models.FamilySwitch,
		Raw:          map[string]any{"model": "MS220-8P", "name": name},
	}
}

func collectFromFixtures(states map[string]*models.DeviceState, errs map[string]error) func(context.Context, *models.DeviceDesign) (*models.DeviceState, error) {
	return func(_ context.Context, design *models.DeviceDesign) (*models.DeviceState, error) {
		if err, ok := errs[design.Name]; ok {
			return nil, err
		}

		return states[design.Name], nil
	}
}

func TestRunReportsAllDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		DoAndReturn(collectFromFixtures(map[string]*models.DeviceState{
			"sw01": switchState("sw01"),
			"sw02": switchState("sw02"),
			"sw03": switchState("sw03"),
		}, nil)).Times(3)

	eng := testEngine(t, Config{MaxConcurrency: 2}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{
		switchDesign("sw03"), switchDesign("sw01"), switchDesign("sw02"),
	})
	require.NoError(t, err)

	assert.Equal(t, "run-fixed", report.RunID)
	assert.Equal(t, models.StatusPass, report.Status)
	assert.Empty(t, report.Incomplete)

	require.Len(t, report.Devices, 3)
	assert.Equal(t, "sw01", report.Devices[0].Device)
	assert.Equal(t, "sw02", report.Devices[1].Device)
	assert.Equal(t, "sw03", report.Devices[2].Device)

	for _, d := range report.Devices {
		assert.Equal(t, models.StatusPass, d.Status)
		assert.Equal(t, models.FamilySwitch, d.Family)
	}
}

func TestRunDeviceFailureDoesNotStopOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wrongModel := switchState("sw02")
	wrongModel.ProductModel = "MS220-48"

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		DoAndReturn(collectFromFixtures(map[string]*models.DeviceState{
			"sw01": switchState("sw01"),
			"sw02": wrongModel,
		}, nil)).Times(2)

	eng := testEngine(t, Config{MaxConcurrency: 2}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{
		switchDesign("sw01"), switchDesign("sw02"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusFail, report.Status)
	require.Len(t, report.Devices, 2)
	assert.Equal(t, models.StatusPass, report.Devices[0].Status)
	assert.Equal(t, models.StatusFail, report.Devices[1].Status)
	assert.Equal(t, 1, report.Devices[1].FailCount())
}

func TestRunTransientExhaustionMarksIncomplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		DoAndReturn(collectFromFixtures(
			map[string]*models.DeviceState{
				"sw01": switchState("sw01"),
				"sw03": switchState("sw03"),
			},
			map[string]error{
				"sw02": &meraki.TransientError{StatusCode: 502},
			},
		)).Times(3)

	eng := testEngine(t, Config{MaxConcurrency: 1}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{
		switchDesign("sw01"), switchDesign("sw02"), switchDesign("sw03"),
	})
	require.NoError(t, err)

	// The unreachable device never becomes a FAIL.
	assert.Equal(t, models.StatusPass, report.Status)
	assert.Len(t, report.Devices, 2)

	require.Len(t, report.Incomplete, 1)
	assert.Equal(t, "sw02", report.Incomplete[0].Device)
	assert.Contains(t, report.Incomplete[0].Reason, "status 502")
}

func TestRunNormalizationFailureMarksIncomplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: vlan 10: bad subnet", state.ErrNormalization))

	eng := testEngine(t, Config{}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{switchDesign("sw01")})
	require.NoError(t, err)

	assert.Empty(t, report.Devices)
	require.Len(t, report.Incomplete, 1)
	assert.Contains(t, report.Incomplete[0].Reason, "bad subnet")
}

func TestRunAuthAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("device lookup: %w", meraki.ErrAuth))

	eng := testEngine(t, Config{}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{switchDesign("sw01")})
	require.Error(t, err)
	assert.ErrorIs(t, err, meraki.ErrAuth)
	assert.Nil(t, report)
}

func TestRunConfigFaultAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: unsupported product model \"MV12\"", models.ErrConfig))

	eng := testEngine(t, Config{}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{
		{Name: "cam01", ProductModel: "MV12"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConfig)
	assert.Nil(t, report)
}

func TestRunDeviceNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("device %q: %w", "sw01", meraki.ErrNotFound))

	eng := testEngine(t, Config{}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{switchDesign("sw01")})
	require.NoError(t, err)

	assert.Empty(t, report.Incomplete)
	require.Len(t, report.Devices, 1)

	device := report.Devices[0]
	assert.Equal(t, models.StatusFail, device.Status)
	assert.Equal(t, models.FamilySwitch, device.Family)

	// One existence FAIL plus one SKIP per remaining check.
	require.Len(t, device.Results, 6)
	assert.Equal(t, 1, device.FailCount())

	var exists *models.CheckResult

	skips := 0

	for i := range device.Results {
		r := &device.Results[i]
		if r.Status == models.StatusFail {
			exists = r
			continue
		}

		assert.Equal(t, models.StatusSkip, r.Status)
		skips++
	}

	require.NotNil(t, exists)
	assert.Equal(t, models.CheckDevice, exists.Check)
	assert.Equal(t, "exists", exists.Field)
	assert.Equal(t, 5, skips)
}

func TestRunCanceledBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := NewMockStateProvider(ctrl)

	eng := testEngine(t, Config{MaxConcurrency: 2}, provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := eng.Run(ctx, []models.DeviceDesign{
		switchDesign("sw01"), switchDesign("sw02"), switchDesign("sw03"),
	})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)

	assert.Empty(t, report.Devices)
	require.Len(t, report.Incomplete, 3)

	for _, inc := range report.Incomplete {
		assert.Equal(t, "canceled", inc.Reason)
	}
}

func TestRunCanceledMidRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(callCtx context.Context, _ *models.DeviceDesign) (*models.DeviceState, error) {
			cancel()
			return nil, callCtx.Err()
		})

	eng := testEngine(t, Config{MaxConcurrency: 1}, provider)

	report, err := eng.Run(ctx, []models.DeviceDesign{
		switchDesign("sw01"), switchDesign("sw02"),
	})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)

	assert.Empty(t, report.Devices)
	assert.Len(t, report.Incomplete, 2)
}

func TestRunBoundsConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex

	inFlight, maxInFlight := 0, 0

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, design *models.DeviceDesign) (*models.DeviceState, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()

			return switchState(design.Name), nil
		}).Times(6)

	eng := testEngine(t, Config{MaxConcurrency: 2}, provider)

	designs := make([]models.DeviceDesign, 0, 6)
	for i := 1; i <= 6; i++ {
		designs = append(designs, switchDesign(fmt.Sprintf("sw%02d", i)))
	}

	_, err := eng.Run(context.Background(), designs)
	require.NoError(t, err)

	assert.LessOrEqual(t, maxInFlight, 2)
}

func TestRunInfoAndSkipNeverFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	design := switchDesign("sw01")
	design.Interfaces = []models.InterfaceDesign{{Name: "1", Used: true}}

	// Interface status unknown downgrades the whole check to INFO.
	st := switchState("sw01")
	st.Interfaces = models.InterfaceSet{Known: false}

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).Return(st, nil)

	eng := testEngine(t, Config{}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{design})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPass, report.Status)

	counts := report.Counts()
	assert.NotZero(t, counts[models.StatusInfo])
	assert.NotZero(t, counts[models.StatusSkip])
	assert.Zero(t, counts[models.StatusFail])
}

func TestRunResultsAreOrdered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	design := switchDesign("sw01")
	design.Cabling = []models.CablingDesign{{Port: "8", PeerDevice: "sw02", PeerPort: "1"}}
	design.VLANs = []models.VLANDesign{{ID: 10, Name: "users"}}

	st := switchState("sw01")
	st.Cabling = models.CablingSet{
		Known: true,
		Items: []models.CablingState{{Port: "8", PeerName: "sw02", PeerPort: "1"}},
	}
	st.VLANs = models.VLANSet{
		Known: true,
		Items: []models.VLANState{{ID: 10, Name: "users", Interfaces: []string{}}},
	}

	provider := NewMockStateProvider(ctrl)
	provider.EXPECT().Collect(gomock.Any(), gomock.Any()).Return(st, nil)

	eng := testEngine(t, Config{}, provider)

	report, err := eng.Run(context.Background(), []models.DeviceDesign{design})
	require.NoError(t, err)
	require.Len(t, report.Devices, 1)

	var keys []string
	for _, r := range report.Devices[0].Results {
		assert.Equal(t, "sw01", r.Device)
		keys = append(keys, r.Category+"/"+r.Check+"/"+r.Field)
	}

	assert.Equal(t, []string{
		"topology/cabling/link",
		"topology/device/device_info",
		"topology/device/name",
		"topology/device/product_model",
		"topology/device/serial",
		"vlans/vlans/exclusive_list",
	}, keys)
}

func TestRunSerializationIsStable(t *testing.T) {
	run := func() []byte {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		wrongModel := switchState("sw02")
		wrongModel.ProductModel = "MS220-48"

		provider := NewMockStateProvider(ctrl)
		provider.EXPECT().Collect(gomock.Any(), gomock.Any()).
			DoAndReturn(collectFromFixtures(
				map[string]*models.DeviceState{
					"sw01": switchState("sw01"),
					"sw02": wrongModel,
				},
				map[string]error{
					"sw03": &meraki.TransientError{StatusCode: 503},
				},
			)).Times(3)

		eng := testEngine(t, Config{MaxConcurrency: 3}, provider)

		report, err := eng.Run(context.Background(), []models.DeviceDesign{
			switchDesign("sw02"), switchDesign("sw03"), switchDesign("sw01"),
		})
		require.NoError(t, err)

		data, err := json.Marshal(report)
		require.NoError(t, err)

		return data
	}

	assert.Equal(t, string(run()), string(run()))
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultMaxConcurrency, cfg.MaxConcurrency)

	cfg = Config{MaxConcurrency: 3}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.MaxConcurrency)

	cfg = Config{MaxConcurrency: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrConfig)
}
