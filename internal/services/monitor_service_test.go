package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwatch/internal/models"
	"cropwatch/internal/repository"
)

type monitorFixture struct {
	farms   *repository.FarmRepository
	ndvi    *repository.NDVIRepository
	alerts  *repository.AlertRepository
	monitor *MonitorService
}

func newMonitorFixture() *monitorFixture {
	farms := repository.NewFarmRepository()
	ndvi := repository.NewNDVIRepository()
	alerts := repository.NewAlertRepository()
	return &monitorFixture{
		farms:   farms,
		ndvi:    ndvi,
		alerts:  alerts,
		monitor: NewMonitorService(farms, ndvi, alerts),
	}
}

func testMonitorFarm(id int) *models.Farm {
	return &models.Farm{ID: id, FarmerName: "rajaram mane", BaselineNDVI: 0.75}
}

func TestMonitorFarm_HealthyFarm(t *testing.T) {
	f := newMonitorFixture()
	farm := testMonitorFarm(1)

	// ~6.7% drop is well inside healthy variation.
	alert, err := f.monitor.MonitorFarm(farm, constantSeries(1, 30, 0.70))

	require.NoError(t, err)
	assert.Nil(t, alert)
	assert.Empty(t, f.alerts.GetActive())
}

func TestMonitorFarm_SeverityTiers(t *testing.T) {
	tests := []struct {
		name        string
		currentNDVI float64
		drop        float64
		severity    models.AlertSeverity
	}{
		{"moderate", 0.50, 33.33, models.SeverityModerate},
		{"critical", 0.30, 60.00, models.SeverityCritical},
		{"severe", 0.15, 80.00, models.SeveritySevere},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newMonitorFixture()
			farm := testMonitorFarm(1)

			alert, err := f.monitor.MonitorFarm(farm, constantSeries(1, 30, tc.currentNDVI))

			require.NoError(t, err)
			require.NotNil(t, alert)
			assert.Equal(t, tc.severity, alert.Severity)
			assert.Equal(t, models.AlertActive, alert.Status)
			assert.InDelta(t, tc.drop, alert.DropPercentage, 0.01)
			assert.Equal(t, tc.currentNDVI, alert.CurrentNDVI)
			assert.Contains(t, alert.Message, "rajaram mane")
		})
	}
}

func TestMonitorFarm_IdempotentWhileAlertActive(t *testing.T) {
	f := newMonitorFixture()
	farm := testMonitorFarm(1)
	series := constantSeries(1, 30, 0.30)

	first, err := f.monitor.MonitorFarm(farm, series)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := f.monitor.MonitorFarm(farm, series)
	require.NoError(t, err)
	assert.Nil(t, second, "an active alert suppresses re-alerting")
	assert.Len(t, f.alerts.GetActive(), 1)
}

func TestMonitorFarm_AlertsAgainAfterResolution(t *testing.T) {
	f := newMonitorFixture()
	farm := testMonitorFarm(1)
	series := constantSeries(1, 30, 0.30)

	first, err := f.monitor.MonitorFarm(farm, series)
	require.NoError(t, err)
	require.NotNil(t, first)

	_, err = f.alerts.Resolve(first.ID)
	require.NoError(t, err)

	second, err := f.monitor.MonitorFarm(farm, series)
	require.NoError(t, err)
	require.NotNil(t, second, "resolution re-arms the farm")
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMonitorFarm_UnusableInput(t *testing.T) {
	f := newMonitorFixture()

	_, err := f.monitor.MonitorFarm(testMonitorFarm(1), nil)
	assert.Error(t, err, "empty series")

	noBaseline := &models.Farm{ID: 2, FarmerName: "sunita patil"}
	_, err = f.monitor.MonitorFarm(noBaseline, constantSeries(2, 30, 0.30))
	assert.Error(t, err, "zero baseline")
}

func TestMonitorAllFarms_CollectsPerFarmErrors(t *testing.T) {
	f := newMonitorFixture()
	f.farms.Seed([]models.Farm{
		{ID: 1, FarmerName: "rajaram mane", BaselineNDVI: 0.75},
		{ID: 2, FarmerName: "sunita patil", BaselineNDVI: 0.72},
	})
	// Only farm 1 has data; farm 2 must fail without aborting the sweep.
	f.ndvi.ReplaceSeries(constantSeries(1, 30, 0.30))

	result := f.monitor.MonitorAllFarms()

	assert.Equal(t, 2, result.FarmsChecked)
	assert.Equal(t, 1, result.AlertsGenerated)
	require.Len(t, result.NewAlerts, 1)
	assert.Equal(t, 1, result.NewAlerts[0].FarmID)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "farm 2")
}

func TestMonitorAllFarms_SecondSweepIsQuiet(t *testing.T) {
	f := newMonitorFixture()
	f.farms.Seed([]models.Farm{{ID: 1, FarmerName: "rajaram mane", BaselineNDVI: 0.75}})
	f.ndvi.ReplaceSeries(constantSeries(1, 30, 0.30))

	first := f.monitor.MonitorAllFarms()
	second := f.monitor.MonitorAllFarms()

	assert.Equal(t, 1, first.AlertsGenerated)
	assert.Zero(t, second.AlertsGenerated)
	assert.Len(t, f.alerts.GetActive(), 1)
}

func TestClassifySeverity(t *testing.T) {
	_, alerting := classifySeverity(29.99)
	assert.False(t, alerting)

	severity, alerting := classifySeverity(30)
	assert.True(t, alerting)
	assert.Equal(t, models.SeverityModerate, severity)

	severity, _ = classifySeverity(50)
	assert.Equal(t, models.SeverityCritical, severity)

	severity, _ = classifySeverity(75)
	assert.Equal(t, models.SeveritySevere, severity)
}

func TestEstimateCause(t *testing.T) {
	baseline := 0.75

	// Sudden collapse over a few days reads as flood damage.
	flood := constantSeries(1, 30, baseline)
	for i := 27; i < 30; i++ {
		flood[i].NDVI = 0.30
	}
	assert.Equal(t, models.DisasterFlood, estimateCause(baseline, flood))

	// A long sustained slide reads as drought stress.
	drought := constantSeries(1, 30, baseline)
	for i := 10; i < 30; i++ {
		drought[i].NDVI = 0.50
	}
	assert.Equal(t, models.DisasterDrought, estimateCause(baseline, drought))

	// A shallow recent decline defaults to pest pressure.
	pest := constantSeries(1, 30, baseline)
	for i := 25; i < 30; i++ {
		pest[i].NDVI = 0.50
	}
	assert.Equal(t, models.DisasterPest, estimateCause(baseline, pest))
}
