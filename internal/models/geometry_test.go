package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropwatch/internal/geo"
)

func TestPlotToGeoJSON(t *testing.T) {
	plot := []geo.Point{
		{Lat: 16.710, Lng: 74.193},
		{Lat: 16.710, Lng: 74.195},
		{Lat: 16.712, Lng: 74.195},
		{Lat: 16.712, Lng: 74.193},
	}

	g, err := PlotToGeoJSON(plot)
	require.NoError(t, err)

	assert.Equal(t, "Polygon", g.Type)
	require.Len(t, g.Coordinates, 1, "single outer ring")
	require.Len(t, g.Coordinates[0], 5, "ring is closed")

	// GeoJSON order is lng, lat.
	assert.InDelta(t, 74.193, g.Coordinates[0][0][0], 1e-9)
	assert.InDelta(t, 16.710, g.Coordinates[0][0][1], 1e-9)
	assert.Equal(t, g.Coordinates[0][0], g.Coordinates[0][4], "first and last ring vertex match")
}

func TestPlotToGeoJSON_TooFewVertices(t *testing.T) {
	_, err := PlotToGeoJSON([]geo.Point{{Lat: 1, Lng: 2}})
	assert.Error(t, err)
}

func TestGeoJSONRoundTrip(t *testing.T) {
	plot := []geo.Point{
		{Lat: 16.705, Lng: 74.191},
		{Lat: 16.706, Lng: 74.197},
		{Lat: 16.711, Lng: 74.198},
		{Lat: 16.713, Lng: 74.193},
	}

	g, err := PlotToGeoJSON(plot)
	require.NoError(t, err)

	back, err := GeoJSONToPlot(g)
	require.NoError(t, err)
	require.Len(t, back, len(plot))
	for i := range plot {
		assert.InDelta(t, plot[i].Lat, back[i].Lat, 1e-9)
		assert.InDelta(t, plot[i].Lng, back[i].Lng, 1e-9)
	}
}
