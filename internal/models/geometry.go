package models

import (
	"encoding/json"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	geoutil "cropwatch/internal/geo"
)

// GeoJSONPolygon is the GeoJSON Polygon shape used on the API surface.
type GeoJSONPolygon struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// PlotToGeoJSON converts an ordered lat/lng vertex list into a GeoJSON
// Polygon (closed ring, lng/lat coordinate order per RFC 7946).
func PlotToGeoJSON(plot []geoutil.Point) (*GeoJSONPolygon, error) {
	if len(plot) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(plot))
	}

	ring := make([]geom.Coord, 0, len(plot)+1)
	for _, v := range plot {
		ring = append(ring, geom.Coord{v.Lng, v.Lat})
	}
	// Close the ring if the caller did not.
	first, last := plot[0], plot[len(plot)-1]
	if first != last {
		ring = append(ring, geom.Coord{first.Lng, first.Lat})
	}

	polygon := geom.NewPolygon(geom.XY)
	if _, err := polygon.SetCoords([][]geom.Coord{ring}); err != nil {
		return nil, fmt.Errorf("failed to build polygon: %w", err)
	}
	polygon.SetSRID(4326)

	raw, err := geojson.Marshal(polygon)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal polygon to GeoJSON: %w", err)
	}

	var out GeoJSONPolygon
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode GeoJSON polygon: %w", err)
	}
	return &out, nil
}

// GeoJSONToPlot converts a GeoJSON Polygon outer ring back into the ordered
// lat/lng vertex list used by the core (the closing vertex is dropped).
func GeoJSONToPlot(g *GeoJSONPolygon) ([]geoutil.Point, error) {
	raw, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}

	var geometry geom.T
	if err := geojson.Unmarshal(raw, &geometry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeoJSON: %w", err)
	}

	polygon, ok := geometry.(*geom.Polygon)
	if !ok {
		return nil, fmt.Errorf("geometry is not a Polygon")
	}
	if polygon.NumLinearRings() == 0 {
		return nil, fmt.Errorf("polygon has no rings")
	}

	coords := polygon.LinearRing(0).Coords()
	if len(coords) > 1 && coords[0].Equal(geom.XY, coords[len(coords)-1]) {
		coords = coords[:len(coords)-1]
	}

	plot := make([]geoutil.Point, 0, len(coords))
	for _, c := range coords {
		plot = append(plot, geoutil.Point{Lat: c.Y(), Lng: c.X()})
	}
	return plot, nil
}
