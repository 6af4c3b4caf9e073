package geo

import "math"

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is the axis-aligned bounding box of a polygon.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Approximate meters per degree at the working latitudes (~16-17°N).
const (
	metersPerDegreeLat = 111000.0
	metersPerDegreeLng = 106000.0
)

// PointInPolygon reports whether p lies inside the polygon using the
// ray-casting parity test. The polygon is an ordered vertex list with at
// least 3 vertices; the first vertex does not need to be repeated at the
// end. Self-intersecting polygons give undefined results.
func PointInPolygon(p Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		vi := polygon[i]
		vj := polygon[j]

		straddles := (vi.Lng > p.Lng) != (vj.Lng > p.Lng)
		if straddles && p.Lat < (vj.Lat-vi.Lat)*(p.Lng-vi.Lng)/(vj.Lng-vi.Lng)+vi.Lat {
			inside = !inside
		}
	}

	return inside
}

// PolygonBounds returns the bounding box of the polygon. Only used to bound
// the placement sampler, so an empty polygon just returns the zero box.
func PolygonBounds(polygon []Point) Bounds {
	if len(polygon) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinLat: polygon[0].Lat,
		MaxLat: polygon[0].Lat,
		MinLng: polygon[0].Lng,
		MaxLng: polygon[0].Lng,
	}
	for _, v := range polygon[1:] {
		b.MinLat = math.Min(b.MinLat, v.Lat)
		b.MaxLat = math.Max(b.MaxLat, v.Lat)
		b.MinLng = math.Min(b.MinLng, v.Lng)
		b.MaxLng = math.Max(b.MaxLng, v.Lng)
	}
	return b
}

// Distance returns the planar degree-space distance between two points.
// Good enough at plot scale; the placement epsilon is defined in the same
// degree terms.
func Distance(a, b Point) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lng-b.Lng)
}

// PlotQuadrilateral builds an irregular four-vertex plot polygon around a
// center point, sized to the given area in hectares. skew (0.7-1.3) is
// applied to alternating vertices so plots do not come out as axis-aligned
// rectangles while keeping roughly the target area.
func PlotQuadrilateral(center Point, areaHectares, skew float64) []Point {
	sideMeters := math.Sqrt(areaHectares * 10000)
	latOffset := sideMeters / 2 / metersPerDegreeLat
	lngOffset := sideMeters / 2 / metersPerDegreeLng

	return []Point{
		{Lat: center.Lat - latOffset, Lng: center.Lng - lngOffset*skew},
		{Lat: center.Lat - latOffset*skew, Lng: center.Lng + lngOffset},
		{Lat: center.Lat + latOffset, Lng: center.Lng + lngOffset*skew},
		{Lat: center.Lat + latOffset*skew, Lng: center.Lng - lngOffset},
	}
}
