package osm2net

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings is the YAML representation of parser options, see ParserOptions.
type Settings struct {
	NetworkTypes          []string    `yaml:"network_types"`
	HighwayTypes          []string    `yaml:"highway_types"`
	RailwayTypes          []string    `yaml:"railway_types"`
	WaterwayTypes         []string    `yaml:"waterway_types"`
	ExcludedWays          []int64     `yaml:"excluded_ways"`
	Boundary              [][]float64 `yaml:"boundary"`
	PrepareStops          bool        `yaml:"prepare_stops"`
	StopAggregationMeters float64     `yaml:"stop_aggregation_meters"`
	Verbose               bool        `yaml:"verbose"`
	StartVertexID         int         `yaml:"start_vertex_id"`
	StartEdgeID           int         `yaml:"start_edge_id"`
}

// LoadSettings reads and validates parser settings from a YAML file
func LoadSettings(fname string) (*Settings, error) {
	content, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read file: '%s'", fname)
	}
	settings := &Settings{}
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal settings")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks settings consistency without touching any file
func (settings *Settings) Validate() error {
	for _, networkType := range settings.NetworkTypes {
		if _, ok := linkClassFromString(networkType); !ok {
			return fmt.Errorf("Network type is not supported: '%s'", networkType)
		}
	}
	if len(settings.Boundary) != 0 && len(settings.Boundary) < 3 {
		return fmt.Errorf("Boundary needs at least 3 points, got %d", len(settings.Boundary))
	}
	for i, point := range settings.Boundary {
		if len(point) != 2 {
			return fmt.Errorf("Boundary point %d is not a [lon, lat] pair", i)
		}
	}
	if settings.StopAggregationMeters < 0 {
		return fmt.Errorf("Stop aggregation distance should not be negative, got %f", settings.StopAggregationMeters)
	}
	return nil
}

// BoundaryPolygon returns the boundary as a closed polygon (nil when the
// settings carry no boundary)
func (settings *Settings) BoundaryPolygon() orb.Polygon {
	if len(settings.Boundary) == 0 {
		return nil
	}
	ring := make(orb.Ring, 0, len(settings.Boundary)+1)
	for _, point := range settings.Boundary {
		ring = append(ring, orb.Point{point[0], point[1]})
	}
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

// ParserOptions turns the settings into parser functional options
func (settings *Settings) ParserOptions() []func(*Parser) {
	options := make([]func(*Parser), 0)
	if len(settings.NetworkTypes) != 0 {
		options = append(options, WithNetworkTypes(settings.NetworkTypes))
	}
	if len(settings.HighwayTypes) != 0 {
		options = append(options, WithHighwayTypes(settings.HighwayTypes))
	}
	if len(settings.RailwayTypes) != 0 {
		options = append(options, WithRailwayTypes(settings.RailwayTypes))
	}
	if len(settings.WaterwayTypes) != 0 {
		options = append(options, WithWaterwayTypes(settings.WaterwayTypes))
	}
	if len(settings.ExcludedWays) != 0 {
		options = append(options, WithExcludedWays(settings.ExcludedWays))
	}
	if boundary := settings.BoundaryPolygon(); boundary != nil {
		options = append(options, WithBoundary(boundary))
	}
	if settings.PrepareStops {
		options = append(options, WithPrepareStops(true))
	}
	if settings.StopAggregationMeters > 0 {
		options = append(options, WithStopAggregationMeters(settings.StopAggregationMeters))
	}
	if settings.Verbose {
		options = append(options, WithVerbose(true))
	}
	if settings.StartVertexID != 0 {
		options = append(options, WithStartVertexID(settings.StartVertexID))
	}
	if settings.StartEdgeID != 0 {
		options = append(options, WithStartEdgeID(settings.StartEdgeID))
	}
	return options
}
