package osm2net

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// Parser is the facade over the whole read: it owns the configuration, the
// registry and the ways collected by the last ReadOSM call. Calling ReadOSM
// again resets the registry and reuses the parser. A parser must not be
// shared between goroutines while a read is running.
type Parser struct {
	filename              string
	networkTypes          []string
	highwayTypes          []string
	railwayTypes          []string
	waterwayTypes         []string
	excludedWays          []int64
	boundary              orb.Polygon
	prepareStops          bool
	stopAggregationMeters float64
	verbose               bool
	logger                *zap.Logger
	startVertexID         int
	startEdgeID           int

	cfg       *OsmConfiguration
	data      *OSMData
	processor *WayProcessor
	ways      []*WayData
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Network parser parameters:
	filename: '%s'
	network_types: '%s'
	highway_types: '%s'
	railway_types: '%s'
	waterway_types: '%s'
	excluded_ways: %v
	boundary set?: %t
	prepare stops?: %t
	stop_aggregation_meters: %f
	verbose?: %t
	start_vertex_id: %d
	start_edge_id: %d
	`,
		parser.filename,
		strings.Join(parser.networkTypes, ","),
		strings.Join(parser.highwayTypes, ","),
		strings.Join(parser.railwayTypes, ","),
		strings.Join(parser.waterwayTypes, ","),
		parser.excludedWays,
		len(parser.boundary) != 0,
		parser.prepareStops,
		parser.stopAggregationMeters,
		parser.verbose,
		parser.startVertexID,
		parser.startEdgeID,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename:              fileName,
		prepareStops:          false,
		stopAggregationMeters: DEFAULT_STOP_AGGREGATION_METERS,
		startVertexID:         0,
		startEdgeID:           0,
	}
	for _, option := range options {
		option(parser)
	}
	if parser.logger == nil {
		parser.logger = defaultLogger(parser.verbose)
	}
	return parser
}

func defaultLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func WithNetworkTypes(networkTypes []string) func(*Parser) {
	return func(parser *Parser) {
		parser.networkTypes = networkTypes
	}
}

func WithHighwayTypes(highwayTypes []string) func(*Parser) {
	return func(parser *Parser) {
		parser.highwayTypes = highwayTypes
	}
}

func WithRailwayTypes(railwayTypes []string) func(*Parser) {
	return func(parser *Parser) {
		parser.railwayTypes = railwayTypes
	}
}

func WithWaterwayTypes(waterwayTypes []string) func(*Parser) {
	return func(parser *Parser) {
		parser.waterwayTypes = waterwayTypes
	}
}

func WithExcludedWays(excludedWays []int64) func(*Parser) {
	return func(parser *Parser) {
		parser.excludedWays = excludedWays
	}
}

func WithBoundary(boundary orb.Polygon) func(*Parser) {
	return func(parser *Parser) {
		parser.boundary = boundary
	}
}

func WithPrepareStops(prepareStops bool) func(*Parser) {
	return func(parser *Parser) {
		parser.prepareStops = prepareStops
	}
}

func WithStopAggregationMeters(stopAggregationMeters float64) func(*Parser) {
	return func(parser *Parser) {
		parser.stopAggregationMeters = stopAggregationMeters
	}
}

func WithVerbose(verbose bool) func(*Parser) {
	return func(parser *Parser) {
		parser.verbose = verbose
	}
}

func WithLogger(logger *zap.Logger) func(*Parser) {
	return func(parser *Parser) {
		parser.logger = logger
	}
}

func WithStartVertexID(startVertexID int) func(*Parser) {
	return func(parser *Parser) {
		parser.startVertexID = startVertexID
	}
}

func WithStartEdgeID(startEdgeID int) func(*Parser) {
	return func(parser *Parser) {
		parser.startEdgeID = startEdgeID
	}
}

// Configuration returns the activation policy of the last ReadOSM call (nil
// before the first one)
func (parser *Parser) Configuration() *OsmConfiguration {
	return parser.cfg
}

// Data returns the registry of the last ReadOSM call (nil before the first
// one)
func (parser *Parser) Data() *OSMData {
	return parser.data
}

// Ways returns the ways collected by the last ReadOSM call
func (parser *Parser) Ways() []*WayData {
	return parser.ways
}

// Stats returns way filtering counters of the last ReadOSM call
func (parser *Parser) Stats() ProcessingStats {
	if parser.processor == nil {
		return ProcessingStats{}
	}
	return parser.processor.Stats()
}

// Failures returns per-way handler failures of the last ReadOSM call
func (parser *Parser) Failures() []WayError {
	if parser.processor == nil {
		return nil
	}
	return parser.processor.Failures()
}
