package osm2net

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DEFAULT_STOP_AGGREGATION_METERS = 50.0
)

// findStopTag resolves the stop class and the raw stop kind out of node
// tags. Keys are checked in class evaluation order.
func findStopTag(tags osm.Tags) (LinkClass, string, bool) {
	if kind := tags.Find("highway"); kind != "" {
		if _, ok := stopHighwayTags[kind]; ok {
			return LINK_CLASS_HIGHWAY, kind, true
		}
	}
	if kind := tags.Find("railway"); kind != "" {
		if _, ok := stopRailwayTags[kind]; ok {
			return LINK_CLASS_RAILWAY, kind, true
		}
	}
	if kind := tags.Find("amenity"); kind != "" {
		if _, ok := stopAmenityTags[kind]; ok {
			return LINK_CLASS_WATERWAY, kind, true
		}
	}
	return 0, "", false
}

// Stop is a public transport stop found among registered nodes
type Stop struct {
	name string
	kind string
	geom orb.Point

	ID        osm.NodeID
	zoneID    StopZoneID
	linkClass LinkClass
}

// Name returns value of the name tag of the stop node
func (stop *Stop) Name() string {
	return stop.name
}

// Kind returns the raw stop tag value, e.g. "bus_stop"
func (stop *Stop) Kind() string {
	return stop.kind
}

// Geometry returns the stop position as lon/lat point
func (stop *Stop) Geometry() orb.Point {
	return stop.geom
}

// ZoneID returns the zone the stop was aggregated into
func (stop *Stop) ZoneID() StopZoneID {
	return stop.zoneID
}

// LinkClass returns the transport category of the stop
func (stop *Stop) LinkClass() LinkClass {
	return stop.linkClass
}

type StopZoneID int

// StopZone is a group of stops of one class within aggregation distance.
// Every zone gets a synthetic access node at its centroid registered into
// the registry.
type StopZone struct {
	name     string
	seed     orb.Point
	centroid orb.Point

	ID           StopZoneID
	accessNodeID osm.NodeID
	linkClass    LinkClass
	stops        []*Stop
}

// Name returns the zone name inherited from its first named stop
func (zone *StopZone) Name() string {
	return zone.name
}

// Centroid returns the center of all stops in the zone
func (zone *StopZone) Centroid() orb.Point {
	return zone.centroid
}

// AccessNode returns the identifier of the registered synthetic node
func (zone *StopZone) AccessNode() osm.NodeID {
	return zone.accessNodeID
}

// LinkClass returns the transport category of the zone
func (zone *StopZone) LinkClass() LinkClass {
	return zone.linkClass
}

// Stops returns the aggregated stops in identifier order
func (zone *StopZone) Stops() []*Stop {
	return zone.stops
}

// StopData is the outcome of the stop extraction phase
type StopData struct {
	stops []*Stop
	zones []*StopZone
}

// Stops returns extracted stops in identifier order
func (stopData *StopData) Stops() []*Stop {
	return stopData.stops
}

// Zones returns aggregated zones in identifier order
func (stopData *StopData) Zones() []*StopZone {
	return stopData.zones
}

// StopExtractor is the public transport phase of the read. It runs strictly
// after ReadOSM and consumes the registry and the collected ways.
type StopExtractor struct {
	data              *OSMData
	ways              []*WayData
	logger            *zap.Logger
	aggregationMeters float64
}

// NewStopExtractor prepares an extractor over the given registry. The
// registry is mandatory, ways may be nil (no way availability filtering
// then), the logger may be nil.
func NewStopExtractor(data *OSMData, ways []*WayData, aggregationMeters float64, logger *zap.Logger) (*StopExtractor, error) {
	if data == nil {
		return nil, fmt.Errorf("Registry is not provided")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if aggregationMeters <= 0 {
		aggregationMeters = DEFAULT_STOP_AGGREGATION_METERS
	}
	return &StopExtractor{
		data:              data,
		ways:              ways,
		logger:            logger,
		aggregationMeters: aggregationMeters,
	}, nil
}

// ExtractStops runs the public transport phase over the data of the last
// ReadOSM call.
func (parser *Parser) ExtractStops() (*StopData, error) {
	if parser.data == nil {
		return nil, errors.New("No data collected. Call ReadOSM first")
	}
	extractor, err := NewStopExtractor(parser.data, parser.ways, parser.stopAggregationMeters, parser.logger)
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare stop extractor")
	}
	return extractor.Extract()
}

// Extract collects stop tagged nodes, drops stops sitting on unavailable
// ways only, aggregates the rest into zones and registers one synthetic
// access node per zone.
func (extractor *StopExtractor) Extract() (*StopData, error) {
	st := time.Now()
	stops := extractor.collectStops()
	zones := extractor.groupStops(stops)
	extractor.registerAccessNodes(zones)
	extractor.logger.Info("stops extracted",
		zap.Int("stops", len(stops)),
		zap.Int("zones", len(zones)),
		zap.Duration("elapsed", time.Since(st)),
	)
	return &StopData{
		stops: stops,
		zones: zones,
	}, nil
}

func (extractor *StopExtractor) collectStops() []*Stop {
	candidates := make([]*Node, 0)
	for _, node := range extractor.data.RegisteredNodes() {
		if node.isStop && !node.synthetic && extractor.data.Configuration().IsClassEnabled(node.stopClass) {
			candidates = append(candidates, node)
		}
	}
	// Registry map iteration order is random, zone identifiers must stay stable
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})

	membership := extractor.wayMembership(candidates)
	stops := make([]*Stop, 0, len(candidates))
	skipped := 0
	for _, node := range candidates {
		if ways := membership[node.ID]; len(ways) > 0 {
			available := false
			for _, wayID := range ways {
				if !extractor.data.IsWayUnavailable(wayID) {
					available = true
					break
				}
			}
			if !available {
				skipped++
				extractor.logger.Debug("stop skipped, all its ways are unavailable",
					zap.Int64("node_id", int64(node.ID)),
				)
				continue
			}
		}
		stops = append(stops, &Stop{
			name:      node.name,
			kind:      node.stopKind,
			geom:      node.Geometry(),
			ID:        node.ID,
			linkClass: node.stopClass,
		})
	}
	if skipped > 0 {
		extractor.logger.Info("stops on unavailable ways skipped", zap.Int("count", skipped))
	}
	return stops
}

// wayMembership finds the collected ways every candidate node lies on
func (extractor *StopExtractor) wayMembership(candidates []*Node) map[osm.NodeID][]osm.WayID {
	candidateIDs := make(map[osm.NodeID]struct{}, len(candidates))
	for _, node := range candidates {
		candidateIDs[node.ID] = struct{}{}
	}
	membership := make(map[osm.NodeID][]osm.WayID)
	for _, way := range extractor.ways {
		for _, nodeID := range way.Nodes {
			if _, ok := candidateIDs[nodeID]; ok {
				membership[nodeID] = append(membership[nodeID], way.ID)
			}
		}
	}
	return membership
}

// groupStops aggregates stops of the same class lying within the
// aggregation distance of the zone seed (its first stop).
func (extractor *StopExtractor) groupStops(stops []*Stop) []*StopZone {
	zones := make([]*StopZone, 0)
	for _, stop := range stops {
		var joined *StopZone
		for _, zone := range zones {
			if zone.linkClass != stop.linkClass {
				continue
			}
			if geo.DistanceHaversine(zone.seed, stop.geom) <= extractor.aggregationMeters {
				joined = zone
				break
			}
		}
		if joined == nil {
			joined = &StopZone{
				seed:      stop.geom,
				ID:        StopZoneID(len(zones)),
				linkClass: stop.linkClass,
			}
			zones = append(zones, joined)
		}
		stop.zoneID = joined.ID
		joined.stops = append(joined.stops, stop)
	}
	for _, zone := range zones {
		points := make([]orb.Point, 0, len(zone.stops))
		for _, stop := range zone.stops {
			points = append(points, stop.geom)
			if zone.name == "" && stop.name != "" {
				zone.name = stop.name
			}
		}
		zone.centroid = findCentroid(points)
		if zone.name == "" {
			zone.name = fmt.Sprintf("zone_%d", zone.ID)
		}
	}
	return zones
}

// registerAccessNodes registers one synthetic node per zone. Identifiers
// start right above the largest registered one so they never collide.
func (extractor *StopExtractor) registerAccessNodes(zones []*StopZone) {
	nextNodeID := extractor.data.MaxRegisteredNodeID() + 1
	for _, zone := range zones {
		extractor.data.RegisterNode(NewSyntheticNode(nextNodeID, zone.centroid, zone.name))
		zone.accessNodeID = nextNodeID
		nextNodeID++
	}
}

// ExportToCSV writes stops and zones into two semicolon separated files
// next to the given filename
func (stopData *StopData) ExportToCSV(fname string) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameStops := fnameParts[0] + "_stops.csv"
	fnameZones := fnameParts[0] + "_stop_zones.csv"

	err := stopData.exportStopsToCSV(fnameStops)
	if err != nil {
		return errors.Wrap(err, "Can't export stops")
	}

	err = stopData.exportZonesToCSV(fnameZones)
	if err != nil {
		return errors.Wrap(err, "Can't export stop zones")
	}

	return nil
}

func (stopData *StopData) exportStopsToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "zone_id", "link_class", "kind", "name", "longitude", "latitude"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, stop := range stopData.stops {
		err = writer.Write([]string{
			fmt.Sprintf("%d", stop.ID),
			fmt.Sprintf("%d", stop.zoneID),
			stop.linkClass.String(),
			stop.kind,
			stop.name,
			fmt.Sprintf("%f", stop.geom[0]),
			fmt.Sprintf("%f", stop.geom[1]),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write stop")
		}
	}
	return nil
}

func (stopData *StopData) exportZonesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "link_class", "access_node_id", "stops_num", "name", "longitude", "latitude"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, zone := range stopData.zones {
		err = writer.Write([]string{
			fmt.Sprintf("%d", zone.ID),
			zone.linkClass.String(),
			fmt.Sprintf("%d", zone.accessNodeID),
			fmt.Sprintf("%d", len(zone.stops)),
			zone.name,
			fmt.Sprintf("%f", zone.centroid[0]),
			fmt.Sprintf("%f", zone.centroid[1]),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write stop zone")
		}
	}
	return nil
}
