package osm2net

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// WayData is a collected infrastructure way prepared for network building.
type WayData struct {
	name     string
	wayType  string
	junction string

	TagMap osm.Tags
	Nodes  []osm.NodeID

	ID       osm.WayID
	lanes    int
	maxSpeed float64

	linkClass          LinkClass
	linkType           LinkType
	linkConnectionType LinkConnectionType

	isCycle       bool
	Oneway        bool
	OnewayDefault bool
	IsReversed    bool
}

func newWayData(way *osm.Way) *WayData {
	prepared := &WayData{
		ID:       way.ID,
		TagMap:   way.Tags,
		Nodes:    make([]osm.NodeID, 0, len(way.Nodes)),
		lanes:    -1,
		maxSpeed: -1,
	}
	for _, wayNode := range way.Nodes {
		prepared.Nodes = append(prepared.Nodes, wayNode.ID)
	}
	if len(prepared.Nodes) >= 2 && prepared.Nodes[0] == prepared.Nodes[len(prepared.Nodes)-1] {
		prepared.isCycle = true
	}
	return prepared
}

// Name returns value of the name tag (empty when untagged)
func (way *WayData) Name() string {
	return way.name
}

// LinkClass returns the resolved transport category of the way
func (way *WayData) LinkClass() LinkClass {
	return way.linkClass
}

// LinkType returns the resolved link type of the way
func (way *WayData) LinkType() LinkType {
	return way.linkType
}

// WayType returns the raw key tag value the way was activated by
func (way *WayData) WayType() string {
	return way.wayType
}

// IsOneway reports whether traffic passes the way in a single direction only
func (way *WayData) IsOneway() bool {
	return way.Oneway
}

var (
	mphRegExp        = regexp.MustCompile(`\d+\.?\d*\s*mph`)
	speedValueRegExp = regexp.MustCompile(`[0-9][0-9.,]*`)
	lanesRegExp      = regexp.MustCompile(`\d+`)
)

const milesToKilometers = 1.60934

// parseMaxspeed extracts a speed in km/h from a raw maxspeed tag value.
// Values with the mph unit are converted, unitless values are km/h already.
func parseMaxspeed(value string) (float64, error) {
	num := speedValueRegExp.FindString(value)
	if num == "" {
		return -1, fmt.Errorf("No numeric part in maxspeed value: '%s'", value)
	}
	speed, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", "."), 64)
	if err != nil {
		return -1, err
	}
	if mphRegExp.MatchString(value) {
		speed *= milesToKilometers
	}
	return speed, nil
}

// processTags evaluates the tags the network builder cares about. The link
// type has to be resolved before the call since the oneway fallback depends
// on it.
func (way *WayData) processTags(logger *zap.Logger) {
	way.name = way.TagMap.Find("name")
	way.junction = way.TagMap.Find("junction")

	if lanes := way.TagMap.Find("lanes"); lanes != "" {
		parsed, err := strconv.Atoi(lanesRegExp.FindString(lanes))
		if err != nil {
			way.lanes = -1
			logger.Warn("unexpected lanes tag value",
				zap.String("lanes", lanes),
				zap.Int64("way_id", int64(way.ID)),
			)
		} else {
			way.lanes = parsed
		}
	}

	if maxSpeed := way.TagMap.Find("maxspeed"); maxSpeed != "" {
		speed, err := parseMaxspeed(maxSpeed)
		if err != nil {
			logger.Warn("unexpected maxspeed tag value",
				zap.String("maxspeed", maxSpeed),
				zap.Int64("way_id", int64(way.ID)),
			)
		}
		way.maxSpeed = speed
	}

	oneway := way.TagMap.Find("oneway")
	switch oneway {
	case "yes", "1":
		way.Oneway = true
	case "no", "0":
		way.Oneway = false
	case "-1":
		// Traffic goes along the reversed node order
		way.Oneway = true
		way.IsReversed = true
	case "":
		if _, ok := junctionTypes[way.junction]; ok {
			way.Oneway = true
		} else {
			way.Oneway = defaultOnewayForLink(way.linkType)
			way.OnewayDefault = true
		}
	default:
		if _, ok := onewayReversible[oneway]; ok {
			// Direction depends on time period, keep the way bidirectional
			logger.Warn("reversible oneway, keeping the way bidirectional",
				zap.String("oneway", oneway),
				zap.Int64("way_id", int64(way.ID)),
			)
			way.Oneway = false
		} else {
			logger.Warn("unhandled oneway tag value",
				zap.String("oneway", oneway),
				zap.Int64("way_id", int64(way.ID)),
			)
			way.Oneway = defaultOnewayForLink(way.linkType)
			way.OnewayDefault = true
		}
	}
}
