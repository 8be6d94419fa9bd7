package osm2net

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
)

/* Links stuff */
type NetworkLinkID int

type DirectionType uint16

const (
	DIRECTION_FORWARD = DirectionType(iota + 1)
	DIRECTION_BACKWARD
)

func (iotaIdx DirectionType) String() string {
	return [...]string{"forward", "backward"}[iotaIdx-1]
}

// NetworkLink is a directed edge of the built network covering a crossing
// free run of a collected way.
type NetworkLink struct {
	name         string
	geom         orb.LineString
	lengthMeters float64
	freeSpeed    float64
	maxSpeed     float64
	lanes        int

	ID       NetworkLinkID
	osmWayID osm.WayID

	sourceVertexID  NetworkVertexID
	targetVertexID  NetworkVertexID
	sourceOsmNodeID osm.NodeID
	targetOsmNodeID osm.NodeID

	linkClass          LinkClass
	linkType           LinkType
	linkConnectionType LinkConnectionType
	controlType        ControlType
	direction          DirectionType
	wasBidirectional   bool
}

// networkLinkFromWay prepares a directed link from a continuous run of
// way nodes. Backward links walk the nodes in reversed order.
func networkLinkFromWay(id NetworkLinkID, sourceVertexID, targetVertexID NetworkVertexID, direction DirectionType, way *WayData, segmentNodes []*Node) *NetworkLink {
	freeSpeed := defaultSpeedForLink(way.linkType)
	maxSpeed := way.maxSpeed
	if maxSpeed < 0 {
		maxSpeed = freeSpeed
	}
	lanes := way.lanes
	if lanes <= 0 {
		lanes = defaultLanesForLink(way.linkType)
	}

	link := NetworkLink{
		name:               way.name,
		freeSpeed:          freeSpeed,
		maxSpeed:           maxSpeed,
		lanes:              lanes,
		ID:                 id,
		osmWayID:           way.ID,
		sourceVertexID:     sourceVertexID,
		targetVertexID:     targetVertexID,
		linkClass:          way.linkClass,
		linkType:           way.linkType,
		linkConnectionType: way.linkConnectionType,
		controlType:        NOT_SIGNAL,
		direction:          direction,
	}
	if !way.Oneway {
		link.wasBidirectional = true
	}

	// Walk all segment nodes except the first and the last one to detect links under traffic light control
	for i := 1; i < len(segmentNodes)-1; i++ {
		node := segmentNodes[i]
		if node.controlType == IS_SIGNAL {
			link.controlType = IS_SIGNAL
		}
	}

	// Prepare geometry
	link.geom = make(orb.LineString, 0, len(segmentNodes))
	switch direction {
	case DIRECTION_FORWARD:
		for _, node := range segmentNodes {
			link.geom = append(link.geom, node.Geometry())
		}
		link.sourceOsmNodeID = segmentNodes[0].ID
		link.targetOsmNodeID = segmentNodes[len(segmentNodes)-1].ID
	case DIRECTION_BACKWARD:
		for i := len(segmentNodes) - 1; i >= 0; i-- {
			link.geom = append(link.geom, segmentNodes[i].Geometry())
		}
		link.sourceOsmNodeID = segmentNodes[len(segmentNodes)-1].ID
		link.targetOsmNodeID = segmentNodes[0].ID
	default:
		panic("Should not happen!")
	}
	link.lengthMeters = geo.LengthHaversign(link.geom)
	return &link
}

// Geometry returns the link shape in traversal order
func (link *NetworkLink) Geometry() orb.LineString {
	return link.geom
}

// Name returns value of the name tag of the underlying way
func (link *NetworkLink) Name() string {
	return link.name
}

// LengthMeters returns the great circle length of the link
func (link *NetworkLink) LengthMeters() float64 {
	return link.lengthMeters
}

// MaxSpeed returns the speed limit in km/h
func (link *NetworkLink) MaxSpeed() float64 {
	return link.maxSpeed
}

// FreeSpeed returns the free flow speed in km/h
func (link *NetworkLink) FreeSpeed() float64 {
	return link.freeSpeed
}

// GetLanes returns the number of lanes for the link direction
func (link *NetworkLink) GetLanes() int {
	return link.lanes
}

// SourceVertex returns the vertex the link starts at
func (link *NetworkLink) SourceVertex() NetworkVertexID {
	return link.sourceVertexID
}

// TargetVertex returns the vertex the link ends at
func (link *NetworkLink) TargetVertex() NetworkVertexID {
	return link.targetVertexID
}

// OSMWay returns the identifier of the way the link was cut from
func (link *NetworkLink) OSMWay() osm.WayID {
	return link.osmWayID
}

// LinkClass returns the transport category of the link
func (link *NetworkLink) LinkClass() LinkClass {
	return link.linkClass
}

// LinkType returns the resolved link type
func (link *NetworkLink) LinkType() LinkType {
	return link.linkType
}

// Direction returns traversal direction relative to the way node order
func (link *NetworkLink) Direction() DirectionType {
	return link.direction
}
