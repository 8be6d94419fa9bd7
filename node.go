package osm2net

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node is a registered OSM node together with the attributes derived from its
// tags during registration. The network builder fills useCount and isCrossing
// after all ways are collected.
type Node struct {
	node osm.Node
	name string

	ID          osm.NodeID
	useCount    int
	controlType ControlType
	isCrossing  bool

	stopClass LinkClass
	stopKind  string
	isStop    bool
	synthetic bool
}

// NewNodeFromOSM prepares a registry node from a scanned OSM node.
func NewNodeFromOSM(node *osm.Node) *Node {
	prepared := &Node{
		node: *node,
		name: node.Tags.Find("name"),
		ID:   node.ID,
	}
	if node.Tags.Find("highway") == "traffic_signals" {
		prepared.controlType = IS_SIGNAL
	} else {
		prepared.controlType = NOT_SIGNAL
	}
	if class, kind, ok := findStopTag(node.Tags); ok {
		prepared.isStop = true
		prepared.stopClass = class
		prepared.stopKind = kind
	}
	return prepared
}

// NewSyntheticNode prepares a node that has no OSM counterpart, e.g. an
// aggregated stop zone centroid. The identifier must not collide with any
// registered OSM node.
func NewSyntheticNode(id osm.NodeID, geom orb.Point, name string) *Node {
	return &Node{
		node:        osm.Node{ID: id, Lon: geom.Lon(), Lat: geom.Lat()},
		name:        name,
		ID:          id,
		controlType: NOT_SIGNAL,
		synthetic:   true,
	}
}

// Geometry returns the node position as lon/lat point
func (node *Node) Geometry() orb.Point {
	return orb.Point{node.node.Lon, node.node.Lat}
}

// Name returns value of the name tag (empty when untagged)
func (node *Node) Name() string {
	return node.name
}

// Tags returns the tag set of the underlying OSM node
func (node *Node) Tags() osm.Tags {
	return node.node.Tags
}

// IsStop reports whether the node carries a public transport stop tag
func (node *Node) IsStop() bool {
	return node.isStop
}

// IsSynthetic reports whether the node was generated instead of scanned
func (node *Node) IsSynthetic() bool {
	return node.synthetic
}

type ControlType uint16

const (
	NOT_SIGNAL = ControlType(iota + 1)
	IS_SIGNAL
)

func (iotaIdx ControlType) String() string {
	return [...]string{"common", "signal"}[iotaIdx-1]
}
