package osm2net

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

/* Vertices stuff */

// NetworkVertex is a point of the built network where links start, end or
// cross. Vertices are per layer projections of registered nodes, one OSM
// node shared by two layers produces two vertices.
type NetworkVertex struct {
	name string
	geom orb.Point

	ID        NetworkVertexID
	osmNodeID osm.NodeID

	linkClass   LinkClass
	controlType ControlType
}

func networkVertexFromNode(id NetworkVertexID, class LinkClass, node *Node) *NetworkVertex {
	return &NetworkVertex{
		name:        node.name,
		geom:        node.Geometry(),
		ID:          id,
		osmNodeID:   node.ID,
		linkClass:   class,
		controlType: node.controlType,
	}
}

// Geometry returns the vertex position as lon/lat point
func (vertex *NetworkVertex) Geometry() orb.Point {
	return vertex.geom
}

// Name returns value of the name tag of the underlying node
func (vertex *NetworkVertex) Name() string {
	return vertex.name
}

// OSMNode returns the identifier of the underlying node
func (vertex *NetworkVertex) OSMNode() osm.NodeID {
	return vertex.osmNodeID
}

// LinkClass returns the layer the vertex belongs to
func (vertex *NetworkVertex) LinkClass() LinkClass {
	return vertex.linkClass
}

// ControlType reports whether the vertex is signalized
func (vertex *NetworkVertex) ControlType() ControlType {
	return vertex.controlType
}
