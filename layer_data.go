package osm2net

import "github.com/paulmach/osm"

// NetworkVertexID identifies a vertex of the built network. Identifiers are
// drawn from a sequence shared by all layers so vertices of different
// classes never collide.
type NetworkVertexID int

// LayerData carries the builder state of a single link class: the mapping
// from registered OSM nodes to network vertices of that layer. Instances are
// owned by the registry, see OSMData.Layer.
type LayerData struct {
	data         *OSMData
	nodeToVertex map[osm.NodeID]NetworkVertexID
	linkClass    LinkClass
}

func newLayerData(data *OSMData, class LinkClass) *LayerData {
	return &LayerData{
		data:         data,
		nodeToVertex: make(map[osm.NodeID]NetworkVertexID),
		linkClass:    class,
	}
}

// LinkClass returns the class the layer belongs to
func (layer *LayerData) LinkClass() LinkClass {
	return layer.linkClass
}

// VertexID returns the network vertex mapped to the node in this layer
func (layer *LayerData) VertexID(nodeID osm.NodeID) (NetworkVertexID, bool) {
	vertexID, ok := layer.nodeToVertex[nodeID]
	return vertexID, ok
}

// GetOrCreateVertex returns the vertex mapped to the node, allocating the
// next free identifier on first use
func (layer *LayerData) GetOrCreateVertex(nodeID osm.NodeID) NetworkVertexID {
	if vertexID, ok := layer.nodeToVertex[nodeID]; ok {
		return vertexID
	}
	vertexID := layer.data.nextVertexID
	layer.data.nextVertexID++
	layer.nodeToVertex[nodeID] = vertexID
	return vertexID
}

// NumVertices returns the number of vertices allocated in the layer
func (layer *LayerData) NumVertices() int {
	return len(layer.nodeToVertex)
}
