package osm2net

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/osm"
)

const (
	DEFAULT_FIRST_VERTEX = NetworkVertexID(0)
)

// OSMData is the registry shared by all phases of a single read: node
// identifiers marked as needed during the way pass, nodes registered during
// the node pass, ways found unusable, the expanding extent of the registered
// nodes and per class layer state. The registry performs no locking, all
// phases run on a single goroutine.
type OSMData struct {
	cfg      *OsmConfiguration
	boundary orb.Polygon

	nodes           map[osm.NodeID]*Node
	preRegistered   map[osm.NodeID]struct{}
	unavailableWays map[osm.WayID]struct{}
	layers          map[LinkClass]*LayerData

	extent    orb.Bound
	hasExtent bool

	nextVertexID  NetworkVertexID
	firstVertexID NetworkVertexID
}

// NewOSMData prepares an empty registry. The configuration is mandatory, the
// boundary polygon is optional and restricts node registration when set.
func NewOSMData(cfg *OsmConfiguration, boundary orb.Polygon, firstVertexID NetworkVertexID) (*OSMData, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Configuration is not provided")
	}
	data := &OSMData{
		cfg:           cfg,
		boundary:      boundary,
		firstVertexID: firstVertexID,
	}
	data.Reset()
	return data, nil
}

// Reset drops every per-run state so the registry can serve another read.
// Configuration and boundary survive the call.
func (data *OSMData) Reset() {
	data.nodes = make(map[osm.NodeID]*Node)
	data.preRegistered = make(map[osm.NodeID]struct{})
	data.unavailableWays = make(map[osm.WayID]struct{})
	data.layers = make(map[LinkClass]*LayerData)
	data.extent = orb.Bound{}
	data.hasExtent = false
	data.nextVertexID = data.firstVertexID
}

// Configuration returns the activation policy the registry was built for
func (data *OSMData) Configuration() *OsmConfiguration {
	return data.cfg
}

// PreRegisterNode marks the node as needed by some collected way. Repeated
// calls for the same identifier are no-ops.
func (data *OSMData) PreRegisterNode(nodeID osm.NodeID) {
	data.preRegistered[nodeID] = struct{}{}
}

// IsPreRegistered reports whether some collected way needs the node
func (data *OSMData) IsPreRegistered(nodeID osm.NodeID) bool {
	_, ok := data.preRegistered[nodeID]
	return ok
}

// NumPreRegistered returns the number of node identifiers marked as needed
func (data *OSMData) NumPreRegistered() int {
	return len(data.preRegistered)
}

// RegisterNode stores the node in the registry. Registering the same
// identifier again replaces the stored node without error.
func (data *OSMData) RegisterNode(node *Node) {
	if node == nil {
		return
	}
	data.nodes[node.ID] = node
}

// GetNode returns the registered node with the given identifier
func (data *OSMData) GetNode(nodeID osm.NodeID) (*Node, bool) {
	node, ok := data.nodes[nodeID]
	return node, ok
}

// RegisteredNodes returns the live map of registered nodes keyed by
// identifier. Callers must treat it as read-only.
func (data *OSMData) RegisteredNodes() map[osm.NodeID]*Node {
	return data.nodes
}

// NumRegisteredNodes returns the number of registered nodes
func (data *OSMData) NumRegisteredNodes() int {
	return len(data.nodes)
}

// MaxRegisteredNodeID returns the largest registered node identifier, used
// to allocate identifiers for synthetic nodes. Returns zero for an empty
// registry.
func (data *OSMData) MaxRegisteredNodeID() osm.NodeID {
	maxID := osm.NodeID(0)
	for nodeID := range data.nodes {
		if nodeID > maxID {
			maxID = nodeID
		}
	}
	return maxID
}

// MarkWayUnavailable records the way as unusable for network building, e.g.
// when some of its nodes never got registered. Downstream phases check the
// mark to avoid repeated warnings about the same way.
func (data *OSMData) MarkWayUnavailable(wayID osm.WayID) {
	data.unavailableWays[wayID] = struct{}{}
}

// IsWayUnavailable reports whether the way was marked as unusable
func (data *OSMData) IsWayUnavailable(wayID osm.WayID) bool {
	_, ok := data.unavailableWays[wayID]
	return ok
}

// UnavailableWays returns identifiers of unusable ways in ascending order
func (data *OSMData) UnavailableWays() []osm.WayID {
	ways := make([]osm.WayID, 0, len(data.unavailableWays))
	for wayID := range data.unavailableWays {
		ways = append(ways, wayID)
	}
	sort.Slice(ways, func(i, j int) bool {
		return ways[i] < ways[j]
	})
	return ways
}

// ExpandBoundingBox grows the tracked extent to cover the given point. The
// first call initializes the extent with the point itself.
func (data *OSMData) ExpandBoundingBox(point orb.Point) {
	if !data.hasExtent {
		data.extent = orb.Bound{Min: point, Max: point}
		data.hasExtent = true
		return
	}
	data.extent = data.extent.Extend(point)
}

// BoundingBox returns the extent of all registered nodes. The second return
// value is false until at least one point was added.
func (data *OSMData) BoundingBox() (orb.Bound, bool) {
	return data.extent, data.hasExtent
}

// Boundary returns the optional clipping polygon (nil when not set)
func (data *OSMData) Boundary() orb.Polygon {
	return data.boundary
}

// WithinBoundary reports whether the point is eligible for registration.
// Always true when no boundary polygon is set.
func (data *OSMData) WithinBoundary(point orb.Point) bool {
	if len(data.boundary) == 0 {
		return true
	}
	return planar.PolygonContains(data.boundary, point)
}

// Layer returns the layer state of the given class, creating it on first
// use. Repeated calls return the same instance.
func (data *OSMData) Layer(class LinkClass) *LayerData {
	if layer, ok := data.layers[class]; ok {
		return layer
	}
	layer := newLayerData(data, class)
	data.layers[class] = layer
	return layer
}

// Layers returns initialized layers in class evaluation order
func (data *OSMData) Layers() []*LayerData {
	layers := make([]*LayerData, 0, len(data.layers))
	for _, class := range linkClassOrder {
		if layer, ok := data.layers[class]; ok {
			layers = append(layers, layer)
		}
	}
	return layers
}
