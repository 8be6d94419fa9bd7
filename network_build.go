package osm2net

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BuildNetwork turns collected ways and registered nodes into the
// macroscopic network. Ways are split at crossings (nodes shared by several
// ways, way endpoints and signalized nodes), every crossing free segment
// becomes one link per open traffic direction. Ways referencing nodes that
// never got registered are marked unavailable and dropped with a single
// warning.
func (parser *Parser) BuildNetwork() (*NetworkMacroscopic, error) {
	if parser.data == nil {
		return nil, errors.New("No data collected. Call ReadOSM first")
	}
	st := time.Now()
	net := &NetworkMacroscopic{
		links:    make(map[NetworkLinkID]*NetworkLink),
		vertices: make(map[NetworkVertexID]*NetworkVertex),
	}
	parser.countNodesUse()
	parser.markCrossings()
	parser.buildLinks(net)
	parser.logger.Info("network prepared",
		zap.Int("links", len(net.links)),
		zap.Int("vertices", len(net.vertices)),
		zap.Int("unavailable_ways", len(parser.data.UnavailableWays())),
		zap.Duration("elapsed", time.Since(st)),
	)
	return net, nil
}

// countNodesUse checks way completeness and counts how many segments touch
// every node. Way endpoints count twice so a dead end still terminates its
// link. Counters are zeroed first, repeated builds stay correct.
func (parser *Parser) countNodesUse() {
	data := parser.data
	for _, node := range data.RegisteredNodes() {
		node.useCount = 0
		node.isCrossing = false
	}
	for _, way := range parser.ways {
		if data.IsWayUnavailable(way.ID) {
			continue
		}
		complete := true
		for _, nodeID := range way.Nodes {
			if _, ok := data.GetNode(nodeID); !ok {
				complete = false
				break
			}
		}
		if !complete {
			data.MarkWayUnavailable(way.ID)
			parser.logger.Warn("way references unregistered nodes, dropped from the network",
				zap.Int64("way_id", int64(way.ID)),
			)
			continue
		}
		for i, nodeID := range way.Nodes {
			node, _ := data.GetNode(nodeID)
			if i == 0 || i == len(way.Nodes)-1 {
				node.useCount += 2
			} else {
				node.useCount++
			}
		}
	}
}

func (parser *Parser) markCrossings() {
	for _, node := range parser.data.RegisteredNodes() {
		if node.useCount >= 2 || (node.useCount > 0 && node.controlType == IS_SIGNAL) {
			node.isCrossing = true
		}
	}
}

// splitWay cuts the node sequence of the way at crossings. Neighbour
// segments share the crossing node. A ring without inner crossings would
// collapse into a self loop, such rings are cut in half instead.
func (parser *Parser) splitWay(way *WayData) [][]*Node {
	data := parser.data
	segments := make([][]*Node, 0, 1)
	current := make([]*Node, 0, len(way.Nodes))
	for i, nodeID := range way.Nodes {
		node, ok := data.GetNode(nodeID)
		if !ok {
			// Unavailable ways never reach this point
			continue
		}
		current = append(current, node)
		if i == 0 || i == len(way.Nodes)-1 {
			continue
		}
		if node.isCrossing {
			segments = append(segments, current)
			current = []*Node{node}
		}
	}
	if len(current) >= 2 {
		segments = append(segments, current)
	}
	if way.isCycle && len(segments) == 1 && len(segments[0]) >= 3 {
		ring := segments[0]
		mid := len(ring) / 2
		segments = [][]*Node{ring[:mid+1], ring[mid:]}
	}
	return segments
}

func (parser *Parser) buildLinks(net *NetworkMacroscopic) {
	data := parser.data
	lastLinkID := NetworkLinkID(parser.startEdgeID)
	for _, way := range parser.ways {
		if data.IsWayUnavailable(way.ID) {
			continue
		}
		layer := data.Layer(way.linkClass)
		for _, segment := range parser.splitWay(way) {
			first := segment[0]
			last := segment[len(segment)-1]
			sourceVertexID := layer.GetOrCreateVertex(first.ID)
			targetVertexID := layer.GetOrCreateVertex(last.ID)
			if _, ok := net.vertices[sourceVertexID]; !ok {
				net.vertices[sourceVertexID] = networkVertexFromNode(sourceVertexID, way.linkClass, first)
			}
			if _, ok := net.vertices[targetVertexID]; !ok {
				net.vertices[targetVertexID] = networkVertexFromNode(targetVertexID, way.linkClass, last)
			}
			if way.Oneway {
				direction := DIRECTION_FORWARD
				source, target := sourceVertexID, targetVertexID
				if way.IsReversed {
					direction = DIRECTION_BACKWARD
					source, target = targetVertexID, sourceVertexID
				}
				link := networkLinkFromWay(lastLinkID, source, target, direction, way, segment)
				net.links[link.ID] = link
				lastLinkID++
				continue
			}
			link := networkLinkFromWay(lastLinkID, sourceVertexID, targetVertexID, DIRECTION_FORWARD, way, segment)
			net.links[link.ID] = link
			lastLinkID++
			link = networkLinkFromWay(lastLinkID, targetVertexID, sourceVertexID, DIRECTION_BACKWARD, way, segment)
			net.links[link.ID] = link
			lastLinkID++
		}
	}
}
