package osm2net

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBuildParser(t *testing.T, nodes []*Node, ways []*WayData) *Parser {
	cfg := testConfiguration(t, "highway", "railway")
	data, err := NewOSMData(cfg, nil, DEFAULT_FIRST_VERTEX)
	require.NoError(t, err)
	for _, node := range nodes {
		data.RegisterNode(node)
	}
	return &Parser{
		logger: zap.NewNop(),
		cfg:    cfg,
		data:   data,
		ways:   ways,
	}
}

func testWayData(id int64, oneway bool, nodeIDs ...osm.NodeID) *WayData {
	return &WayData{
		ID:        osm.WayID(id),
		Nodes:     nodeIDs,
		lanes:     -1,
		maxSpeed:  -1,
		linkClass: LINK_CLASS_HIGHWAY,
		linkType:  LINK_RESIDENTIAL,
		Oneway:    oneway,
	}
}

// testChainNodes lays the nodes along the equator, 0.001 degree apart
func testChainNodes(ids ...int64) []*Node {
	nodes := make([]*Node, 0, len(ids))
	for i, id := range ids {
		nodes = append(nodes, testNode(id, float64(i)*0.001, 0, nil))
	}
	return nodes
}

func TestBuildNetworkRequiresData(t *testing.T) {
	parser := NewParser("sample.osm")
	_, err := parser.BuildNetwork()
	require.Error(t, err)
}

func TestBuildNetworkBidirectional(t *testing.T) {
	parser := testBuildParser(t,
		testChainNodes(1, 2, 3),
		[]*WayData{testWayData(101, false, 1, 2, 3)},
	)
	net, err := parser.BuildNetwork()
	require.NoError(t, err)
	require.Len(t, net.Links(), 2)
	require.Len(t, net.Vertices(), 2)

	links := net.sortedLinks()
	forward, backward := links[0], links[1]
	assert.Equal(t, DIRECTION_FORWARD, forward.Direction())
	assert.Equal(t, DIRECTION_BACKWARD, backward.Direction())
	assert.Equal(t, forward.SourceVertex(), backward.TargetVertex())
	assert.Equal(t, forward.TargetVertex(), backward.SourceVertex())

	require.Len(t, forward.Geometry(), 3)
	require.Len(t, backward.Geometry(), 3)
	assert.Equal(t, forward.Geometry()[0], backward.Geometry()[2])
	assert.InDelta(t, forward.LengthMeters(), backward.LengthMeters(), 0.0001)
}

func TestBuildNetworkOneway(t *testing.T) {
	parser := testBuildParser(t,
		testChainNodes(1, 2),
		[]*WayData{testWayData(101, true, 1, 2)},
	)
	net, err := parser.BuildNetwork()
	require.NoError(t, err)
	require.Len(t, net.Links(), 1)

	link := net.sortedLinks()[0]
	assert.Equal(t, DIRECTION_FORWARD, link.Direction())
	assert.Equal(t, NetworkVertexID(0), link.SourceVertex())
	assert.Equal(t, NetworkVertexID(1), link.TargetVertex())
	assert.False(t, link.wasBidirectional)
}

func TestBuildNetworkReversedOneway(t *testing.T) {
	way := testWayData(101, true, 1, 2)
	way.IsReversed = true
	parser := testBuildParser(t, testChainNodes(1, 2), []*WayData{way})
	net, err := parser.BuildNetwork()
	require.NoError(t, err)
	require.Len(t, net.Links(), 1)

	link := net.sortedLinks()[0]
	assert.Equal(t, DIRECTION_BACKWARD, link.Direction())
	// Traffic flows into the vertex of the first way node
	assert.Equal(t, NetworkVertexID(1), link.SourceVertex())
	assert.Equal(t, NetworkVertexID(0), link.TargetVertex())

	geom := link.Geometry()
	require.Len(t, geom, 2)
	lastNode, ok := parser.data.GetNode(2)
	require.True(t, ok)
	assert.Equal(t, lastNode.Geometry(), geom[0])
}

func TestBuildNetworkSplitsAtSharedNode(t *testing.T) {
	// Node 2 is inner for both ways, the shared use makes it a crossing
	nodes := append(testChainNodes(1, 2, 3), testNode(4, 0.001, 0.001, nil), testNode(5, 0.001, -0.001, nil))
	parser := testBuildParser(t, nodes, []*WayData{
		testWayData(101, false, 1, 2, 3),
		testWayData(102, false, 4, 2, 5),
	})
	net, err := parser.BuildNetwork()
	require.NoError(t, err)
	assert.Len(t, net.Links(), 8)
	assert.Len(t, net.Vertices(), 5)
}

func TestBuildNetworkSignalCrossing(t *testing.T) {
	nodes := testChainNodes(1, 2, 3)
	nodes[1] = testNode(2, 0.001, 0, osm.Tags{{Key: "highway", Value: "traffic_signals"}})
	parser := testBuildParser(t, nodes, []*WayData{testWayData(101, false, 1, 2, 3)})
	net, err := parser.BuildNetwork()
	require.NoError(t, err)
	// Signalized inner node cuts the way even without shared use
	assert.Len(t, net.Links(), 4)
	assert.Len(t, net.Vertices(), 3)
}

func TestBuildNetworkPureCycle(t *testing.T) {
	nodes := append(testChainNodes(1, 2, 3), testNode(4, 0.001, 0.001, nil))
	parser := testBuildParser(t, nodes, []*WayData{
		{
			ID:        101,
			Nodes:     []osm.NodeID{1, 2, 3, 4, 1},
			lanes:     -1,
			maxSpeed:  -1,
			linkClass: LINK_CLASS_HIGHWAY,
			linkType:  LINK_RESIDENTIAL,
			isCycle:   true,
		},
	})
	net, err := parser.BuildNetwork()
	require.NoError(t, err)
	// The ring is cut in half, no link may start and end at the same vertex
	assert.Len(t, net.Links(), 4)
	assert.Len(t, net.Vertices(), 2)
	for _, link := range net.Links() {
		assert.NotEqual(t, link.SourceVertex(), link.TargetVertex())
	}
}

func TestBuildNetworkUnavailableWay(t *testing.T) {
	parser := testBuildParser(t,
		testChainNodes(1, 2),
		[]*WayData{
			testWayData(101, false, 1, 2),
			testWayData(102, false, 2, 99),
		},
	)
	net, err := parser.BuildNetwork()
	require.NoError(t, err)
	assert.Len(t, net.Links(), 2)
	assert.True(t, parser.data.IsWayUnavailable(102))
	assert.Equal(t, []osm.WayID{102}, parser.data.UnavailableWays())

	// Another build over the same data must not change the outcome
	net, err = parser.BuildNetwork()
	require.NoError(t, err)
	assert.Len(t, net.Links(), 2)
	assert.Equal(t, []osm.WayID{102}, parser.data.UnavailableWays())
}

func TestBuildNetworkLinkDefaults(t *testing.T) {
	parser := testBuildParser(t, testChainNodes(1, 2), []*WayData{testWayData(101, true, 1, 2)})
	net, err := parser.BuildNetwork()
	require.NoError(t, err)

	link := net.sortedLinks()[0]
	assert.Equal(t, 1, link.GetLanes())
	assert.Equal(t, 30.0, link.FreeSpeed())
	assert.Equal(t, 30.0, link.MaxSpeed())
	assert.Greater(t, link.LengthMeters(), 0.0)
	assert.Equal(t, LINK_CLASS_HIGHWAY, link.LinkClass())
	assert.Equal(t, LINK_RESIDENTIAL, link.LinkType())
	assert.Equal(t, osm.WayID(101), link.OSMWay())
}

func TestBuildNetworkWayValues(t *testing.T) {
	way := testWayData(101, true, 1, 2)
	way.name = "Sadovaya street"
	way.lanes = 4
	way.maxSpeed = 90
	parser := testBuildParser(t, testChainNodes(1, 2), []*WayData{way})
	net, err := parser.BuildNetwork()
	require.NoError(t, err)

	link := net.sortedLinks()[0]
	assert.Equal(t, "Sadovaya street", link.Name())
	assert.Equal(t, 4, link.GetLanes())
	assert.Equal(t, 90.0, link.MaxSpeed())
	assert.Equal(t, 30.0, link.FreeSpeed())
}

func TestBuildNetworkStartEdgeID(t *testing.T) {
	parser := testBuildParser(t, testChainNodes(1, 2), []*WayData{testWayData(101, true, 1, 2)})
	parser.startEdgeID = 500
	net, err := parser.BuildNetwork()
	require.NoError(t, err)
	link := net.sortedLinks()[0]
	assert.Equal(t, NetworkLinkID(500), link.ID)
}
