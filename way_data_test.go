package osm2net

import (
	"math"
	"testing"

	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

func TestNewWayData(t *testing.T) {
	way := newWayData(&osm.Way{
		ID:    osm.WayID(42),
		Nodes: osm.WayNodes{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 1}},
	})
	if !way.isCycle {
		t.Errorf("Way sharing first and last node should be a cycle")
	}
	if len(way.Nodes) != 4 {
		t.Errorf("There should be 4 nodes, but got %d", len(way.Nodes))
	}
	if way.lanes != -1 || way.maxSpeed != -1 {
		t.Errorf("Lanes and maxspeed should start undefined, but got %d and %f", way.lanes, way.maxSpeed)
	}
	open := newWayData(&osm.Way{
		ID:    osm.WayID(43),
		Nodes: osm.WayNodes{{ID: 1}, {ID: 2}},
	})
	if open.isCycle {
		t.Errorf("Open way should not be a cycle")
	}
}

func TestParseMaxspeed(t *testing.T) {
	cases := []struct {
		value    string
		expected float64
		broken   bool
	}{
		{"60", 60, false},
		{"60 km/h", 60, false},
		{"5,6", 5.6, false},
		{"50 mph", 80.467, false},
		{"none", -1, true},
		{"RO:urban", -1, true},
	}
	for _, testCase := range cases {
		speed, err := parseMaxspeed(testCase.value)
		if testCase.broken {
			if err == nil {
				t.Errorf("Value '%s' should not be parsed, but got %f", testCase.value, speed)
			}
			continue
		}
		if err != nil {
			t.Error(err)
			continue
		}
		if math.Abs(speed-testCase.expected) > 0.001 {
			t.Errorf("Value '%s' should give %f, but got %f", testCase.value, testCase.expected, speed)
		}
	}
}

func TestProcessTagsOneway(t *testing.T) {
	cases := []struct {
		name          string
		tags          osm.Tags
		linkType      LinkType
		oneway        bool
		onewayDefault bool
		isReversed    bool
	}{
		{"explicit yes", osm.Tags{{Key: "oneway", Value: "yes"}}, LINK_RESIDENTIAL, true, false, false},
		{"numeric yes", osm.Tags{{Key: "oneway", Value: "1"}}, LINK_RESIDENTIAL, true, false, false},
		{"explicit no", osm.Tags{{Key: "oneway", Value: "no"}}, LINK_RESIDENTIAL, false, false, false},
		{"numeric no", osm.Tags{{Key: "oneway", Value: "0"}}, LINK_RESIDENTIAL, false, false, false},
		{"reversed", osm.Tags{{Key: "oneway", Value: "-1"}}, LINK_RESIDENTIAL, true, false, true},
		{"roundabout", osm.Tags{{Key: "junction", Value: "roundabout"}}, LINK_RESIDENTIAL, true, false, false},
		{"circular junction", osm.Tags{{Key: "junction", Value: "circular"}}, LINK_RESIDENTIAL, true, false, false},
		{"residential default", nil, LINK_RESIDENTIAL, false, true, false},
		{"cycleway default", nil, LINK_CYCLEWAY, true, true, false},
		{"rail default", nil, LINK_RAIL, true, true, false},
		{"reversible", osm.Tags{{Key: "oneway", Value: "reversible"}}, LINK_RESIDENTIAL, false, false, false},
		{"alternating", osm.Tags{{Key: "oneway", Value: "alternating"}}, LINK_RESIDENTIAL, false, false, false},
		{"unhandled value", osm.Tags{{Key: "oneway", Value: "maybe"}}, LINK_RESIDENTIAL, false, true, false},
	}
	logger := zap.NewNop()
	for _, testCase := range cases {
		way := &WayData{TagMap: testCase.tags, linkType: testCase.linkType, lanes: -1, maxSpeed: -1}
		way.processTags(logger)
		if way.Oneway != testCase.oneway {
			t.Errorf("Case '%s': oneway should be %t, but got %t", testCase.name, testCase.oneway, way.Oneway)
		}
		if way.OnewayDefault != testCase.onewayDefault {
			t.Errorf("Case '%s': oneway default should be %t, but got %t", testCase.name, testCase.onewayDefault, way.OnewayDefault)
		}
		if way.IsReversed != testCase.isReversed {
			t.Errorf("Case '%s': reversed should be %t, but got %t", testCase.name, testCase.isReversed, way.IsReversed)
		}
	}
}

func TestProcessTagsValues(t *testing.T) {
	logger := zap.NewNop()
	way := &WayData{
		TagMap: osm.Tags{
			{Key: "name", Value: "Tverskaya street"},
			{Key: "lanes", Value: "3"},
			{Key: "maxspeed", Value: "60"},
			{Key: "oneway", Value: "yes"},
		},
		linkType: LINK_PRIMARY,
		lanes:    -1,
		maxSpeed: -1,
	}
	way.processTags(logger)
	if way.Name() != "Tverskaya street" {
		t.Errorf("Name should be 'Tverskaya street', but got '%s'", way.Name())
	}
	if way.lanes != 3 {
		t.Errorf("There should be 3 lanes, but got %d", way.lanes)
	}
	if way.maxSpeed != 60 {
		t.Errorf("Maxspeed should be 60, but got %f", way.maxSpeed)
	}
	if !way.IsOneway() {
		t.Errorf("Way should be oneway")
	}
}

func TestProcessTagsBrokenValues(t *testing.T) {
	logger := zap.NewNop()
	way := &WayData{
		TagMap: osm.Tags{
			{Key: "lanes", Value: "unknown"},
			{Key: "maxspeed", Value: "fast"},
		},
		linkType: LINK_RESIDENTIAL,
		lanes:    -1,
		maxSpeed: -1,
	}
	way.processTags(logger)
	if way.lanes != -1 {
		t.Errorf("Broken lanes value should stay undefined, but got %d", way.lanes)
	}
	if way.maxSpeed != -1 {
		t.Errorf("Broken maxspeed value should stay undefined, but got %f", way.maxSpeed)
	}
}
