package osm2net

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestFindCentroid(t *testing.T) {
	line := []orb.Point{
		{37.396747, 55.8321},
		{37.397111, 55.831987},
		{37.397222, 55.831927},
		{37.397322, 55.831851},
		{37.397384, 55.83177},
		{37.397415, 55.831684},
		{37.397407, 55.831605},
		{37.397363, 55.831525},
		{37.397283, 55.83144},
		{37.39717, 55.831367},
		{37.397001, 55.831313},
		{37.39682, 55.831286},
		{37.39662, 55.83129},
		{37.396464, 55.831311},
		{37.396345, 55.831346},
		{37.396202, 55.83141},
		{37.396123, 55.831459},
		{37.396059, 55.831517},
		{37.396013, 55.831591},
		{37.395989, 55.831674},
	}
	centroid := findCentroid(line)
	correctCentroid := orb.Point{37.39680299905517, 55.83157265108678}
	if correctCentroid.Lon() != centroid.Lon() {
		t.Errorf("Correct centroid longitude should be %f, but got %f", correctCentroid.Lon(), centroid.Lon())
	}
	if correctCentroid.Lat() != centroid.Lat() {
		t.Errorf("Correct centroid latitude should be %f, but got %f", correctCentroid.Lat(), centroid.Lat())
	}
}

func TestFindCentroidDegenerate(t *testing.T) {
	if centroid := findCentroid(nil); centroid != (orb.Point{}) {
		t.Errorf("Centroid of an empty set should be a zero point, but got %v", centroid)
	}
	single := orb.Point{37.61556, 55.75222}
	if centroid := findCentroid([]orb.Point{single}); centroid != single {
		t.Errorf("Centroid of a single point should be the point itself, but got %v", centroid)
	}
}
