package osm2net

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// linestringToGeoJSON returns GeoJSON representation of a line geometry
func linestringToGeoJSON(line orb.LineString) (string, error) {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].Lon(), line[i].Lat()}
	}
	b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can't convert line geometry to geojson")
	}
	return string(b), nil
}

// pointToGeoJSON returns GeoJSON representation of a point geometry
func pointToGeoJSON(pt orb.Point) (string, error) {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon(), pt.Lat()}).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can't convert point geometry to geojson")
	}
	return string(b), nil
}

// GeoJSON returns the network links as a GeoJSON feature collection
func (net *NetworkMacroscopic) GeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, link := range net.sortedLinks() {
		pts2d := make([][]float64, len(link.geom))
		for i := range link.geom {
			pts2d[i] = []float64{link.geom[i].Lon(), link.geom[i].Lat()}
		}
		feature := geojson.NewFeature(geojson.NewLineStringGeometry(pts2d))
		feature.SetProperty("id", int(link.ID))
		feature.SetProperty("source_vertex", int(link.sourceVertexID))
		feature.SetProperty("target_vertex", int(link.targetVertexID))
		feature.SetProperty("osm_way_id", int64(link.osmWayID))
		feature.SetProperty("link_class", link.linkClass.String())
		feature.SetProperty("link_type", link.linkType.String())
		feature.SetProperty("control_type", link.controlType.String())
		feature.SetProperty("direction", link.direction.String())
		feature.SetProperty("lanes", link.lanes)
		feature.SetProperty("max_speed", link.maxSpeed)
		feature.SetProperty("free_speed", link.freeSpeed)
		feature.SetProperty("length_meters", link.lengthMeters)
		feature.SetProperty("name", link.name)
		fc.AddFeature(feature)
	}
	return fc.MarshalJSON()
}

// ExportToGeoJSON writes the network links feature collection into a file
func (net *NetworkMacroscopic) ExportToGeoJSON(fname string) error {
	b, err := net.GeoJSON()
	if err != nil {
		return errors.Wrap(err, "Can't prepare geojson")
	}
	err = os.WriteFile(fname, b, 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}

// GeoJSON returns stops and zone centroids as a GeoJSON feature collection
func (stopData *StopData) GeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, stop := range stopData.stops {
		feature := geojson.NewFeature(geojson.NewPointGeometry([]float64{stop.geom.Lon(), stop.geom.Lat()}))
		feature.SetProperty("id", int64(stop.ID))
		feature.SetProperty("zone_id", int(stop.zoneID))
		feature.SetProperty("link_class", stop.linkClass.String())
		feature.SetProperty("kind", stop.kind)
		feature.SetProperty("name", stop.name)
		feature.SetProperty("entity", "stop")
		fc.AddFeature(feature)
	}
	for _, zone := range stopData.zones {
		feature := geojson.NewFeature(geojson.NewPointGeometry([]float64{zone.centroid.Lon(), zone.centroid.Lat()}))
		feature.SetProperty("id", int(zone.ID))
		feature.SetProperty("access_node_id", int64(zone.accessNodeID))
		feature.SetProperty("link_class", zone.linkClass.String())
		feature.SetProperty("stops_num", len(zone.stops))
		feature.SetProperty("name", zone.name)
		feature.SetProperty("entity", "stop_zone")
		fc.AddFeature(feature)
	}
	return fc.MarshalJSON()
}

// ExportToGeoJSON writes the stops feature collection into a file
func (stopData *StopData) ExportToGeoJSON(fname string) error {
	b, err := stopData.GeoJSON()
	if err != nil {
		return errors.Wrap(err, "Can't prepare geojson")
	}
	err = os.WriteFile(fname, b, 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}
