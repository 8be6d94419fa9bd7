package osm2net

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// Geometry representations for CSV export
const (
	GEOM_FORMAT_WKT     = "wkt"
	GEOM_FORMAT_GEOJSON = "geojson"
)

// NetworkMacroscopic is the built network: directed links between vertices.
// Links of every layer live in the same map, the vertex identifier space is
// shared too.
type NetworkMacroscopic struct {
	links    map[NetworkLinkID]*NetworkLink
	vertices map[NetworkVertexID]*NetworkVertex
}

// Links returns the live map of links keyed by identifier. Callers must
// treat it as read-only.
func (net *NetworkMacroscopic) Links() map[NetworkLinkID]*NetworkLink {
	return net.links
}

// Vertices returns the live map of vertices keyed by identifier. Callers
// must treat it as read-only.
func (net *NetworkMacroscopic) Vertices() map[NetworkVertexID]*NetworkVertex {
	return net.vertices
}

func (net *NetworkMacroscopic) sortedLinks() []*NetworkLink {
	links := make([]*NetworkLink, 0, len(net.links))
	for _, link := range net.links {
		links = append(links, link)
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].ID < links[j].ID
	})
	return links
}

func (net *NetworkMacroscopic) sortedVertices() []*NetworkVertex {
	vertices := make([]*NetworkVertex, 0, len(net.vertices))
	for _, vertex := range net.vertices {
		vertices = append(vertices, vertex)
	}
	sort.Slice(vertices, func(i, j int) bool {
		return vertices[i].ID < vertices[j].ID
	})
	return vertices
}

// ExportToCSV writes links and vertices into two semicolon separated files
// next to the given filename. geomFormat picks the representation of link
// geometry: "wkt" (also the default for an empty string) or "geojson".
func (net *NetworkMacroscopic) ExportToCSV(fname string, geomFormat string) error {
	if geomFormat == "" {
		geomFormat = GEOM_FORMAT_WKT
	}
	if geomFormat != GEOM_FORMAT_WKT && geomFormat != GEOM_FORMAT_GEOJSON {
		return fmt.Errorf("Geometry format '%s' is not handled yet. Only '%s' and '%s' are supported", geomFormat, GEOM_FORMAT_WKT, GEOM_FORMAT_GEOJSON)
	}

	fnameParts := strings.Split(fname, ".csv")
	fnameVertices := fnameParts[0] + "_vertices.csv"
	fnameLinks := fnameParts[0] + "_links.csv"

	err := net.exportVerticesToCSV(fnameVertices)
	if err != nil {
		return errors.Wrap(err, "Can't export vertices")
	}

	err = net.exportLinksToCSV(fnameLinks, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export links")
	}

	return nil
}

func (net *NetworkMacroscopic) exportLinksToCSV(fname string, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "source_vertex", "target_vertex", "osm_way_id", "source_osm_node", "target_osm_node", "link_class", "is_link", "link_type", "control_type", "direction", "was_bidirectional", "lanes", "max_speed", "free_speed", "length_meters", "name", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, link := range net.sortedLinks() {
		geom, err := linkGeometryCell(link, geomFormat)
		if err != nil {
			return errors.Wrapf(err, "Can't encode geometry for link %d", link.ID)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", link.ID),
			fmt.Sprintf("%d", link.sourceVertexID),
			fmt.Sprintf("%d", link.targetVertexID),
			fmt.Sprintf("%d", link.osmWayID),
			fmt.Sprintf("%d", link.sourceOsmNodeID),
			fmt.Sprintf("%d", link.targetOsmNodeID),
			link.linkClass.String(),
			link.linkConnectionType.String(),
			link.linkType.String(),
			link.controlType.String(),
			link.direction.String(),
			fmt.Sprintf("%t", link.wasBidirectional),
			fmt.Sprintf("%d", link.GetLanes()),
			fmt.Sprintf("%f", link.maxSpeed),
			fmt.Sprintf("%f", link.freeSpeed),
			fmt.Sprintf("%f", link.lengthMeters),
			link.name,
			geom,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write link")
		}
	}
	return nil
}

func (net *NetworkMacroscopic) exportVerticesToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "osm_node_id", "link_class", "control_type", "name", "longitude", "latitude"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, vertex := range net.sortedVertices() {
		err = writer.Write([]string{
			fmt.Sprintf("%d", vertex.ID),
			fmt.Sprintf("%d", vertex.osmNodeID),
			vertex.linkClass.String(),
			vertex.controlType.String(),
			vertex.name,
			fmt.Sprintf("%f", vertex.geom[0]),
			fmt.Sprintf("%f", vertex.geom[1]),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write vertex")
		}
	}
	return nil
}

func linkGeometryCell(link *NetworkLink, geomFormat string) (string, error) {
	if geomFormat == GEOM_FORMAT_GEOJSON {
		return linestringToGeoJSON(link.geom)
	}
	return wkt.MarshalString(link.geom), nil
}
