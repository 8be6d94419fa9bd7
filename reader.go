package osm2net

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// OSMScanner is an interface for OSM file scanners (PBF or XML)
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// wayCollector consumes accepted ways: it resolves the link composition,
// evaluates the network related tags and pre-registers every node of the
// way.
type wayCollector struct {
	cfg    *OsmConfiguration
	data   *OSMData
	logger *zap.Logger
	ways   []*WayData
}

func (collector *wayCollector) HandleWay(way *osm.Way, tags osm.Tags) error {
	if len(way.Nodes) < 2 {
		return errors.Errorf("Way does not have enough nodes: %d", len(way.Nodes))
	}
	class, wayType, ok := collector.cfg.ClassifyWay(tags)
	if !ok {
		return errors.Errorf("Way lost its class during handling")
	}
	composition, ok := findLinkComposition(class, wayType)
	if !ok {
		return errors.Errorf("Unhandled %s type: '%s'", class, wayType)
	}
	prepared := newWayData(way)
	prepared.wayType = wayType
	prepared.linkClass = class
	prepared.linkType = composition.linkType
	prepared.linkConnectionType = composition.linkConnectionType
	prepared.processTags(collector.logger)
	for _, nodeID := range prepared.Nodes {
		collector.data.PreRegisterNode(nodeID)
	}
	collector.ways = append(collector.ways, prepared)
	return nil
}

// ReadOSM scans the file twice: ways are collected and their nodes marked as
// needed first, then the needed nodes are registered. XML (.osm, .xml) and
// PBF (.pbf) files are supported.
func (parser *Parser) ReadOSM() error {
	st := time.Now()
	if err := parser.prepare(); err != nil {
		return err
	}
	parser.logger.Info("start reading OSM file", zap.String("filename", parser.filename))

	file, err := os.Open(parser.filename)
	if err != nil {
		return errors.Wrapf(err, "Can't open file: '%s'", parser.filename)
	}
	defer file.Close()

	scannerWays, err := parser.newScanner(file)
	if err != nil {
		return err
	}
	defer scannerWays.Close()
	if err := parser.scanWays(scannerWays); err != nil {
		return errors.Wrap(err, "Can't collect ways")
	}

	// Return to the beginning of the file for the nodes pass
	if _, err := file.Seek(0, 0); err != nil {
		return errors.Wrap(err, "Can't rewind file")
	}
	scannerNodes, err := parser.newScanner(file)
	if err != nil {
		return err
	}
	defer scannerNodes.Close()
	if err := parser.scanNodes(scannerNodes); err != nil {
		return errors.Wrap(err, "Can't register nodes")
	}

	stats := parser.processor.Stats()
	parser.logger.Info("done reading OSM file",
		zap.String("filename", parser.filename),
		zap.Int("ways_scanned", stats.Scanned),
		zap.Int("ways_accepted", stats.Accepted),
		zap.Int("ways_excluded", stats.Excluded),
		zap.Int("ways_rejected", stats.Rejected),
		zap.Int("ways_failed", stats.Failed),
		zap.Int("nodes_needed", parser.data.NumPreRegistered()),
		zap.Int("nodes_registered", parser.data.NumRegisteredNodes()),
		zap.Duration("elapsed", time.Since(st)),
	)
	return nil
}

// prepare builds configuration, registry and way processor for the run. The
// registry survives between runs and is reset instead of rebuilt.
func (parser *Parser) prepare() error {
	if parser.cfg == nil {
		cfg, err := NewOsmConfiguration(parser.networkTypes, map[LinkClass][]string{
			LINK_CLASS_HIGHWAY:  parser.highwayTypes,
			LINK_CLASS_RAILWAY:  parser.railwayTypes,
			LINK_CLASS_WATERWAY: parser.waterwayTypes,
		})
		if err != nil {
			return errors.Wrap(err, "Can't prepare configuration")
		}
		parser.cfg = cfg
	}
	if parser.data == nil {
		data, err := NewOSMData(parser.cfg, parser.boundary, NetworkVertexID(parser.startVertexID))
		if err != nil {
			return errors.Wrap(err, "Can't prepare registry")
		}
		parser.data = data
	} else {
		parser.data.Reset()
	}
	processor, err := NewWayProcessor(parser.cfg, parser.excludedWays, parser.logger)
	if err != nil {
		return errors.Wrap(err, "Can't prepare way processor")
	}
	parser.processor = processor
	parser.ways = nil
	return nil
}

func (parser *Parser) newScanner(file *os.File) (OSMScanner, error) {
	fileExtension := strings.ToLower(filepath.Ext(parser.filename))
	switch fileExtension {
	case ".osm", ".xml":
		return osmxml.New(context.Background(), file), nil
	case ".pbf":
		return osmpbf.New(context.Background(), file, 4), nil
	}
	return nil, fmt.Errorf("File extension '%s' is not handled yet. Only '.osm', '.xml' and '.pbf' are supported", fileExtension)
}

func (parser *Parser) scanWays(scanner OSMScanner) error {
	collector := &wayCollector{
		cfg:    parser.cfg,
		data:   parser.data,
		logger: parser.logger,
	}
	for scanner.Scan() {
		obj := scanner.Object()
		if obj.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way, ok := obj.(*osm.Way)
		if !ok {
			continue
		}
		parser.processor.Process(way, collector)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	parser.ways = collector.ways
	return nil
}

func (parser *Parser) scanNodes(scanner OSMScanner) error {
	for scanner.Scan() {
		obj := scanner.Object()
		if obj.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node, ok := obj.(*osm.Node)
		if !ok {
			continue
		}
		// Stop tagged nodes of enabled classes are kept for the public
		// transport phase even when no collected way needs them
		keepStop := false
		if parser.prepareStops {
			if class, _, ok := findStopTag(node.Tags); ok {
				keepStop = parser.cfg.IsClassEnabled(class)
			}
		}
		if !parser.data.IsPreRegistered(node.ID) && !keepStop {
			continue
		}
		point := orb.Point{node.Lon, node.Lat}
		if !parser.data.WithinBoundary(point) {
			continue
		}
		parser.data.RegisterNode(NewNodeFromOSM(node))
		parser.data.ExpandBoundingBox(point)
	}
	return scanner.Err()
}
