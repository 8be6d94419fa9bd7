package main

import (
	"flag"
	"strings"
	"time"

	"github.com/LdDl/ch"
	"github.com/LdDl/osm2net"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	osmFileName   = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf or *.osm file")
	confFileName  = flag.String("conf", "", "Filename of optional YAML settings file. Overrides -network, -tags and -stops")
	networkTypes  = flag.String("network", "highway", "Set of needed link classes (separated by commas). Expected values: highway / railway / waterway")
	tagStr        = flag.String("tags", "", "Set of needed highway tags (separated by commas). Empty set means defaults")
	out           = flag.String("out", "my_graph.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file. E.g.: if file name is 'map.csv' then files 'map_links.csv' and 'map_vertices.csv' will be produced ('map_shortcuts.csv' too when -contract is set)")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	geojsonOut    = flag.String("geojsonout", "", "Optional filename for GeoJSON export of the whole network")
	doContraction = flag.Bool("contract", false, "Prepare contraction hierarchies for the highway layer?")
	doStops       = flag.Bool("stops", false, "Extract public transport stops?")
	verbose       = flag.Bool("verbose", true, "Log progress?")
)

func main() {
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	prepareStops := *doStops
	options := make([]func(*osm2net.Parser), 0)
	if *confFileName != "" {
		settings, err := osm2net.LoadSettings(*confFileName)
		if err != nil {
			logger.Fatal("can't load settings", zap.Error(err))
		}
		prepareStops = prepareStops || settings.PrepareStops
		options = append(options, settings.ParserOptions()...)
	} else {
		options = append(options, osm2net.WithNetworkTypes(strings.Split(*networkTypes, ",")))
		if *tagStr != "" {
			options = append(options, osm2net.WithHighwayTypes(strings.Split(*tagStr, ",")))
		}
		if prepareStops {
			options = append(options, osm2net.WithPrepareStops(true))
		}
	}
	options = append(options, osm2net.WithLogger(logger))

	parser := osm2net.NewParser(*osmFileName, options...)
	if err := parser.ReadOSM(); err != nil {
		logger.Fatal("can't read OSM file", zap.Error(err))
	}

	net, err := parser.BuildNetwork()
	if err != nil {
		logger.Fatal("can't build network", zap.Error(err))
	}
	if err := net.ExportToCSV(*out, strings.ToLower(*geomFormat)); err != nil {
		logger.Fatal("can't export network", zap.Error(err))
	}
	if *geojsonOut != "" {
		if err := net.ExportToGeoJSON(*geojsonOut); err != nil {
			logger.Fatal("can't export network to geojson", zap.Error(err))
		}
	}

	if prepareStops {
		stopData, err := parser.ExtractStops()
		if err != nil {
			logger.Fatal("can't extract stops", zap.Error(err))
		}
		if err := stopData.ExportToCSV(*out); err != nil {
			logger.Fatal("can't export stops", zap.Error(err))
		}
	}

	if *doContraction {
		fnameParts := strings.Split(*out, ".csv")
		fnameShortcuts := fnameParts[0] + "_shortcuts.csv"
		if err := contractNetwork(net, fnameShortcuts, logger); err != nil {
			logger.Fatal("can't prepare contraction hierarchies", zap.Error(err))
		}
	}
}

// contractNetwork fills a routing graph with the highway layer links,
// prepares contraction hierarchies and exports the shortcuts.
func contractNetwork(net *osm2net.NetworkMacroscopic, fname string, logger *zap.Logger) error {
	st := time.Now()
	graph := ch.Graph{}
	edges := 0
	for _, link := range net.Links() {
		if link.LinkClass() != osm2net.LINK_CLASS_HIGHWAY {
			continue
		}
		source := int64(link.SourceVertex())
		target := int64(link.TargetVertex())
		if err := graph.CreateVertex(source); err != nil {
			return errors.Wrap(err, "Can't create source vertex")
		}
		if err := graph.CreateVertex(target); err != nil {
			return errors.Wrap(err, "Can't create target vertex")
		}
		if err := graph.AddEdge(source, target, link.LengthMeters()); err != nil {
			return errors.Wrap(err, "Can't add edge")
		}
		edges++
	}
	if edges == 0 {
		logger.Warn("no highway links found, nothing to contract")
		return nil
	}
	graph.PrepareContractionHierarchies()
	logger.Info("contraction done",
		zap.Int("edges", edges),
		zap.Duration("elapsed", time.Since(st)),
	)
	if err := graph.ExportShortcutsToFile(fname); err != nil {
		return errors.Wrap(err, "Can't export shortcuts")
	}
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
