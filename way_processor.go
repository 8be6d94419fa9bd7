package osm2net

import (
	"fmt"

	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

// WayHandler consumes ways that survived exclusion and classification.
// Returning an error marks the single way as failed without stopping the
// scan.
type WayHandler interface {
	HandleWay(way *osm.Way, tags osm.Tags) error
}

// WayHandlerFunc adapts a plain function to the WayHandler interface.
type WayHandlerFunc func(way *osm.Way, tags osm.Tags) error

// HandleWay calls the wrapped function
func (handle WayHandlerFunc) HandleWay(way *osm.Way, tags osm.Tags) error {
	return handle(way, tags)
}

// WayError is a recorded handler failure for a single way.
type WayError struct {
	Message string
	WayID   osm.WayID
}

// ProcessingStats aggregates way filtering counters of a single read pass.
type ProcessingStats struct {
	Scanned  int
	Excluded int
	Rejected int
	Accepted int
	Failed   int
}

// WayProcessor guards way handling during a scan: it drops explicitly
// excluded ways, rejects ways the configuration does not activate and
// isolates handler failures so one broken way never aborts the pass.
type WayProcessor struct {
	cfg          *OsmConfiguration
	excludedWays map[int64]struct{}
	logger       *zap.Logger
	failures     []WayError
	stats        ProcessingStats
}

// NewWayProcessor prepares a processor for the given configuration. The
// configuration is mandatory, the logger may be nil.
func NewWayProcessor(cfg *OsmConfiguration, excludedWays []int64, logger *zap.Logger) (*WayProcessor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Configuration is not provided")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	excluded := make(map[int64]struct{}, len(excludedWays))
	for _, wayID := range excludedWays {
		excluded[wayID] = struct{}{}
	}
	return &WayProcessor{
		cfg:          cfg,
		excludedWays: excluded,
		logger:       logger,
	}, nil
}

// Process runs the given way through exclusion, classification and the
// handler. Handler errors are collected and logged, the way is skipped.
func (processor *WayProcessor) Process(way *osm.Way, handler WayHandler) {
	processor.stats.Scanned++
	if _, ok := processor.excludedWays[int64(way.ID)]; ok {
		processor.stats.Excluded++
		return
	}
	tags := way.Tags
	if !processor.cfg.IsInfrastructureWay(tags) {
		processor.stats.Rejected++
		return
	}
	if err := handler.HandleWay(way, tags); err != nil {
		processor.stats.Failed++
		processor.failures = append(processor.failures, WayError{
			Message: err.Error(),
			WayID:   way.ID,
		})
		processor.logger.Warn("way handling failed",
			zap.Int64("way_id", int64(way.ID)),
			zap.Error(err),
		)
		return
	}
	processor.stats.Accepted++
}

// Stats returns filtering counters collected so far
func (processor *WayProcessor) Stats() ProcessingStats {
	return processor.stats
}

// Failures returns recorded handler failures in scan order
func (processor *WayProcessor) Failures() []WayError {
	return processor.failures
}
