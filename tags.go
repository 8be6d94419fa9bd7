package osm2net

var (
	junctionTypes = map[string]struct{}{
		"circular":   {},
		"roundabout": {},
	}

	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}

	stopHighwayTags = map[string]struct{}{
		"bus_stop": {},
		"platform": {},
	}

	stopRailwayTags = map[string]struct{}{
		"halt":      {},
		"platform":  {},
		"station":   {},
		"tram_stop": {},
	}

	stopAmenityTags = map[string]struct{}{
		"ferry_terminal": {},
	}
)
