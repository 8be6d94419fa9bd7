package osm2net

import "github.com/paulmach/osm"

// IsInfrastructureWay reports whether the tag set describes a linear
// infrastructure way worth keeping. The decision is a pure read of the tags:
// area objects are rejected first, then the way type of the first matching
// enabled class has to be activated by the configuration. A not activated way
// type rejects the way even when a later class could still match it.
func (cfg *OsmConfiguration) IsInfrastructureWay(tags osm.Tags) bool {
	class, wayType, ok := cfg.ClassifyWay(tags)
	if !ok {
		return false
	}
	return cfg.CheckTag(class, wayType)
}
