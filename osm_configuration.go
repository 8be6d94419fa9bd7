package osm2net

import (
	"fmt"

	"github.com/paulmach/osm"
)

// EntityConfiguration carries the activation policy for a single link class:
// the OSM key tag to look at, whether the class takes part in parsing at all
// and the set of activated key tag values.
type EntityConfiguration struct {
	EntityName string
	Enabled    bool
	Types      map[string]struct{}
}

// CheckTag Checks if incoming way type is activated for the entity
func (entity *EntityConfiguration) CheckTag(wayType string) bool {
	if _, ok := entity.Types[wayType]; ok {
		return true
	}
	return false
}

// OsmConfiguration Allows to filter ways by link class and way type tags from OSM data
type OsmConfiguration struct {
	entities map[LinkClass]*EntityConfiguration
}

// NewOsmConfiguration returns configuration with the given link classes
// enabled. Empty networkTypes falls back to highways only. wayTypes may
// override the default activated way types of a class; nil or empty slices
// keep the defaults.
func NewOsmConfiguration(networkTypes []string, wayTypes map[LinkClass][]string) (*OsmConfiguration, error) {
	if len(networkTypes) == 0 {
		networkTypes = []string{"highway"}
	}
	cfg := &OsmConfiguration{
		entities: make(map[LinkClass]*EntityConfiguration),
	}
	for _, class := range linkClassOrder {
		cfg.entities[class] = &EntityConfiguration{
			EntityName: class.String(),
			Enabled:    false,
			Types:      prepareTagsSet(defaultWayTypesByClass[class]),
		}
	}
	for _, networkType := range networkTypes {
		class, ok := linkClassFromString(networkType)
		if !ok {
			return nil, fmt.Errorf("Network type is not supported: '%s'", networkType)
		}
		cfg.entities[class].Enabled = true
	}
	for class, types := range wayTypes {
		if _, ok := cfg.entities[class]; !ok {
			return nil, fmt.Errorf("Link class is not supported: '%d'", class)
		}
		if len(types) != 0 {
			cfg.entities[class].Types = prepareTagsSet(types)
		}
	}
	return cfg, nil
}

// Entity returns the configuration of the given link class (nil for unknown class)
func (cfg *OsmConfiguration) Entity(class LinkClass) *EntityConfiguration {
	return cfg.entities[class]
}

// EnabledClasses returns enabled link classes in evaluation order
func (cfg *OsmConfiguration) EnabledClasses() []LinkClass {
	classes := make([]LinkClass, 0, len(linkClassOrder))
	for _, class := range linkClassOrder {
		if entity := cfg.entities[class]; entity != nil && entity.Enabled {
			classes = append(classes, class)
		}
	}
	return classes
}

// IsClassEnabled reports whether the link class takes part in parsing
func (cfg *OsmConfiguration) IsClassEnabled(class LinkClass) bool {
	entity, ok := cfg.entities[class]
	return ok && entity.Enabled
}

// CheckTag Checks if way type is activated for the given link class
func (cfg *OsmConfiguration) CheckTag(class LinkClass, wayType string) bool {
	entity, ok := cfg.entities[class]
	if !ok {
		return false
	}
	return entity.CheckTag(wayType)
}

// ClassifyWay resolves the link class and the raw way type value for the
// given tag set. Area objects (area tag with any value except "no") carry no
// linear infrastructure and stay unclassified. Classes are evaluated in fixed
// order, see linkClassOrder; the first enabled class whose key tag is present
// wins, disabled classes are skipped entirely.
func (cfg *OsmConfiguration) ClassifyWay(tags osm.Tags) (LinkClass, string, bool) {
	if area := tags.Find("area"); area != "" && area != "no" {
		return 0, "", false
	}
	for _, class := range linkClassOrder {
		entity := cfg.entities[class]
		if entity == nil || !entity.Enabled {
			continue
		}
		if wayType := tags.Find(entity.EntityName); wayType != "" {
			return class, wayType, true
		}
	}
	return 0, "", false
}

func prepareTagsSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}
