package osm2net

type LinkType uint16

const (
	LINK_MOTORWAY = LinkType(iota + 1)
	LINK_TRUNK
	LINK_PRIMARY
	LINK_SECONDARY
	LINK_TERTIARY
	LINK_RESIDENTIAL
	LINK_LIVING_STREET
	LINK_SERVICE
	LINK_CYCLEWAY
	LINK_FOOTWAY
	LINK_TRACK
	LINK_UNCLASSIFIED
	LINK_CONNECTOR
	LINK_RAIL
	LINK_LIGHT_RAIL
	LINK_SUBWAY
	LINK_TRAM
	LINK_NARROW_GAUGE
	LINK_FUNICULAR
	LINK_MONORAIL
	LINK_RIVER
	LINK_CANAL
	LINK_FAIRWAY
)

func (iotaIdx LinkType) String() string {
	return [...]string{"motorway", "trunk", "primary", "secondary", "tertiary", "residential", "living_street", "service", "cycleway", "footway", "track", "unclassified", "connector", "rail", "light_rail", "subway", "tram", "narrow_gauge", "funicular", "monorail", "river", "canal", "fairway"}[iotaIdx-1]
}

type linkComposition struct {
	linkType           LinkType
	linkConnectionType LinkConnectionType
}

var (
	onewayDefaultByLink = map[LinkType]bool{
		LINK_MOTORWAY:      false,
		LINK_TRUNK:         false,
		LINK_PRIMARY:       false,
		LINK_SECONDARY:     false,
		LINK_TERTIARY:      false,
		LINK_RESIDENTIAL:   false,
		LINK_LIVING_STREET: false,
		LINK_SERVICE:       false,
		LINK_CYCLEWAY:      true,
		LINK_FOOTWAY:       true,
		LINK_TRACK:         true,
		LINK_UNCLASSIFIED:  false,
		LINK_CONNECTOR:     false,
		LINK_RAIL:          true,
		LINK_LIGHT_RAIL:    true,
		LINK_SUBWAY:        true,
		LINK_TRAM:          true,
		LINK_NARROW_GAUGE:  true,
		LINK_FUNICULAR:     false,
		LINK_MONORAIL:      true,
		LINK_RIVER:         true,
		LINK_CANAL:         false,
		LINK_FAIRWAY:       false,
	}
	defaultLanesByLinkType = map[LinkType]int{
		LINK_MOTORWAY:      4,
		LINK_TRUNK:         3,
		LINK_PRIMARY:       3,
		LINK_SECONDARY:     2,
		LINK_TERTIARY:      2,
		LINK_RESIDENTIAL:   1,
		LINK_LIVING_STREET: 1,
		LINK_SERVICE:       1,
		LINK_CYCLEWAY:      1,
		LINK_FOOTWAY:       1,
		LINK_TRACK:         1,
		LINK_UNCLASSIFIED:  1,
		LINK_CONNECTOR:     2,
	}
	defaultSpeedByLinkType = map[LinkType]float64{
		LINK_MOTORWAY:      120,
		LINK_TRUNK:         100,
		LINK_PRIMARY:       80,
		LINK_SECONDARY:     60,
		LINK_TERTIARY:      40,
		LINK_RESIDENTIAL:   30,
		LINK_LIVING_STREET: 20,
		LINK_SERVICE:       30,
		LINK_CYCLEWAY:      5,
		LINK_FOOTWAY:       5,
		LINK_TRACK:         30,
		LINK_UNCLASSIFIED:  30,
		LINK_CONNECTOR:     120,
		LINK_RAIL:          80,
		LINK_LIGHT_RAIL:    50,
		LINK_SUBWAY:        45,
		LINK_TRAM:          30,
		LINK_NARROW_GAUGE:  40,
		LINK_FUNICULAR:     20,
		LINK_MONORAIL:      60,
		LINK_RIVER:         10,
		LINK_CANAL:         8,
		LINK_FAIRWAY:       15,
	}
)

func defaultOnewayForLink(linkType LinkType) bool {
	if oneway, ok := onewayDefaultByLink[linkType]; ok {
		return oneway
	}
	return false
}

func defaultLanesForLink(linkType LinkType) int {
	if lanes, ok := defaultLanesByLinkType[linkType]; ok {
		return lanes
	}
	return 1
}

func defaultSpeedForLink(linkType LinkType) float64 {
	if speed, ok := defaultSpeedByLinkType[linkType]; ok {
		return speed
	}
	return 30
}
