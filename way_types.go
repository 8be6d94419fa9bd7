package osm2net

// Value tables for the key tag of each link class. A way type missing from
// its class table can not be turned into a network link even if some custom
// configuration activates it.
var (
	highwayLinkTypes = map[string]linkComposition{
		"motorway":       {LINK_MOTORWAY, NOT_A_LINK},
		"motorway_link":  {LINK_MOTORWAY, IS_LINK},
		"trunk":          {LINK_TRUNK, NOT_A_LINK},
		"trunk_link":     {LINK_TRUNK, IS_LINK},
		"primary":        {LINK_PRIMARY, NOT_A_LINK},
		"primary_link":   {LINK_PRIMARY, IS_LINK},
		"secondary":      {LINK_SECONDARY, NOT_A_LINK},
		"secondary_link": {LINK_SECONDARY, IS_LINK},
		"tertiary":       {LINK_TERTIARY, NOT_A_LINK},
		"tertiary_link":  {LINK_TERTIARY, IS_LINK},
		"residential":    {LINK_RESIDENTIAL, NOT_A_LINK},
		"living_street":  {LINK_LIVING_STREET, NOT_A_LINK},
		"service":        {LINK_SERVICE, NOT_A_LINK},
		"services":       {LINK_SERVICE, NOT_A_LINK},
		"cycleway":       {LINK_CYCLEWAY, NOT_A_LINK},
		"footway":        {LINK_FOOTWAY, NOT_A_LINK},
		"pedestrian":     {LINK_FOOTWAY, NOT_A_LINK},
		"steps":          {LINK_FOOTWAY, NOT_A_LINK},
		"path":           {LINK_FOOTWAY, NOT_A_LINK},
		"track":          {LINK_TRACK, NOT_A_LINK},
		"unclassified":   {LINK_UNCLASSIFIED, NOT_A_LINK},
		"road":           {LINK_UNCLASSIFIED, NOT_A_LINK},
	}
	railwayLinkTypes = map[string]linkComposition{
		"rail":         {LINK_RAIL, NOT_A_LINK},
		"light_rail":   {LINK_LIGHT_RAIL, NOT_A_LINK},
		"subway":       {LINK_SUBWAY, NOT_A_LINK},
		"tram":         {LINK_TRAM, NOT_A_LINK},
		"narrow_gauge": {LINK_NARROW_GAUGE, NOT_A_LINK},
		"funicular":    {LINK_FUNICULAR, NOT_A_LINK},
		"monorail":     {LINK_MONORAIL, NOT_A_LINK},
	}
	waterwayLinkTypes = map[string]linkComposition{
		"river":   {LINK_RIVER, NOT_A_LINK},
		"canal":   {LINK_CANAL, NOT_A_LINK},
		"fairway": {LINK_FAIRWAY, NOT_A_LINK},
	}
	linkTypesByClass = map[LinkClass]map[string]linkComposition{
		LINK_CLASS_HIGHWAY:  highwayLinkTypes,
		LINK_CLASS_RAILWAY:  railwayLinkTypes,
		LINK_CLASS_WATERWAY: waterwayLinkTypes,
	}
)

// Way types activated for a class when the caller does not provide a custom
// list. Highways follow typical routing needs, rails and waterways activate
// every mapped type.
var defaultWayTypesByClass = map[LinkClass][]string{
	LINK_CLASS_HIGHWAY: {
		"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link",
		"secondary", "secondary_link", "tertiary", "tertiary_link", "residential",
		"living_street", "unclassified", "road",
	},
	LINK_CLASS_RAILWAY: {
		"rail", "light_rail", "subway", "tram", "narrow_gauge", "funicular", "monorail",
	},
	LINK_CLASS_WATERWAY: {
		"river", "canal", "fairway",
	},
}

func findLinkComposition(class LinkClass, wayType string) (linkComposition, bool) {
	types, ok := linkTypesByClass[class]
	if !ok {
		return linkComposition{}, false
	}
	composition, ok := types[wayType]
	return composition, ok
}
