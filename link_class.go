package osm2net

// LinkClass is the transport category a way belongs to. Each class maps to
// the OSM key tag of the same name and owns its own network layer.
type LinkClass uint16

const (
	LINK_CLASS_HIGHWAY = LinkClass(iota + 1)
	LINK_CLASS_RAILWAY
	LINK_CLASS_WATERWAY
)

func (iotaIdx LinkClass) String() string {
	return [...]string{"highway", "railway", "waterway"}[iotaIdx-1]
}

// linkClassOrder fixes the evaluation priority for ways carrying key tags of
// several classes at once: highway wins over railway, railway over waterway.
var linkClassOrder = [...]LinkClass{LINK_CLASS_HIGHWAY, LINK_CLASS_RAILWAY, LINK_CLASS_WATERWAY}

func linkClassFromString(class string) (LinkClass, bool) {
	switch class {
	case "highway":
		return LINK_CLASS_HIGHWAY, true
	case "railway":
		return LINK_CLASS_RAILWAY, true
	case "waterway":
		return LINK_CLASS_WATERWAY, true
	}
	return 0, false
}
