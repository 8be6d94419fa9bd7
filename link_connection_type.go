package osm2net

type LinkConnectionType uint16

const (
	// Plain way
	NOT_A_LINK = LinkConnectionType(iota)
	// Connection ramp between two ways (e.g. motorway_link)
	IS_LINK
)

func (iotaIdx LinkConnectionType) String() string {
	return [...]string{"no", "yes"}[iotaIdx]
}
