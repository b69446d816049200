package boards

import "math"

// DefaultFirstPartyVendor is the FQBN vendor whose boards sort before all others.
const DefaultFirstPartyVendor = "arduino"

// Placeholders are the fixed labels shown when no board information is available.
type Placeholders struct {
	UnconfirmedBoard string `json:"unconfirmedBoard" yaml:"unconfirmedBoard"`
	SelectBoard      string `json:"selectBoard" yaml:"selectBoard"`
	NotConnected     string `json:"notConnected" yaml:"notConnected"`
	Unknown          string `json:"unknown" yaml:"unknown"`
}

// DefaultPlaceholders returns the English placeholder labels.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		UnconfirmedBoard: "Unconfirmed board",
		SelectBoard:      "Select Board",
		NotConnected:     "[not connected]",
		Unknown:          "Unknown",
	}
}

// Options holds the lookup tables used by the comparators and the labeler.
type Options struct {
	// FirstPartyVendor boards come first in the board ordering.
	FirstPartyVendor string
	// ProtocolPriorities maps a port protocol to its rank. The smaller the
	// number, the higher the priority. Unlisted protocols rank last.
	ProtocolPriorities map[string]int
	// Labels are the display placeholders.
	Labels Placeholders
}

// DefaultOptions returns the options used by the package level helpers.
func DefaultOptions() Options {
	return Options{
		FirstPartyVendor: DefaultFirstPartyVendor,
		ProtocolPriorities: map[string]int{
			"serial":  0,
			"network": 1,
		},
		Labels: DefaultPlaceholders(),
	}
}

var defaultOptions = DefaultOptions()

func (o Options) protocolPriority(protocol string) int {
	if priority, ok := o.ProtocolPriorities[protocol]; ok {
		return priority
	}
	return math.MaxInt
}
