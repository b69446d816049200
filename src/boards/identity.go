// Package boards derives the deduplicated, ordered list of board+port pairs
// shown to a user when picking the board attached to a communication port.
//
// The package works on one discovery snapshot at a time. Every entry point is
// a pure function of its arguments: nothing is cached between calls and the
// produced List is an immutable snapshot.
package boards

// BoardIdentifier is the lightweight identity of a board.
//
// Name is a display fallback only and never participates in identity when
// both sides carry an FQBN. FQBN may contain board config options
// (vendor:arch:id:opt=value,...). An empty FQBN means the board has none, for
// example when it comes from a board search of a platform that is not installed.
type BoardIdentifier struct {
	Name string `json:"name" yaml:"name"`
	FQBN string `json:"fqbn,omitempty" yaml:"fqbn,omitempty"`
}

// PortIdentifier is the bare minimum information to identify a port.
type PortIdentifier struct {
	Protocol string `json:"protocol" yaml:"protocol"`
	Address  string `json:"address" yaml:"address"`
}

// Port is a PortIdentifier with display-only details. Labels, the hardware ID
// and properties never affect identity.
type Port struct {
	Protocol      string            `json:"protocol" yaml:"protocol"`
	Address       string            `json:"address" yaml:"address"`
	Label         string            `json:"addressLabel" yaml:"addressLabel"`
	ProtocolLabel string            `json:"protocolLabel" yaml:"protocolLabel"`
	HardwareID    string            `json:"hardwareId,omitempty" yaml:"hardwareId,omitempty"`
	Properties    map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// DetectedPort is one entry of a discovery snapshot: a port with zero or more
// boards the discovery associates with it. More than one board means the
// discovery is ambiguous, e.g. several platforms claim the same USB signature.
type DetectedPort struct {
	Port   Port              `json:"port" yaml:"port"`
	Boards []BoardIdentifier `json:"boards,omitempty" yaml:"boards,omitempty"`
}

// Identifiable is implemented by every port shape a port key can be created from.
type Identifiable interface {
	Identifier() PortIdentifier
}

// Identifier returns the identifier itself.
func (p PortIdentifier) Identifier() PortIdentifier {
	return p
}

// Identifier strips the display-only fields.
func (p Port) Identifier() PortIdentifier {
	return PortIdentifier{Protocol: p.Protocol, Address: p.Address}
}

// Identifier returns the identifier of the detected port.
func (d DetectedPort) Identifier() PortIdentifier {
	return d.Port.Identifier()
}

// BoardsConfig is the caller's current board+port selection.
type BoardsConfig struct {
	SelectedBoard *BoardIdentifier `json:"selectedBoard,omitempty" yaml:"selectedBoard,omitempty"`
	SelectedPort  *PortIdentifier  `json:"selectedPort,omitempty" yaml:"selectedPort,omitempty"`
}

// EmptyBoardsConfig returns a config with neither board nor port selected.
func EmptyBoardsConfig() BoardsConfig {
	return BoardsConfig{}
}

// IsDefinedBoardsConfig reports whether both the board and the port are selected.
func IsDefinedBoardsConfig(cfg BoardsConfig) bool {
	return cfg.SelectedBoard != nil && cfg.SelectedPort != nil
}

// BoardsListHistory stores the board the user last associated manually with
// a port, keyed by port key.
type BoardsListHistory map[string]BoardIdentifier

// BoardIdentifierLabel returns the board name, followed by the FQBN in
// parentheses when showFQBN is set and the board has one.
func BoardIdentifierLabel(board BoardIdentifier, showFQBN bool) string {
	label := board.Name
	if board.FQBN != "" && showFQBN {
		label += " (" + board.FQBN + ")"
	}
	return label
}
