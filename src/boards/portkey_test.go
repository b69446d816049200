package boards

import "testing"

// =============================================================================
// Port key Tests
// =============================================================================

func TestCreatePortKey(t *testing.T) {
	port := serialPort("/dev/cu.usbmodem14201")
	want := "port+serial:///dev/cu.usbmodem14201"

	if got := CreatePortKey(port); got != want {
		t.Errorf("CreatePortKey(Port) = %q, want %q", got, want)
	}
	if got := CreatePortKey(port.Identifier()); got != want {
		t.Errorf("CreatePortKey(PortIdentifier) = %q, want %q", got, want)
	}
	if got := CreatePortKey(detectedPort(port, uno)); got != want {
		t.Errorf("CreatePortKey(DetectedPort) = %q, want %q", got, want)
	}
}

func TestCreatePortKey_IgnoresDisplayFields(t *testing.T) {
	a := serialPort("COM3")
	b := Port{Protocol: "serial", Address: "COM3", Label: "other", ProtocolLabel: "USB", HardwareID: "X"}

	if CreatePortKey(a) != CreatePortKey(b) {
		t.Errorf("keys differ: %q vs %q", CreatePortKey(a), CreatePortKey(b))
	}
}

func TestParsePortKey_RoundTrip(t *testing.T) {
	tests := []PortIdentifier{
		{Protocol: "serial", Address: "/dev/cu.usbmodem14201"},
		{Protocol: "serial", Address: "COM3"},
		{Protocol: "network", Address: "192.168.1.20"},
		{Protocol: "teensy", Address: "usb:0/140000/0/8"},
	}

	for _, id := range tests {
		t.Run(id.Protocol+"/"+id.Address, func(t *testing.T) {
			got, ok := ParsePortKey(CreatePortKey(id))
			if !ok {
				t.Fatalf("ParsePortKey(%q) failed", CreatePortKey(id))
			}
			if got != id {
				t.Errorf("ParsePortKey() = %+v, want %+v", got, id)
			}
		})
	}
}

func TestParsePortKey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "wrong prefix", key: "arduino+serial:///dev/cu.usbmodem14201"},
		{name: "missing address", key: "port+serial://"},
		{name: "missing protocol", key: "port+://dev/cu.usbmodem14201"},
		{name: "missing separator", key: "port+serial:/dev/cu.usbmodem14201"},
		{name: "empty", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if id, ok := ParsePortKey(tt.key); ok {
				t.Errorf("ParsePortKey(%q) = %+v, want failure", tt.key, id)
			}
		})
	}
}

func TestParsePortKey_SeparatorInAddress(t *testing.T) {
	id, ok := ParsePortKey("port+network://host://path")
	if !ok {
		t.Fatal("expected key to parse")
	}
	if id.Protocol != "network" || id.Address != "host://path" {
		t.Errorf("ParsePortKey() = %+v", id)
	}
}

// =============================================================================
// Port identity Tests
// =============================================================================

func TestPortIdentifierEquals(t *testing.T) {
	com1 := PortIdentifier{Protocol: "serial", Address: "COM1"}
	com1Copy := com1
	com2 := PortIdentifier{Protocol: "serial", Address: "COM2"}
	netCom1 := PortIdentifier{Protocol: "network", Address: "COM1"}

	tests := []struct {
		name        string
		left, right *PortIdentifier
		want        bool
	}{
		{"both nil", nil, nil, true},
		{"left nil", nil, &com1, false},
		{"right nil", &com1, nil, false},
		{"same", &com1, &com1Copy, true},
		{"other address", &com1, &com2, false},
		{"other protocol", &com1, &netCom1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PortIdentifierEquals(tt.left, tt.right); got != tt.want {
				t.Errorf("PortIdentifierEquals() = %v, want %v", got, tt.want)
			}
			if got := PortIdentifierEquals(tt.right, tt.left); got != tt.want {
				t.Errorf("PortIdentifierEquals() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindMatchingPortIndex(t *testing.T) {
	ports := []DetectedPort{
		detectedPort(serialPort("COM1")),
		detectedPort(serialPort("COM2")),
		detectedPort(networkPort("COM2")),
	}

	net := PortIdentifier{Protocol: "network", Address: "COM2"}
	if got := FindMatchingPortIndex(&net, ports); got != 2 {
		t.Errorf("FindMatchingPortIndex() = %d, want 2", got)
	}
	missing := PortIdentifier{Protocol: "serial", Address: "COM9"}
	if got := FindMatchingPortIndex(&missing, ports); got != -1 {
		t.Errorf("FindMatchingPortIndex(missing) = %d, want -1", got)
	}
	if got := FindMatchingPortIndex(nil, ports); got != -1 {
		t.Errorf("FindMatchingPortIndex(nil) = %d, want -1", got)
	}
}

// =============================================================================
// Boards config Tests
// =============================================================================

func TestIsDefinedBoardsConfig(t *testing.T) {
	port := PortIdentifier{Protocol: "serial", Address: "COM1"}

	if IsDefinedBoardsConfig(EmptyBoardsConfig()) {
		t.Error("empty config should not be defined")
	}
	if IsDefinedBoardsConfig(BoardsConfig{SelectedBoard: &uno}) {
		t.Error("board only config should not be defined")
	}
	if IsDefinedBoardsConfig(BoardsConfig{SelectedPort: &port}) {
		t.Error("port only config should not be defined")
	}
	if !IsDefinedBoardsConfig(BoardsConfig{SelectedBoard: &uno, SelectedPort: &port}) {
		t.Error("full config should be defined")
	}
}

func TestBoardIdentifierLabel(t *testing.T) {
	if got := BoardIdentifierLabel(uno, true); got != "Arduino Uno (arduino:avr:uno)" {
		t.Errorf("BoardIdentifierLabel(showFQBN) = %q", got)
	}
	if got := BoardIdentifierLabel(uno, false); got != "Arduino Uno" {
		t.Errorf("BoardIdentifierLabel() = %q", got)
	}
	if got := BoardIdentifierLabel(BoardIdentifier{Name: "Custom"}, true); got != "Custom" {
		t.Errorf("BoardIdentifierLabel(no fqbn) = %q", got)
	}
}
