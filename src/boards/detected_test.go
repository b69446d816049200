package boards

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DetectedPorts Tests
// =============================================================================

func TestDetectedPorts_SetKeepsPosition(t *testing.T) {
	var detected DetectedPorts
	detected.Set("b", detectedPort(serialPort("B")))
	detected.Set("a", detectedPort(serialPort("A")))
	detected.Set("b", detectedPort(serialPort("B2")))

	if got := detected.Keys(); !equalStrings(got, []string{"b", "a"}) {
		t.Errorf("Keys() = %v", got)
	}
	port, ok := detected.Get("b")
	if !ok || port.Port.Address != "B2" {
		t.Errorf("Get(b) = %+v, %v", port, ok)
	}
	if detected.Len() != 2 {
		t.Errorf("Len() = %d, want 2", detected.Len())
	}
}

func TestDetectedPorts_ZeroValue(t *testing.T) {
	var detected DetectedPorts

	if detected.Len() != 0 || len(detected.Values()) != 0 {
		t.Error("zero value should be empty")
	}
	if _, ok := detected.Get("port+serial://COM1"); ok {
		t.Error("Get() on zero value should fail")
	}
}

func TestDetectedPorts_JSONOrder(t *testing.T) {
	input := `{
		"port+serial://COM9": {"port": {"protocol": "serial", "address": "COM9"}},
		"port+network://10.0.0.1": {"port": {"protocol": "network", "address": "10.0.0.1"}, "boards": [{"name": "Arduino Uno", "fqbn": "arduino:avr:uno"}]},
		"port+serial://COM1": {"port": {"protocol": "serial", "address": "COM1", "addressLabel": "COM1", "properties": {"vid": "0x2341"}}}
	}`

	var detected DetectedPorts
	if err := json.Unmarshal([]byte(input), &detected); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []string{"port+serial://COM9", "port+network://10.0.0.1", "port+serial://COM1"}
	if got := detected.Keys(); !equalStrings(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	network, _ := detected.Get("port+network://10.0.0.1")
	if len(network.Boards) != 1 || network.Boards[0] != uno {
		t.Errorf("boards = %+v", network.Boards)
	}
	com1, _ := detected.Get("port+serial://COM1")
	if com1.Port.Properties["vid"] != "0x2341" || com1.Port.Label != "COM1" {
		t.Errorf("port = %+v", com1.Port)
	}

	data, err := json.Marshal(detected)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	first := strings.Index(string(data), "COM9")
	last := strings.Index(string(data), "COM1\"")
	if first < 0 || last < 0 || first > last {
		t.Errorf("Marshal() lost the key order: %s", data)
	}
}

func TestDetectedPorts_JSONInvalid(t *testing.T) {
	var detected DetectedPorts

	if err := json.Unmarshal([]byte(`[]`), &detected); err == nil {
		t.Error("expected an error for an array")
	}
	if err := json.Unmarshal([]byte(`{"k": 1}`), &detected); err == nil {
		t.Error("expected an error for a non-object entry")
	}
	if err := json.Unmarshal([]byte(`null`), &detected); err != nil {
		t.Errorf("null should decode to an empty snapshot: %v", err)
	}
}

func TestDetectedPorts_YAMLOrder(t *testing.T) {
	input := `
port+serial://COM9:
  port:
    protocol: serial
    address: COM9
port+serial://COM1:
  port:
    protocol: serial
    address: COM1
  boards:
    - name: Arduino Uno
      fqbn: arduino:avr:uno
`

	var detected DetectedPorts
	if err := yaml.Unmarshal([]byte(input), &detected); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []string{"port+serial://COM9", "port+serial://COM1"}
	if got := detected.Keys(); !equalStrings(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	data, err := yaml.Marshal(detected)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var again DetectedPorts
	if err := yaml.Unmarshal(data, &again); err != nil {
		t.Fatalf("Unmarshal(Marshal()) error = %v", err)
	}
	if got := again.Keys(); !equalStrings(got, want) {
		t.Errorf("round trip Keys() = %v, want %v", got, want)
	}
	com1, _ := again.Get("port+serial://COM1")
	if len(com1.Boards) != 1 || com1.Boards[0] != uno {
		t.Errorf("boards = %+v", com1.Boards)
	}
}

func TestDetectedPorts_YAMLInvalid(t *testing.T) {
	var detected DetectedPorts

	if err := yaml.Unmarshal([]byte("- a\n- b\n"), &detected); err == nil {
		t.Error("expected an error for a sequence")
	}
}
