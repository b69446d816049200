package boards

var (
	uno            = BoardIdentifier{Name: "Arduino Uno", FQBN: "arduino:avr:uno"}
	mkr1000        = BoardIdentifier{Name: "Arduino MKR1000", FQBN: "arduino:samd:mkr1000"}
	nanoEsp32      = BoardIdentifier{Name: "Arduino Nano ESP32", FQBN: "arduino:esp32:nano_nora"}
	esp32NanoEsp32 = BoardIdentifier{Name: "Arduino Nano ESP32", FQBN: "esp32:esp32:nano_nora"}
	esp32S3Box     = BoardIdentifier{Name: "ESP32-S3-Box", FQBN: "esp32:esp32:esp32s3box"}
	esp32C3        = BoardIdentifier{Name: "ESP32C3 Dev Module", FQBN: "esp32:esp32:esp32c3"}
)

func serialPort(address string) Port {
	return Port{
		Protocol:      "serial",
		Address:       address,
		Label:         address,
		ProtocolLabel: "Serial Port (USB)",
		HardwareID:    "SN-" + address,
		Properties:    map[string]string{"vid": "0x2341", "pid": "0x0043"},
	}
}

func networkPort(address string) Port {
	return Port{
		Protocol:      "network",
		Address:       address,
		Label:         address,
		ProtocolLabel: "Network Port",
	}
}

func detectedPort(port Port, boards ...BoardIdentifier) DetectedPort {
	return DetectedPort{Port: port, Boards: boards}
}

func historyOf(port Port, board BoardIdentifier) BoardsListHistory {
	return BoardsListHistory{CreatePortKey(port): board}
}

func selection(board BoardIdentifier, port Port) BoardsConfig {
	id := port.Identifier()
	return BoardsConfig{SelectedBoard: &board, SelectedPort: &id}
}

func itemAddresses(list *List) []string {
	addresses := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		addresses = append(addresses, item.Port().Address)
	}
	return addresses
}

func portAddresses(ports []DetectedPort) []string {
	addresses := make([]string, 0, len(ports))
	for _, port := range ports {
		addresses = append(addresses, port.Port.Address)
	}
	return addresses
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
