package boards

import "strings"

// Port keys are formatted as port+<protocol>://<address>.
const (
	portKeyPrefix    = "port+"
	portKeySeparator = "://"
)

// CreatePortKey encodes the identity of any port shape into its canonical key.
func CreatePortKey(port Identifiable) string {
	id := port.Identifier()
	return portKeyPrefix + id.Protocol + portKeySeparator + id.Address
}

// ParsePortKey rehydrates a port identifier from its key. The protocol ends at
// the first separator. ok is false for keys without the prefix, without a
// separator, or with an empty protocol or address.
func ParsePortKey(key string) (id PortIdentifier, ok bool) {
	rest, found := strings.CutPrefix(key, portKeyPrefix)
	if !found {
		return PortIdentifier{}, false
	}
	protocol, address, found := strings.Cut(rest, portKeySeparator)
	if !found || protocol == "" || address == "" {
		return PortIdentifier{}, false
	}
	return PortIdentifier{Protocol: protocol, Address: address}, true
}

// PortIdentifierEquals is true when both are nil, or both are set with the
// same protocol and address.
func PortIdentifierEquals(left, right *PortIdentifier) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return left.Protocol == right.Protocol && left.Address == right.Address
}

// FindMatchingPortIndex returns the index of the port with the same key as
// toFind, or -1 when toFind is nil or absent.
func FindMatchingPortIndex[T Identifiable](toFind *PortIdentifier, ports []T) int {
	if toFind == nil {
		return -1
	}
	key := CreatePortKey(*toFind)
	for i, port := range ports {
		if CreatePortKey(port) == key {
			return i
		}
	}
	return -1
}
