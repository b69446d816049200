package boards

import "strings"

// FQBN is a parsed fully qualified board name: vendor:arch:id followed by
// optional comma separated config options.
type FQBN struct {
	Vendor  string
	Arch    string
	BoardID string
	Options string
}

// ParseFQBN splits a raw FQBN. ok is false when any of the three identity
// segments is missing or empty.
func ParseFQBN(raw string) (fqbn FQBN, ok bool) {
	segments := strings.SplitN(raw, ":", 4)
	if len(segments) < 3 {
		return FQBN{}, false
	}
	for _, segment := range segments[:3] {
		if segment == "" {
			return FQBN{}, false
		}
	}
	fqbn = FQBN{Vendor: segments[0], Arch: segments[1], BoardID: segments[2]}
	if len(segments) == 4 {
		fqbn.Options = segments[3]
	}
	return fqbn, true
}

// String renders the FQBN, without the config options when skipOptions is set.
func (f FQBN) String(skipOptions bool) string {
	s := f.Vendor + ":" + f.Arch + ":" + f.BoardID
	if !skipOptions && f.Options != "" {
		s += ":" + f.Options
	}
	return s
}

// sanitizeFQBN drops the config options of a well-formed FQBN. Malformed
// values are returned untouched.
func sanitizeFQBN(raw string) string {
	fqbn, ok := ParseFQBN(raw)
	if !ok {
		return raw
	}
	return fqbn.String(true)
}

// fqbnVendor returns the vendor segment, empty for a missing or malformed FQBN.
func fqbnVendor(raw string) string {
	if raw == "" {
		return ""
	}
	fqbn, ok := ParseFQBN(raw)
	if !ok {
		return ""
	}
	return fqbn.Vendor
}
