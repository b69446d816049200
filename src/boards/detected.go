package boards

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DetectedPorts is a discovery snapshot: detected ports keyed by port key.
// It keeps the insertion order of the producer so that items comparing equal
// keep their snapshot order. The zero value is an empty snapshot.
type DetectedPorts struct {
	keys    []string
	entries map[string]DetectedPort
}

// NewDetectedPorts builds a snapshot keyed by the canonical key of each port.
func NewDetectedPorts(ports ...DetectedPort) DetectedPorts {
	var d DetectedPorts
	for _, port := range ports {
		d.Set(CreatePortKey(port), port)
	}
	return d
}

// Set adds or replaces the entry for key. Replacing keeps the original position.
func (d *DetectedPorts) Set(key string, port DetectedPort) {
	if d.entries == nil {
		d.entries = make(map[string]DetectedPort)
	}
	if _, exists := d.entries[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = port
}

// Get returns the entry for key.
func (d DetectedPorts) Get(key string) (DetectedPort, bool) {
	port, ok := d.entries[key]
	return port, ok
}

// Len returns the number of entries.
func (d DetectedPorts) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d DetectedPorts) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Values returns the detected ports in insertion order.
func (d DetectedPorts) Values() []DetectedPort {
	values := make([]DetectedPort, 0, len(d.keys))
	for _, key := range d.keys {
		values = append(values, d.entries[key])
	}
	return values
}

// MarshalJSON renders the snapshot as an object in insertion order.
func (d DetectedPorts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(d.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keeping the key order of the document.
func (d *DetectedPorts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*d = DetectedPorts{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("detected ports: expected an object, got %v", tok)
	}

	var result DetectedPorts
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("detected ports: expected a key, got %v", tok)
		}
		var port DetectedPort
		if err := dec.Decode(&port); err != nil {
			return fmt.Errorf("detected ports: %s: %w", key, err)
		}
		result.Set(key, port)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = result
	return nil
}

// MarshalYAML renders the snapshot as a mapping in insertion order.
func (d DetectedPorts) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range d.keys {
		var value yaml.Node
		if err := value.Encode(d.entries[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping keeping the key order of the document.
func (d *DetectedPorts) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*d = DetectedPorts{}
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("detected ports: line %d: expected a mapping", value.Line)
	}

	var result DetectedPorts
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valueNode := value.Content[i], value.Content[i+1]
		var port DetectedPort
		if err := valueNode.Decode(&port); err != nil {
			return fmt.Errorf("detected ports: %s: %w", keyNode.Value, err)
		}
		result.Set(keyNode.Value, port)
	}
	*d = result
	return nil
}
