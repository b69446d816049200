// Package snapshot decodes the inputs of the boards list from files or
// request bodies: discovery snapshots, boards configs and histories.
// Documents may be YAML or JSON.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/common/errors"
	"github.com/bitswalk/boardlist/src/common/logs"
	"github.com/bitswalk/boardlist/src/common/paths"
	"gopkg.in/yaml.v3"
)

var log = logs.Discard()

// SetLogger sets the logger for the snapshot package
func SetLogger(l *logs.Logger) {
	if l != nil {
		log = l
	}
}

// Input is everything the builder needs for one list. It is the body of the
// boardsd boards-list endpoints.
type Input struct {
	DetectedPorts boards.DetectedPorts     `json:"detectedPorts" yaml:"detectedPorts"`
	BoardsConfig  boards.BoardsConfig      `json:"boardsConfig" yaml:"boardsConfig"`
	History       boards.BoardsListHistory `json:"history,omitempty" yaml:"history,omitempty"`
}

// Validate checks the input against the builder contract.
func (in Input) Validate() error {
	return boards.ValidateInput(in.DetectedPorts, in.BoardsConfig, in.History)
}

// Build validates the input and builds the list with b.
func (in Input) Build(b *boards.Builder) (*boards.List, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return b.Build(in.DetectedPorts, in.BoardsConfig, in.History), nil
}

// detectedPortsDocument accepts both the keyed form of a snapshot and a plain
// list of detected ports, which is keyed by the canonical port keys.
type detectedPortsDocument struct {
	boards.DetectedPorts
}

func (d *detectedPortsDocument) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return value.Decode(&d.DetectedPorts)
	}
	var ports []boards.DetectedPort
	if err := value.Decode(&ports); err != nil {
		return err
	}
	d.DetectedPorts = boards.NewDetectedPorts(ports...)
	return nil
}

func (d *detectedPortsDocument) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return d.DetectedPorts.UnmarshalJSON(data)
	}
	var ports []boards.DetectedPort
	if err := json.Unmarshal(data, &ports); err != nil {
		return err
	}
	d.DetectedPorts = boards.NewDetectedPorts(ports...)
	return nil
}

// DecodeSnapshot reads a discovery snapshot.
func DecodeSnapshot(r io.Reader) (boards.DetectedPorts, error) {
	var doc detectedPortsDocument
	if err := decode(r, &doc); err != nil {
		return boards.DetectedPorts{}, err
	}
	logNonCanonicalKeys(doc.DetectedPorts)
	return doc.DetectedPorts, nil
}

// DecodeBoardsConfig reads a boards config.
func DecodeBoardsConfig(r io.Reader) (boards.BoardsConfig, error) {
	var cfg boards.BoardsConfig
	if err := decode(r, &cfg); err != nil {
		return boards.BoardsConfig{}, err
	}
	return cfg, nil
}

// DecodeHistory reads a boards list history.
func DecodeHistory(r io.Reader) (boards.BoardsListHistory, error) {
	history := boards.BoardsListHistory{}
	if err := decode(r, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// DecodeInput reads a complete input document.
func DecodeInput(r io.Reader) (Input, error) {
	var in Input
	if err := decode(r, &in); err != nil {
		return Input{}, err
	}
	logNonCanonicalKeys(in.DetectedPorts)
	return in, nil
}

// LoadSnapshot reads a discovery snapshot file.
func LoadSnapshot(path string) (boards.DetectedPorts, error) {
	data, err := readFile(path)
	if err != nil {
		return boards.DetectedPorts{}, err
	}
	detected, err := DecodeSnapshot(bytes.NewReader(data))
	if err != nil {
		return boards.DetectedPorts{}, withFile(err, path)
	}
	log.Debug("Loaded snapshot", "path", path, "ports", detected.Len())
	return detected, nil
}

// LoadBoardsConfig reads a boards config file.
func LoadBoardsConfig(path string) (boards.BoardsConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return boards.BoardsConfig{}, err
	}
	cfg, err := DecodeBoardsConfig(bytes.NewReader(data))
	if err != nil {
		return boards.BoardsConfig{}, withFile(err, path)
	}
	return cfg, nil
}

// LoadHistory reads a history file.
func LoadHistory(path string) (boards.BoardsListHistory, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	history, err := DecodeHistory(bytes.NewReader(data))
	if err != nil {
		return nil, withFile(err, path)
	}
	log.Debug("Loaded history", "path", path, "entries", len(history))
	return history, nil
}

func readFile(path string) ([]byte, error) {
	expanded := paths.Expand(path)
	if !paths.IsFile(expanded) {
		return nil, errors.ErrSnapshotRead.WithField(path).WithMessagef("Not a file: %s", path)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, errors.ErrSnapshotRead.WithField(path).WithCause(err)
	}
	return data, nil
}

func withFile(err error, path string) error {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.WithField(path)
	}
	return err
}

// decode reads one YAML or JSON document into v. An empty document leaves
// v untouched. Documents opening with '{' or '[' are read as JSON first,
// since yaml.v3 rejects JSON escapes such as "\/". A YAML flow document
// that is not valid JSON falls back to the YAML decoder.
func decode(r io.Reader, v interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.ErrSnapshotRead.WithCause(err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		err := json.Unmarshal(trimmed, v)
		var syntaxErr *json.SyntaxError
		if err == nil {
			return nil
		}
		if !errors.As(err, &syntaxErr) {
			return errors.ErrSnapshotDecode.WithCause(err)
		}
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.ErrSnapshotDecode.WithCause(err)
	}
	return nil
}

func logNonCanonicalKeys(detected boards.DetectedPorts) {
	for _, key := range detected.Keys() {
		port, _ := detected.Get(key)
		if canonical := boards.CreatePortKey(port); canonical != key {
			log.Debug("Snapshot key is not the port key of its entry",
				"key", key, "port_key", canonical)
		}
	}
}

// String renders a short summary of the input for logs.
func (in Input) String() string {
	return fmt.Sprintf("%d ports, %d history entries, defined config: %t",
		in.DetectedPorts.Len(), len(in.History), boards.IsDefinedBoardsConfig(in.BoardsConfig))
}
