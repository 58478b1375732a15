package simulation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded input sequence.
//
//	name: fetch the board
//	frames:
//	  - {event: right, times: 11}
//	  - [down, down]
//	  - interact
//
// A scalar entry is a frame with one event, a sequence is a frame with
// several events, and a mapping repeats one event over several frames.
type Script struct {
	Name   string      `yaml:"name"`
	Frames scriptFrames `yaml:"frames"`
}

type scriptFrames []Frame

// UnmarshalYAML implements yaml.Unmarshaler.
func (sf *scriptFrames) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: frames must be a list", value.Line)
	}
	for _, n := range value.Content {
		frames, err := decodeEntry(n)
		if err != nil {
			return err
		}
		*sf = append(*sf, frames...)
	}
	return nil
}

type repeatEntry struct {
	Event string `yaml:"event"`
	Times int    `yaml:"times"`
}

func decodeEntry(n *yaml.Node) ([]Frame, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		ev, err := ParseEvent(n.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return []Frame{F(ev)}, nil

	case yaml.SequenceNode:
		f := Frame{}
		for _, c := range n.Content {
			ev, err := ParseEvent(c.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", c.Line, err)
			}
			f.Events = append(f.Events, ev)
		}
		return []Frame{f}, nil

	case yaml.MappingNode:
		var r repeatEntry
		if err := n.Decode(&r); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		ev, err := ParseEvent(r.Event)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if r.Times < 1 {
			return nil, fmt.Errorf("line %d: times must be at least 1", n.Line)
		}
		out := make([]Frame, r.Times)
		for i := range out {
			out[i] = F(ev)
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: unsupported frame entry", n.Line)
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

// LoadScript reads and decodes a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
