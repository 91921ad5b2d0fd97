// Package replay drives rounds from a recorded script of direction changes.
// Scripts are YAML files so they can be written by hand:
//
//	steps:
//	  - {tick: 1, player: 1, dir: right}
//	  - {tick: 1, player: 2, dir: left}
//	  - {tick: 9, player: 1, dir: up}
package replay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// ErrInvalidStep is returned when a script step cannot be applied.
var ErrInvalidStep = errors.New("replay: invalid step")

// Step is one recorded direction change.
type Step struct {
	Tick   uint64        `yaml:"tick"`   // Round tick the direction is polled on, from 1
	Player core.PlayerID `yaml:"player"` // 1 or 2
	Dir    string        `yaml:"dir"`    // up, down, left, right
}

// Script is a recorded round.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: parse: %w", err)
	}
	for i, st := range s.Steps {
		if st.Tick == 0 {
			return nil, fmt.Errorf("%w: step %d: tick must start at 1", ErrInvalidStep, i)
		}
		if st.Player != core.Player1 && st.Player != core.Player2 {
			return nil, fmt.Errorf("%w: step %d: unknown player %d", ErrInvalidStep, i, st.Player)
		}
		if _, err := ParseDirection(st.Dir); err != nil {
			return nil, fmt.Errorf("%w: step %d: %v", ErrInvalidStep, i, err)
		}
	}
	return &s, nil
}

// ParseDirection converts a direction name to its unit vector.
func ParseDirection(name string) (core.Point, error) {
	switch strings.ToLower(name) {
	case "up":
		return core.DirUp, nil
	case "down":
		return core.DirDown, nil
	case "left":
		return core.DirLeft, nil
	case "right":
		return core.DirRight, nil
	default:
		return core.Zero, fmt.Errorf("unknown direction %q", name)
	}
}
