// Package replay drives a level from a scripted input timeline, either as
// fast as possible or in real time.
package replay

import (
	"fmt"
	"os"
	"sort"

	"github.com/automoto/nurture/core"
	"gopkg.in/yaml.v3"
)

// DefaultMaxTicks bounds scripts that do not set max_ticks.
const DefaultMaxTicks = 60 * 60

// Script is a level name, a tick budget and the inputs to feed in.
type Script struct {
	Level    string  `yaml:"level"`
	MaxTicks int     `yaml:"max_ticks"`
	Events   []Event `yaml:"events"`
}

// Event happens at the start of Tick. Held keys stay down until a later
// event releases them.
type Event struct {
	Tick      int      `yaml:"tick"`
	Hold      []string `yaml:"hold,omitempty"`
	Release   []string `yaml:"release,omitempty"`
	Command   *Command `yaml:"command,omitempty"`
	NextLevel bool     `yaml:"next_level,omitempty"`
}

// Command is a toolbox walk order for a child type.
type Command struct {
	Child string `yaml:"child"`
	Walk  string `yaml:"walk"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script. Events are sorted by tick, keeping
// the written order for events on the same tick.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if s.Level == "" {
		return nil, fmt.Errorf("script has no level")
	}
	if s.MaxTicks < 0 {
		return nil, fmt.Errorf("max_ticks must not be negative")
	}
	if s.MaxTicks == 0 {
		s.MaxTicks = DefaultMaxTicks
	}

	for i, e := range s.Events {
		if e.Tick < 0 {
			return nil, fmt.Errorf("event %d: negative tick", i)
		}
		if _, err := keySet(e.Hold); err != nil {
			return nil, fmt.Errorf("event %d: hold: %w", i, err)
		}
		if _, err := keySet(e.Release); err != nil {
			return nil, fmt.Errorf("event %d: release: %w", i, err)
		}
		if e.Command != nil {
			if _, _, err := e.Command.parse(); err != nil {
				return nil, fmt.Errorf("event %d: command: %w", i, err)
			}
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].Tick < s.Events[j].Tick
	})
	return &s, nil
}

func keySet(names []string) (core.KeySet, error) {
	var set core.KeySet
	for _, name := range names {
		k, err := core.ParseKey(name)
		if err != nil {
			return 0, err
		}
		set = set.With(k)
	}
	return set, nil
}

func (c *Command) parse() (core.ChildType, core.WalkDirection, error) {
	t, err := core.ParseChildType(c.Child)
	if err != nil {
		return 0, 0, err
	}
	dir, err := core.ParseWalkDirection(c.Walk)
	if err != nil {
		return 0, 0, err
	}
	if dir == core.Still {
		return 0, 0, fmt.Errorf("walk must be left or right")
	}
	return t, dir, nil
}
