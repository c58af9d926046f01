// Package score keeps the tally of saved persons and toolbox moves across
// levels.
package score

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/core"
)

// Score counts saves per person kind and the walk commands given to each
// child type. The zero value is an empty score.
type Score struct {
	Player   int
	Children map[core.ChildType]int
	Moves    map[core.ChildType]int
}

func (s *Score) SavedPlayer() { s.Player++ }

func (s *Score) SavedChild(t core.ChildType) {
	if s.Children == nil {
		s.Children = make(map[core.ChildType]int)
	}
	s.Children[t]++
}

// Moved counts one accepted toolbox command for t.
func (s *Score) Moved(t core.ChildType) {
	if s.Moves == nil {
		s.Moves = make(map[core.ChildType]int)
	}
	s.Moves[t]++
}

// Add counts everyone who was in the goal when a level was finished.
func (s *Score) Add(r core.Result) {
	if r.PlayerSaved {
		s.SavedPlayer()
	}
	for _, t := range r.Children {
		s.SavedChild(t)
	}
}

func (s *Score) Merge(o Score) {
	s.Player += o.Player
	for t, n := range o.Children {
		for range n {
			s.SavedChild(t)
		}
	}
	for t, n := range o.Moves {
		for range n {
			s.Moved(t)
		}
	}
}

func (s Score) savedChildren() int {
	n := 0
	for _, v := range s.Children {
		n += v
	}
	return n
}

// MoveCount is the number of toolbox moves over all child types.
func (s Score) MoveCount() int {
	n := 0
	for _, v := range s.Moves {
		n += v
	}
	return n
}

// Total is rewards for every save minus one point per move, never below
// zero.
func (s Score) Total() int {
	saved := s.Player*config.Score.PlayerReward + s.savedChildren()*config.Score.ChildReward
	return max(saved-s.MoveCount(), 0)
}

func (s Score) Any() bool { return s.Total() > 0 }

func (s Score) String() string { return strconv.Itoa(s.Total()) }

// Semantic lists who was saved, e.g. "Saved Player, Larry, and Bloat!".
func (s Score) Semantic() string {
	var names []string
	if name := timesSaved(config.Player.Name, s.Player); name != "" {
		names = append(names, name)
	}
	for _, t := range core.ChildTypes {
		if name := timesSaved(t.Name(), s.Children[t]); name != "" {
			names = append(names, name)
		}
	}

	switch len(names) {
	case 0:
		return "Saved nobody."
	case 1:
		return "Saved " + names[0] + "!"
	}
	last := len(names) - 1
	return "Saved " + strings.Join(names[:last], ", ") + ", and " + names[last] + "!"
}

func timesSaved(name string, times int) string {
	switch {
	case times == 1:
		return name
	case times > 1:
		return fmt.Sprintf("%s %d times", name, times)
	}
	return ""
}

// Breakdown returns one line per person kind that was saved or moved, in
// the form "Larry: 2 x 100 - 3 = 197".
func (s Score) Breakdown() []string {
	var lines []string
	if line := breakdownLine(s.Player, config.Score.PlayerReward, -1); line != "" {
		lines = append(lines, config.Player.Name+": "+line)
	}
	for _, t := range core.ChildTypes {
		moves, ok := s.Moves[t]
		if !ok {
			moves = -1
		}
		if line := breakdownLine(s.Children[t], config.Score.ChildReward, moves); line != "" {
			lines = append(lines, t.Name()+": "+line)
		}
	}
	return lines
}

// breakdownLine formats one entry. moves < 0 means no moves were given.
func breakdownLine(saved, reward, moves int) string {
	if saved == 0 && moves <= 0 {
		return ""
	}

	var b strings.Builder
	withTotal := false
	switch {
	case saved > 1:
		fmt.Fprintf(&b, "%d x %d", saved, reward)
		withTotal = true
	case saved == 1:
		fmt.Fprintf(&b, "%d", reward)
	default:
		b.WriteString("0")
	}
	if moves >= 0 {
		fmt.Fprintf(&b, " - %d", moves)
		withTotal = true
	}
	if withTotal {
		fmt.Fprintf(&b, " = %d", saved*reward-max(moves, 0))
	}
	return b.String()
}

type personJSON struct {
	Saved int `json:"saved,omitempty"`
	Moves int `json:"moves,omitempty"`
}

type scoreJSON struct {
	Player   *personJSON           `json:"player,omitempty"`
	Children map[string]personJSON `json:"children"`
}

// MarshalJSON writes the save file shape
// {"player":{"saved":n},"children":{"larry":{"saved":n,"moves":m}}}.
func (s Score) MarshalJSON() ([]byte, error) {
	out := scoreJSON{Children: map[string]personJSON{}}
	if s.Player > 0 {
		out.Player = &personJSON{Saved: s.Player}
	}
	for _, t := range core.ChildTypes {
		p := personJSON{Saved: s.Children[t], Moves: s.Moves[t]}
		if p.Saved > 0 || p.Moves > 0 {
			out.Children[t.Short()] = p
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the save file shape. Unknown child names are skipped.
func (s *Score) UnmarshalJSON(data []byte) error {
	var in scoreJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	*s = Score{}
	if in.Player != nil {
		s.Player = in.Player.Saved
	}
	for name, p := range in.Children {
		t, err := core.ParseChildType(name)
		if err != nil {
			continue
		}
		if p.Saved > 0 {
			if s.Children == nil {
				s.Children = make(map[core.ChildType]int)
			}
			s.Children[t] = p.Saved
		}
		if p.Moves > 0 {
			if s.Moves == nil {
				s.Moves = make(map[core.ChildType]int)
			}
			s.Moves[t] = p.Moves
		}
	}
	return nil
}
