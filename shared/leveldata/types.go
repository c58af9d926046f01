// Package leveldata parses level descriptions from JSON (the level editor
// format) and TMX maps. It is pure data and does not import
// ebitengine, donburi or resolv. Validation of type-specific fields
// happens when the simulation builds a level from a Description.
package leveldata

// Type tags understood by the simulation. Other tags are carried through
// untouched and ignored when a level is built.
const (
	TypePlayer     = "Player"
	TypeChild      = "Child"
	TypeLarryChild = "LarryChild"
	TypeThingChild = "ThingChild"
	TypeBloatChild = "BloatChild"
	TypeWall       = "Wall"
	TypeJumpPad    = "JumpPadInteractable"
	TypeSwitch     = "SwitchInteractable"
	TypeDoor       = "DoorInteractable"
	TypeOneWay     = "OneWayInteractable"
	TypeSolidifier = "SolidifierInteractable"
	TypeGoal       = "GoalInteractable"
)

// Description is a parsed level, ready to be turned into a simulation.
type Description struct {
	Name      string     `json:"-"`
	Size      *Size      `json:"size,omitempty"`
	Instances []Instance `json:"instances"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Instance is one placed object. Position and Size are pointers so that a
// missing field can be told apart from a zero value.
type Instance struct {
	Type       string      `json:"type"`
	Position   *Point      `json:"position,omitempty"`
	Size       *Size       `json:"size,omitempty"`
	Additional *Additional `json:"additional,omitempty"`
}

// Additional is the type-specific bag: initial state name, identifier,
// color variant, switch targets and jump pad strength override.
type Additional struct {
	State    *string  `json:"state,omitempty"`
	ID       *uint32  `json:"id,omitempty"`
	Color    *string  `json:"color,omitempty"`
	Triggers []uint32 `json:"triggers,omitempty"`
	Strength *float64 `json:"strength,omitempty"`
}

// Count returns how many instances carry the given type tag.
func (d *Description) Count(typ string) int {
	n := 0
	for _, in := range d.Instances {
		if in.Type == typ {
			n++
		}
	}
	return n
}
