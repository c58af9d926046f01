package core

import "fmt"

// Key is an abstract control the simulation understands. Hosts map their
// own devices onto these.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
)

var keyNames = map[string]Key{
	"left":  KeyLeft,
	"right": KeyRight,
	"jump":  KeyJump,
}

func (k Key) String() string {
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey maps "left", "right" or "jump" to a Key.
func ParseKey(name string) (Key, error) {
	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// KeySet is a small bitmask of keys.
type KeySet uint8

func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool    { return s&(1<<k) != 0 }
func (s KeySet) With(k Key) KeySet { return s | 1<<k }
func (s KeySet) Empty() bool       { return s == 0 }

// Input is one tick of player input. Held lists keys that are down this
// tick; Released lists keys that went up since the previous tick.
type Input struct {
	Held     KeySet
	Released KeySet
}
