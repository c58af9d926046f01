package core

import "slices"

// Registry is the set of bodies currently latched onto one interactable,
// in the order they latched.
type Registry struct {
	ids []ID
}

func (r *Registry) SetIntersected(id ID, overlapping bool) {
	i := slices.Index(r.ids, id)
	switch {
	case overlapping && i < 0:
		r.ids = append(r.ids, id)
	case !overlapping && i >= 0:
		r.ids = slices.Delete(r.ids, i, i+1)
	}
}

func (r *Registry) IsIntersected(id ID) bool {
	return slices.Contains(r.ids, id)
}

// Intersected returns a copy of the latched ids.
func (r *Registry) Intersected() []ID {
	return slices.Clone(r.ids)
}

func (r *Registry) Len() int {
	return len(r.ids)
}
