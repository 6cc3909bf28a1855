package solarsystem

import "sort"

// VisualBody is the transform of a body as rendered in the scene.
// Roll grows without bound: no wraparound is applied.
type VisualBody struct {
	X, Y, Z float64
	Roll    float64 // degrees
	Tilt    float64 // degrees
	R       float64 // display radius
}

// Position returns the position of this visual body.
func (v *VisualBody) Position() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// SetPosition sets the position of this visual body.
func (v *VisualBody) SetPosition(p Vec3) {
	v.X, v.Y, v.Z = p.X, p.Y, p.Z
}

// Scene gives access to the visual bodies of the active scene.
// The core only mutates the returned bodies, it never adds nor removes any.
type Scene interface {
	VisualBody(id BodyID) (*VisualBody, bool)
}

// MemoryScene is a Scene held in memory, used for headless runs.
type MemoryScene struct {
	bodies map[BodyID]*VisualBody
}

// NewMemoryScene returns a scene with the provided bodies, all at the origin.
func NewMemoryScene(ids ...BodyID) *MemoryScene {
	s := &MemoryScene{make(map[BodyID]*VisualBody, len(ids))}
	for _, id := range ids {
		s.bodies[id] = &VisualBody{}
	}
	return s
}

// NewFullScene returns a scene with every body, tilted as per the provided elements.
func NewFullScene(elements map[BodyID]OrbitalElements) *MemoryScene {
	ids := make([]BodyID, BodyCount)
	for i := range ids {
		ids[i] = BodyID(i)
	}
	s := NewMemoryScene(ids...)
	for id, el := range elements {
		if vb, ok := s.bodies[id]; ok {
			vb.Tilt = el.Tilt
		}
	}
	return s
}

// VisualBody implements the Scene interface.
func (s *MemoryScene) VisualBody(id BodyID) (*VisualBody, bool) {
	vb, ok := s.bodies[id]
	return vb, ok
}

// IDs returns the bodies of this scene in update order.
func (s *MemoryScene) IDs() []BodyID {
	ids := make([]BodyID, 0, len(s.bodies))
	for id := range s.bodies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of bodies in this scene.
func (s *MemoryScene) Len() int {
	return len(s.bodies)
}
