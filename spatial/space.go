// Package spatial is the range-query surface the enemy systems use to find
// targets. The live implementation reads a resolv.Space; a Snapshot freezes
// positions at the start of a simulation step.
package spatial

import (
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Target is an object found by a range query together with the position the
// query saw it at.
type Target struct {
	Object   *resolv.Object
	Position dmath.Vec2
}

// Service answers range and distance queries.
type Service interface {
	// QueryInRange returns the objects tagged with category whose position
	// lies within radius of center, in the order the backing store holds
	// them. Callers must not rely on any distance ordering.
	QueryInRange(center dmath.Vec2, radius float64, category string) []Target
	Distance(a, b dmath.Vec2) float64
}

// PositionOf returns the position of a collision object.
func PositionOf(obj *resolv.Object) dmath.Vec2 {
	return dmath.NewVec2(obj.X, obj.Y)
}

// Space is the live Service over a resolv.Space.
type Space struct {
	*resolv.Space
}

// NewSpace creates an empty space of the given size in world units.
func NewSpace(width, height, cellWidth, cellHeight int) *Space {
	return &Space{Space: resolv.NewSpace(width, height, cellWidth, cellHeight)}
}

// Wrap exposes an existing resolv.Space as a Service.
func Wrap(space *resolv.Space) *Space {
	return &Space{Space: space}
}

func (s *Space) QueryInRange(center dmath.Vec2, radius float64, category string) []Target {
	var found []Target
	for _, obj := range s.Objects() {
		if !obj.HasTags(category) {
			continue
		}
		pos := PositionOf(obj)
		if center.Distance(pos) <= radius {
			found = append(found, Target{Object: obj, Position: pos})
		}
	}
	return found
}

func (s *Space) Distance(a, b dmath.Vec2) float64 {
	return a.Distance(b)
}

// Snapshot captures the objects carrying any of categories together with
// their current positions.
func (s *Space) Snapshot(categories ...string) *Snapshot {
	snap := &Snapshot{}
	for _, obj := range s.Objects() {
		for _, category := range categories {
			if obj.HasTags(category) {
				snap.entries = append(snap.entries, Target{Object: obj, Position: PositionOf(obj)})
				break
			}
		}
	}
	return snap
}

// Snapshot is a frozen view of a Space. Moving objects after the snapshot was
// taken does not change what it returns.
type Snapshot struct {
	entries []Target
}

func (s *Snapshot) QueryInRange(center dmath.Vec2, radius float64, category string) []Target {
	var found []Target
	for _, entry := range s.entries {
		if !entry.Object.HasTags(category) {
			continue
		}
		if center.Distance(entry.Position) <= radius {
			found = append(found, entry)
		}
	}
	return found
}

func (s *Snapshot) Distance(a, b dmath.Vec2) float64 {
	return a.Distance(b)
}

// Len returns the number of captured objects.
func (s *Snapshot) Len() int {
	return len(s.entries)
}
