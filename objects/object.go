// Package objects defines the drawable entities an artist places in the
// studio: each exposes named verbs (motion routines bound to a plotter),
// a containment test and a debug-draw hook.
package objects

import (
	"plotstudio/geom"
	"plotstudio/plotter"
)

// Routine is a motion routine bound to an object and a plotter. Arguments
// are verb-specific command values; parameterless verbs ignore them.
type Routine func(args ...float64) error

// Verb is a routine factory: it binds a routine to the plotter that will
// execute it. Objects hold no plotter reference of their own; the device
// is supplied each time a verb is produced.
type Verb func(p plotter.Plotter) Routine

// Sketcher is the surface drawables render debug overlays onto. The
// renderer chooses the styling: Outline draws a solid object outline,
// Guide draws a dashed reference shape, Fixture draws a filled marker.
type Sketcher interface {
	// Outline draws a closed solid polygon through the points.
	Outline(pts []geom.Vec2)
	// Guide draws a closed dashed polygon through the points.
	Guide(pts []geom.Vec2)
	// Fixture draws a filled circle.
	Fixture(center geom.Vec2, radius float64)
}

// Drawable is an entity registered with the studio.
type Drawable interface {
	// Verbs returns the verb factories keyed by verb name.
	Verbs() map[string]Verb
	// Contains reports whether a global point falls on the object.
	// Implementations may use loose (bounding box) semantics.
	Contains(p geom.Vec2) bool
	// Bounds returns the object's axis-aligned bounding box.
	Bounds() (min, max geom.Vec2)
	// DebugDraw renders the object's debug overlay.
	DebugDraw(s Sketcher)
}
