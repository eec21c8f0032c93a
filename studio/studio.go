// Package studio holds the session around a plotter: the registry of
// drawable objects, verb dispatch, studio configuration and alignment
// offset persistence.
package studio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"plotstudio/geom"
	"plotstudio/objects"
	"plotstudio/plotter"
)

// ErrUnknownVerb is returned when verb dispatch cannot resolve an object
// and verb pair. Callers can recover from it (report and prompt again).
var ErrUnknownVerb = errors.New("unknown object or verb")

// Studio owns the objects placed around the machine bed and the plotter
// they draw with. Objects are never removed once added. A studio is
// single-owner and not safe for concurrent use.
type Studio struct {
	objects map[string]objects.Drawable
	names   []string // insertion order, for stable listings
	plotter plotter.Plotter
	min     geom.Vec2
	max     geom.Vec2
	session string
}

// New creates a studio around a plotter with the default 6x4 working area.
func New(p plotter.Plotter) *Studio {
	return &Studio{
		objects: make(map[string]objects.Drawable),
		plotter: p,
		min:     geom.V(0, 0),
		max:     geom.V(6, 4),
		session: uuid.NewString(),
	}
}

// Session returns the unique ID of this studio session, used to tag
// previews and saved calibration files.
func (s *Studio) Session() string {
	return s.session
}

// Plotter returns the active plotter.
func (s *Studio) Plotter() plotter.Plotter {
	return s.plotter
}

// SetWorkingArea sets the bed bounding box used by previews.
func (s *Studio) SetWorkingArea(min, max geom.Vec2) {
	s.min, s.max = min, max
}

// WorkingArea returns the bed bounding box.
func (s *Studio) WorkingArea() (min, max geom.Vec2) {
	return s.min, s.max
}

// Add registers an object under a name and returns the name used. An
// empty name auto-generates "ptobj<N>" where N is the current object
// count. Adding a second object under an existing name replaces the
// first, so callers pick unique names.
func (s *Studio) Add(obj objects.Drawable, name string) string {
	if name == "" {
		name = fmt.Sprintf("ptobj%d", len(s.objects))
	}
	if _, exists := s.objects[name]; !exists {
		s.names = append(s.names, name)
	}
	s.objects[name] = obj
	return name
}

// Object returns a registered object, or nil if the name is unknown.
func (s *Studio) Object(name string) objects.Drawable {
	return s.objects[name]
}

// Names returns the registered object names in insertion order.
func (s *Studio) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Resolve looks up an object and one of its verbs and returns the routine
// bound to the studio's plotter. Unknown names return ErrUnknownVerb.
func (s *Studio) Resolve(object, verb string) (objects.Routine, error) {
	obj, ok := s.objects[object]
	if !ok {
		return nil, fmt.Errorf("object %q: %w", object, ErrUnknownVerb)
	}
	factory, ok := obj.Verbs()[verb]
	if !ok {
		return nil, fmt.Errorf("object %q has no verb %q: %w", object, verb, ErrUnknownVerb)
	}
	return factory(s.plotter), nil
}

// ResolveToken resolves a compact "<object>_<verb>" token. The longest
// registered object name that prefixes the token (followed by an
// underscore) wins, so object names containing underscores resolve
// correctly. Unresolvable tokens return ErrUnknownVerb.
func (s *Studio) ResolveToken(token string) (objects.Routine, error) {
	best := ""
	for name := range s.objects {
		if len(name) > len(best) && strings.HasPrefix(token, name+"_") {
			best = name
		}
	}
	if best == "" {
		return nil, fmt.Errorf("token %q: %w", token, ErrUnknownVerb)
	}
	return s.Resolve(best, token[len(best)+1:])
}
