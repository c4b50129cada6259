package binary

import (
	"errors"
	"fmt"
)

var (
	// ErrSealed is returned when adding to a finalized collection
	ErrSealed = errors.New("binary collection is sealed")

	// ErrDuplicateBinary is returned when a binary name is already registered
	ErrDuplicateBinary = errors.New("duplicate binary")
)

// Callback configures an artifact as it is registered
type Callback func(a *Artifact) error

type observer struct {
	kind Kind
	fn   Callback
}

// Collection is the observable set of binaries owned by one component.
//
// Observers run in two phases for every added artifact: all defaults-phase
// observers (BeforeEach) first, then all override-phase observers
// (WithType). Within a phase, observers run in registration order. Each
// observer fires once per artifact and is not re-fired on later mutation.
//
// Collection performs no locking; the owning model serialises access.
type Collection struct {
	items     []*Artifact
	names     map[string]struct{}
	defaults  []observer
	overrides []observer
	sealed    bool
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{names: make(map[string]struct{})}
}

// BeforeEach registers a defaults-phase callback for artifacts of kind
// added from now on. Its writes are visible to every override-phase callback.
func (c *Collection) BeforeEach(kind Kind, fn Callback) {
	c.defaults = append(c.defaults, observer{kind: kind, fn: fn})
}

// WithType registers an override-phase callback for artifacts of kind.
// It fires immediately for matching artifacts already in the collection,
// and for each matching artifact added later once its defaults have run.
func (c *Collection) WithType(kind Kind, fn Callback) error {
	for _, a := range c.items {
		if a.kind != kind {
			continue
		}
		if err := fn(a); err != nil {
			return fmt.Errorf("configuring binary '%s': %w", a.id, err)
		}
	}
	c.overrides = append(c.overrides, observer{kind: kind, fn: fn})
	return nil
}

// Add registers an artifact, running defaults-phase then override-phase
// callbacks for its kind. If any callback fails the error is returned,
// remaining callbacks are skipped and the artifact is not registered.
func (c *Collection) Add(a *Artifact) error {
	if c.sealed {
		return fmt.Errorf("cannot add binary '%s': %w", a.id, ErrSealed)
	}
	if _, exists := c.names[a.id.Name]; exists {
		return fmt.Errorf("%w '%s'", ErrDuplicateBinary, a.id)
	}

	if err := fire(c.defaults, a); err != nil {
		return err
	}
	if err := fire(c.overrides, a); err != nil {
		return err
	}

	c.names[a.id.Name] = struct{}{}
	c.items = append(c.items, a)
	return nil
}

func fire(observers []observer, a *Artifact) error {
	for _, o := range observers {
		if o.kind != a.kind {
			continue
		}
		if err := o.fn(a); err != nil {
			return fmt.Errorf("configuring binary '%s': %w", a.id, err)
		}
	}
	return nil
}

// Seal finalizes the collection; later Add calls fail with ErrSealed
func (c *Collection) Seal() {
	c.sealed = true
}

// Sealed reports whether Seal has been called
func (c *Collection) Sealed() bool {
	return c.sealed
}

// All returns the registered artifacts in registration order
func (c *Collection) All() []*Artifact {
	out := make([]*Artifact, len(c.items))
	copy(out, c.items)
	return out
}

// OfKind returns the registered artifacts of kind in registration order
func (c *Collection) OfKind(kind Kind) []*Artifact {
	var out []*Artifact
	for _, a := range c.items {
		if a.kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// Get returns the artifact with the given name
func (c *Collection) Get(name string) (*Artifact, bool) {
	for _, a := range c.items {
		if a.id.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Len returns the number of registered artifacts
func (c *Collection) Len() int {
	return len(c.items)
}
