package probemap

import (
	"errors"
	"fmt"
)

const (
	defaultCapacity = 8
	loadThreshold   = 0.70
	growthFactor    = 4
	probeStride     = 6 // (5 + p) + 1 collapses to a fixed stride of 6
)

var (
	// ErrInvalidKeyKind is returned when a key is neither an integer nor a
	// string. The call is malformed; fix the caller rather than retry.
	ErrInvalidKeyKind = errors.New("probemap: key must be an integer or a string")

	// ErrKeyNotFound is returned by Get and Delete when the probe search
	// reaches an empty slot without matching the key.
	ErrKeyNotFound = errors.New("probemap: key not found")

	// ErrProbeExhausted is returned when the probe sequence cycles through
	// every slot it can reach without finding a home for the key. The fixed
	// stride of 6 visits only same-parity slots at even capacities, so this
	// can happen well before the table is full.
	ErrProbeExhausted = errors.New("probemap: probe sequence exhausted")
)

// slot is one position in the table: either empty or holding a key/value
// pair. The key is kept both as supplied (for rehashing) and in normalized
// form (for equality).
type slot struct {
	occupied bool
	key      any
	norm     key
	value    any
}

// Map is an open-addressing hash map with a fixed probe stride. Keys are
// integers or strings, values are opaque. The zero value is not usable;
// construct with New. Not safe for concurrent use: growth replaces the whole
// slot array, so concurrent callers must hold an external lock around every
// operation.
type Map struct {
	slots    []slot
	occupied int
	deleted  int
	hash     HashFunc
}

// Option configures a Map during construction.
type Option func(*Map)

// WithCapacity sets the initial slot count. Values below 1 are ignored and
// the default of 8 applies. The table never shrinks back below it.
func WithCapacity(n int) Option {
	return func(m *Map) {
		if n > 0 {
			m.slots = make([]slot, n)
		}
	}
}

// WithHashFunc replaces DefaultHash for slot selection. The function must be
// pure; a nil function is ignored.
func WithHashFunc(fn HashFunc) Option {
	return func(m *Map) {
		if fn != nil {
			m.hash = fn
		}
	}
}

// New creates an empty map with capacity 8 and the DJB2/identity hash,
// unless overridden by options.
func New(opts ...Option) *Map {
	m := &Map{
		slots: make([]slot, defaultCapacity),
		hash:  DefaultHash,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Len returns the number of live keys.
func (m *Map) Len() int { return m.occupied }

// Deleted returns the number of slots cleared since the last growth. Deleted
// slots keep counting toward the growth threshold until growth resets them.
func (m *Map) Deleted() int { return m.deleted }

// Capacity returns the current slot count.
func (m *Map) Capacity() int { return len(m.slots) }

// LoadFactor returns (live + deleted) / capacity, the ratio the growth
// check measures against the 0.70 threshold.
func (m *Map) LoadFactor() float64 {
	return float64(m.occupied+m.deleted) / float64(len(m.slots))
}

func (m *Map) position(h uint64) int {
	return int(h % uint64(len(m.slots)))
}

// nextPosition advances the probe sequence. The stride is fixed: it depends
// on neither the key nor the probe count, so the sequence from a given start
// is a single cycle of at most capacity/gcd(6, capacity) slots.
func nextPosition(p, capacity int) int {
	return (p + probeStride) % capacity
}

// Put inserts key with value, or updates the value if the key is already
// present. The table grows to four times its capacity before placement
// whenever the pending insertion would put (live+deleted)/capacity at or
// beyond 0.70. Returns ErrInvalidKeyKind for non-integer, non-string keys
// and ErrProbeExhausted if the probe cycle closes without an open slot.
func (m *Map) Put(k, value any) error {
	nk, err := normalizeKey(k)
	if err != nil {
		return err
	}
	if m.shouldGrow() {
		if err := m.grow(); err != nil {
			return err
		}
	}
	return m.place(slot{occupied: true, key: k, norm: nk, value: value})
}

// shouldGrow counts the incoming insertion against the threshold, so the
// occupancy ratio never reaches 0.70 after a successful Put.
func (m *Map) shouldGrow() bool {
	return float64(m.occupied+m.deleted+1)/float64(len(m.slots)) >= loadThreshold
}

// place walks the probe sequence from the key's home slot until it finds an
// empty slot or the key itself. Bounded by the slot count: after that many
// steps the fixed-stride sequence has closed its cycle.
func (m *Map) place(s slot) error {
	pos := m.position(m.hash(s.key))
	for i := 0; i < len(m.slots); i++ {
		cur := &m.slots[pos]
		if !cur.occupied {
			*cur = s
			m.occupied++
			return nil
		}
		if cur.norm == s.norm {
			cur.key = s.key
			cur.value = s.value
			return nil
		}
		pos = nextPosition(pos, len(m.slots))
	}
	return fmt.Errorf("%w (capacity %d)", ErrProbeExhausted, len(m.slots))
}

// grow rebuilds the table at four times the capacity, rehashing every live
// entry in slot order. The old slice doubles as the snapshot and the new
// table is fully populated before it is installed, so a failed rehash leaves
// the map untouched. Re-insertion never re-checks the threshold.
func (m *Map) grow() error {
	next := Map{
		slots: make([]slot, len(m.slots)*growthFactor),
		hash:  m.hash,
	}
	for _, s := range m.slots {
		if !s.occupied {
			continue
		}
		if err := next.place(s); err != nil {
			return fmt.Errorf("rehash: %w", err)
		}
	}
	m.slots = next.slots
	m.occupied = next.occupied
	m.deleted = 0
	return nil
}

// locate returns the index of the slot holding key. The search stops at the
// first empty slot. A slot cleared by Delete is indistinguishable from one
// never used, so a key placed beyond it on the same probe chain becomes
// unreachable; see the package documentation.
func (m *Map) locate(k any, nk key) (int, error) {
	pos := m.position(m.hash(k))
	for i := 0; i < len(m.slots); i++ {
		s := &m.slots[pos]
		if !s.occupied {
			return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
		}
		if s.norm == nk {
			return pos, nil
		}
		pos = nextPosition(pos, len(m.slots))
	}
	return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
}

// Get returns the value stored under key, or ErrKeyNotFound. Never mutates
// the map.
func (m *Map) Get(k any) (any, error) {
	nk, err := normalizeKey(k)
	if err != nil {
		return nil, err
	}
	pos, err := m.locate(k, nk)
	if err != nil {
		return nil, err
	}
	return m.slots[pos].value, nil
}

// Has reports whether key is present. Keys of an invalid kind report false.
func (m *Map) Has(k any) bool {
	nk, err := normalizeKey(k)
	if err != nil {
		return false
	}
	_, err = m.locate(k, nk)
	return err == nil
}

// Delete removes key, or returns ErrKeyNotFound. The slot reverts to empty
// (there is no tombstone state) and the deleted counter keeps the freed slot
// counting toward the growth threshold until the next growth.
func (m *Map) Delete(k any) error {
	nk, err := normalizeKey(k)
	if err != nil {
		return err
	}
	pos, err := m.locate(k, nk)
	if err != nil {
		return err
	}
	m.slots[pos] = slot{}
	m.deleted++
	m.occupied--
	return nil
}
