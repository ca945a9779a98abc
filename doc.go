/*
Package probemap provides an in-memory hash map built on open addressing with
a fixed probe stride.

Map stores integer and string keys against opaque values in a single slot
array. Collisions are resolved by stepping a constant stride of 6 slots, and
the table quadruples its capacity whenever an insertion would push the
occupancy ratio to 0.70.

Basic usage:

	import "github.com/theflywheel/probemap"

	m := probemap.New()

	if err := m.Put("answer", 42); err != nil {
		log.Fatal(err)
	}

	v, err := m.Get("answer")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Value:", v)

	if err := m.Delete("answer"); err != nil {
		log.Fatal(err)
	}

Features:

  - Integer keys hash to themselves; string keys use the DJB2 rolling hash
  - Pluggable hash function (an xxHash-based alternative is included)
  - Automatic growth to 4x capacity when the load factor would reach 0.7
  - Deterministic, capacity-bounded probing with an explicit exhaustion error

Implementation Details:

The probe stride is fixed at 6 regardless of the key or probe count. At the
power-of-two capacities the table uses (8, 32, 128, ...), a stride of 6 only
ever visits slots of the same parity as the starting position, so a probe
walk can exhaust its cycle while the table still has room; Put reports this
as ErrProbeExhausted instead of looping.

Deleting a key resets its slot to empty with no tombstone marker. Lookups
stop at the first empty slot, so a key placed past a since-deleted slot on
the same probe chain is no longer reachable. Deleted slots keep counting
toward the growth threshold until the next growth rebuilds the table.

Map is not safe for concurrent use. Growth replaces the entire slot array,
so callers sharing a Map across goroutines must serialize every operation
with their own lock.
*/
package probemap
