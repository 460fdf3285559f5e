package redblacktree

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// Comparator bundles the key capabilities of a Tree: the strict ordering that drives the descent, the equality
// that decides whether two keys address the same Node and the validation that gates mutating operations. Equality
// may be a stricter relation than the ordering (keys carrying satellite data can order by one field and compare by
// another); lookups always test Equal before Less, so such keys still match.
type Comparator[K any] interface {
	// Less returns true if a is strictly smaller than b.
	Less(a, b K) bool

	// Equal returns true if a and b address the same Node.
	Equal(a, b K) bool

	// Validate returns true if the given key is accepted by the Tree.
	Validate(key K) bool
}

// NaturalComparator is the default Comparator of the Tree: natural ordering and equality for integer keys. The
// narrowness of the default lives in the type constraint, so Validate accepts every key the comparator can be
// instantiated with.
type NaturalComparator[K constraints.Integer] struct{}

func (NaturalComparator[K]) Less(a, b K) bool {
	return lo.Compare(a, b) < 0
}

func (NaturalComparator[K]) Equal(a, b K) bool {
	return a == b
}

func (NaturalComparator[K]) Validate(K) bool {
	return true
}

// OrderedComparator extends the natural ordering and equality to all ordered key types (strings and floats
// included); it accepts every key. It is the usual override for Trees that are not keyed by integers.
type OrderedComparator[K constraints.Ordered] struct{}

func (OrderedComparator[K]) Less(a, b K) bool {
	return lo.Compare(a, b) < 0
}

func (OrderedComparator[K]) Equal(a, b K) bool {
	return a == b
}

func (OrderedComparator[K]) Validate(K) bool {
	return true
}

// ComparatorFuncs adapts three plain functions to the Comparator interface. All three functions must be non-nil.
type ComparatorFuncs[K any] struct {
	LessFunc     func(a, b K) bool
	EqualFunc    func(a, b K) bool
	ValidateFunc func(key K) bool
}

func (c ComparatorFuncs[K]) Less(a, b K) bool {
	return c.LessFunc(a, b)
}

func (c ComparatorFuncs[K]) Equal(a, b K) bool {
	return c.EqualFunc(a, b)
}

func (c ComparatorFuncs[K]) Validate(key K) bool {
	return c.ValidateFunc(key)
}
