package redblacktree

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidKey is returned when the comparator's validator rejects a key. The Tree is never mutated in that
	// case.
	ErrInvalidKey = ierrors.New("invalid key")

	// ErrKeyNotFound is returned when the key targeted by an operation does not exist in the Tree.
	ErrKeyNotFound = ierrors.New("key not found")
)
