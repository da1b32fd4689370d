package bintrie

import "errors"

// Error taxonomy for the core. The trie is pure and in-memory: every error
// here is a precondition violation local to the call that raised it: the
// trie is left exactly as it was (this follows the sentinel-error idiom
// of errInsertIntoHash / errValueNotPresent in go-verkle's tree.go, which
// is not part of this repository).
var (
	// ErrInvalidInput is returned for malformed bit strings, keys with the
	// wrong bit-length, and other caller-supplied values that are not
	// even well-formed.
	ErrInvalidInput = errors.New("bintrie: invalid input")

	// ErrIndexRange is returned by BitSequence accessors given an index
	// outside [-length, length).
	ErrIndexRange = errors.New("bintrie: index out of range")

	// ErrOverflow is returned by BitSequence.ToInt when the sequence is
	// wider than 32 bits.
	ErrOverflow = errors.New("bintrie: integer overflow")
)
