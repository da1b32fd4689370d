package bintrie

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Key-space constants (spec §3.3).
const (
	KeyBits    = 256 // width of a trie key, in bits
	StemBits   = 248 // width of the stem that selects an aggregate
	SuffixBits = 8   // width of the suffix that selects a slot in a stem
	StemFanout = 256 // number of value slots per stem, 2^SuffixBits
)

// EmptyCommitment is the 32-byte zero word substituted for an absent or
// not-yet-computed commitment.
var EmptyCommitment common.Hash

// Node is the sum type of the five node variants (spec §3.2): *InternalNode,
// *StemNode, *LeafNode, and the two sentinel values NullBranch and
// NullLeaf. This interface is the idiomatic stand-in for the source's
// visitor-dispatched class hierarchy (spec §9): callers switch on the
// concrete type instead of double-dispatching through accept methods.
type Node interface {
	isNode()
}

// InternalNode is a branch with two children, addressed by the next bit
// of the key being looked up or inserted.
type InternalNode struct {
	Left, Right Node

	commitment common.Hash
	dirty      bool
}

func (*InternalNode) isNode() {}

// NewInternalNode returns an Internal node with both children absent.
func NewInternalNode() *InternalNode {
	return &InternalNode{Left: NullBranch, Right: NullBranch, dirty: true}
}

// Commitment returns the node's cached, possibly stale, commitment.
func (n *InternalNode) Commitment() common.Hash { return n.commitment }

// Dirty reports whether the cached commitment needs recomputing.
func (n *InternalNode) Dirty() bool { return n.dirty }

// SetCommitment installs a freshly computed commitment and clears the
// dirty flag. This is the only mutation an InternalNode ever undergoes
// after construction, and it is the commitment liaison's exclusive
// responsibility (spec §4.6) — Put never calls it.
func (n *InternalNode) SetCommitment(c common.Hash) {
	n.commitment = c
	n.dirty = false
}

// StemNode aggregates up to StemFanout leaves sharing the top StemBits
// bits of their key (spec §3.2, invariants I1/I2).
type StemNode struct {
	Stem             BitSequence
	Children         [StemFanout]Node
	commitment       common.Hash
	valuesCommitment common.Hash
	dirty            bool
}

func (*StemNode) isNode() {}

// NewStemNode returns a Stem node for the given 248-bit stem, with every
// slot initialized to NullLeaf (invariant I2).
func NewStemNode(stem BitSequence) (*StemNode, error) {
	if stem.Len() != StemBits {
		return nil, fmt.Errorf("bintrie: stem must be %d bits, got %d: %w", StemBits, stem.Len(), ErrInvalidInput)
	}
	n := &StemNode{Stem: stem, dirty: true}
	for i := range n.Children {
		n.Children[i] = NullLeaf
	}
	return n, nil
}

func (n *StemNode) Commitment() common.Hash       { return n.commitment }
func (n *StemNode) ValuesCommitment() common.Hash { return n.valuesCommitment }
func (n *StemNode) Dirty() bool                   { return n.dirty }

// SetCommitment installs freshly computed commitment/valuesCommitment and
// clears the dirty flag (spec §4.6).
func (n *StemNode) SetCommitment(c, valuesC common.Hash) {
	n.commitment = c
	n.valuesCommitment = valuesC
	n.dirty = false
}

func (n *StemNode) clone() *StemNode {
	out := *n
	return &out
}

// LeafNode holds a single value slot inside a stem.
type LeafNode struct {
	Value    []byte
	hasValue bool
}

func (*LeafNode) isNode() {}

// NewLeafNode returns a Leaf holding value.
func NewLeafNode(value []byte) *LeafNode {
	return &LeafNode{Value: value, hasValue: true}
}

// HasValue reports whether the leaf carries a value. A Leaf whose value
// is absent is treated as equivalent to NullLeaf by Get (spec §9 open
// question: deletion is undefined upstream, so an empty leaf just reads
// back as absent).
func (n *LeafNode) HasValue() bool { return n.hasValue }

type nullBranchNode struct{}

func (nullBranchNode) isNode() {}

// NullBranch is the shared sentinel standing in for an absent subtree at
// an internal position (spec §3.2). Being a zero-sized comparable value,
// it needs no process-wide constructor guard the way the source's Java
// singleton does (spec §9): any nullBranchNode{} literal already equals
// every other one.
var NullBranch Node = nullBranchNode{}

type nullLeafNode struct{}

func (nullLeafNode) isNode() {}

// NullLeaf is the shared sentinel standing in for an absent suffix slot
// inside a stem.
var NullLeaf Node = nullLeafNode{}
