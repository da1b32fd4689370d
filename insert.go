package bintrie

import "fmt"

// Put returns a new root with value installed at key, sharing every
// subtree of root that the insertion didn't touch (spec §4.3). key must
// be exactly KeyBits long.
//
// The source's visitor carries a single `depth` counter that it
// increments inconsistently between the Stem-match and Stem-diverge
// cases (flagged as an open question in spec §9). That inconsistency is
// an artifact of the Java visitor's internal bookkeeping variable, not an
// externally observable part of the contract: the only thing that must
// hold is that every recursive step consumes the right bit of key for
// the node it is about to dispatch on. insertAt's `consumed` parameter
// does that directly and consistently, which reproduces the documented
// black-box behavior (get-after-put, the stem-split scenarios of spec
// §8) without inheriting the source's bug.
func Put(root Node, key BitSequence, value []byte) (Node, error) {
	if key.Len() != KeyBits {
		return nil, fmt.Errorf("bintrie: key must be %d bits, got %d: %w", KeyBits, key.Len(), ErrInvalidInput)
	}
	if root == nil {
		root = NullBranch
	}
	return insertAt(root, key, 0, value)
}

// insertAt inserts value for key into the subtree rooted at node, given
// that `consumed` bits of key have already selected the path from the
// trie root down to node.
func insertAt(node Node, key BitSequence, consumed int, value []byte) (Node, error) {
	switch n := node.(type) {
	case *InternalNode:
		out := &InternalNode{Left: n.Left, Right: n.Right, dirty: true}
		var err error
		if key.MustBit(consumed) {
			out.Right, err = insertAt(n.Right, key, consumed+1, value)
		} else {
			out.Left, err = insertAt(n.Left, key, consumed+1, value)
		}
		if err != nil {
			return nil, err
		}
		return out, nil

	case *StemNode:
		return insertIntoStem(n, key, consumed, value)

	case *LeafNode:
		return NewLeafNode(cloneValue(value)), nil

	case nullLeafNode:
		return NewLeafNode(cloneValue(value)), nil

	case nullBranchNode:
		// Lazy growth (spec §4.3 NullBranch row): plant a fresh,
		// all-NullLeaf stem for this key's stem here, then let the
		// Stem-match case below finish the insertion.
		stem := key.MustSlice(0, StemBits)
		fresh, err := NewStemNode(stem)
		if err != nil {
			return nil, err
		}
		return insertIntoStem(fresh, key, consumed, value)

	default:
		return nil, fmt.Errorf("bintrie: unknown node type %T", node)
	}
}

// insertIntoStem implements the Stem transition rule (spec §4.3): either
// the key shares existing's stem and the insertion lands in one of its
// 256 suffix slots (Case A), or it diverges somewhere before StemBits and
// the stem must be lazily pushed one level deeper behind a synthetic
// Internal node (Case B, the "stem split").
func insertIntoStem(existing *StemNode, key BitSequence, consumed int, value []byte) (Node, error) {
	keyStem := key.MustSlice(0, StemBits)

	if existing.Stem.Equal(keyStem) {
		suffix, err := key.MustSlice(StemBits, KeyBits).ToInt()
		if err != nil {
			return nil, err
		}
		out := existing.clone()
		out.dirty = true
		newChild, err := insertAt(existing.Children[suffix], key, StemBits, value)
		if err != nil {
			return nil, err
		}
		out.Children[suffix] = newChild
		return out, nil
	}

	// Divergence: interpose one Internal node at the current depth,
	// steered by existing's own bit there, and recurse the whole
	// insertion into it. If key still agrees with existing's stem at
	// this bit, the recursive Internal-case dispatch lands back on
	// existing and repeats this same diverge check one bit deeper —
	// exactly the "push the old stem down until the first differing
	// bit is crossed" protocol of spec §4.3. Once the bits differ, the
	// recursive dispatch instead follows the NullBranch side, where the
	// NullBranch rule above plants a brand-new stem for key.
	branch := &InternalNode{Left: NullBranch, Right: NullBranch, dirty: true}
	if existing.Stem.MustBit(consumed) {
		branch.Right = existing
	} else {
		branch.Left = existing
	}
	return insertAt(branch, key, consumed, value)
}

func cloneValue(v []byte) []byte {
	if v == nil {
		return nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out
}
