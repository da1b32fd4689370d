package bintrie

import "fmt"

// Get follows key through root and returns the value of the Leaf it
// reaches, if any (spec §4.4). key must be exactly KeyBits long.
func Get(root Node, key BitSequence) ([]byte, bool, error) {
	if key.Len() != KeyBits {
		return nil, false, fmt.Errorf("bintrie: key must be %d bits, got %d: %w", KeyBits, key.Len(), ErrInvalidInput)
	}
	if root == nil {
		root = NullBranch
	}
	return lookupAt(root, key, 0)
}

func lookupAt(node Node, key BitSequence, consumed int) ([]byte, bool, error) {
	switch n := node.(type) {
	case *InternalNode:
		if key.MustBit(consumed) {
			return lookupAt(n.Right, key, consumed+1)
		}
		return lookupAt(n.Left, key, consumed+1)

	case *StemNode:
		keyStem := key.MustSlice(0, StemBits)
		if n.Stem.CommonPrefix(keyStem).Len() < StemBits {
			// The key diverges from this stem: absent, same as
			// reaching a NullBranch (spec §4.4 Stem row).
			return nil, false, nil
		}
		suffix, err := key.MustSlice(StemBits, KeyBits).ToInt()
		if err != nil {
			return nil, false, err
		}
		return lookupAt(n.Children[suffix], key, StemBits)

	case *LeafNode:
		if !n.hasValue {
			// Undefined upstream (spec §9); treat as absent.
			return nil, false, nil
		}
		return n.Value, true, nil

	case nullBranchNode, nullLeafNode:
		return nil, false, nil

	default:
		return nil, false, fmt.Errorf("bintrie: unknown node type %T", node)
	}
}
