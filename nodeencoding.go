package bintrie

import "github.com/ethereum/go-ethereum/rlp"

// EncodeNode returns the wire representation the commitment layer hashes
// over (spec §6.2). serialize maps a leaf's stored value to its on-wire
// form; pass nil to use the value as-is.
//
// This is deliberately a flat concatenation of defining fields, not an
// RLP list: the spec fixes this exact byte layout so the commitment
// layer's rehash is reproducible across implementations. Serialize,
// below, is the separate, RLP-based encoding the teacher's Serialize()
// method produces for node *persistence* — an out-of-scope concern here,
// kept only as a thin convenience that exercises the same library.
func EncodeNode(n Node, serialize func([]byte) []byte) []byte {
	switch v := n.(type) {
	case *LeafNode:
		if !v.hasValue {
			return nil
		}
		if serialize != nil {
			return serialize(v.Value)
		}
		return v.Value
	case *InternalNode:
		if v.commitment == EmptyCommitment {
			return nil
		}
		return v.commitment.Bytes()
	case *StemNode:
		out := v.Stem.Encode()
		if v.commitment != EmptyCommitment {
			out = append(out, v.commitment.Bytes()...)
		}
		if v.valuesCommitment != EmptyCommitment {
			out = append(out, v.valuesCommitment.Bytes()...)
		}
		return out
	default: // nullBranchNode, nullLeafNode
		return nil
	}
}

// Serialize encodes n with RLP, mirroring the teacher's per-node
// Serialize() method (tree.go: `rlp.EncodeToBytes([]interface{}{...})`).
// It is not used by Put/Get; it exists for the same reason the teacher
// kept it — a debug/persistence-adjacent escape hatch that a future
// on-disk store (out of scope here, spec §1) can build on without
// touching the core's insert/lookup transformers.
func Serialize(n Node) ([]byte, error) {
	switch v := n.(type) {
	case *LeafNode:
		if !v.hasValue {
			return rlp.EncodeToBytes([]byte{})
		}
		return rlp.EncodeToBytes(v.Value)
	case *InternalNode:
		return rlp.EncodeToBytes(v.commitment.Bytes())
	case *StemNode:
		return rlp.EncodeToBytes([][]byte{v.Stem.Encode(), v.commitment.Bytes(), v.valuesCommitment.Bytes()})
	default:
		return rlp.EncodeToBytes([]byte{})
	}
}
