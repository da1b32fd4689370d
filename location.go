package bintrie

// LocationAt returns the path from the trie root to whatever node sits
// after consuming the first `depth` bits of key — the advisory metadata
// spec §3.2 calls a node's "location", used only by tooling.
//
// The source stores this on every node and repairs it with a
// replace_location walk that touches the whole relocated subtree on
// every stem split (spec §4.2), which spec §9 flags for re-architecture:
// "treat location as tooling-side metadata computed lazily during
// traversal rather than carried in nodes". Nodes here carry no location
// field at all; a caller that wants it computes it on demand with this
// function instead of paying an O(2^depth) walk on every Put. Nothing in
// this package calls it: dot.go labels nodes with the path it tracks
// during its own walk.
func LocationAt(key BitSequence, depth int) (BitSequence, error) {
	return key.Slice(0, depth)
}
