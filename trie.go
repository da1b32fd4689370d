package bintrie

// Serializer maps a value as passed to Put into the form stored against a
// leaf's key when the node is later encoded for the commitment layer
// (spec §6.2). Binding it once per Trie, instead of once per Leaf as in
// the source, is the redesign spec §9 calls for: "carry a serializer as a
// capability on the trie, not per leaf".
type Serializer func(value []byte) []byte

// Trie is the thin facade over the node algebra (spec §4.5): it owns the
// current root and exposes Get/Put over raw 32-byte keys, converting them
// to BitSequences at the boundary.
type Trie struct {
	root       Node
	serializer Serializer
}

// Option configures a Trie at construction time.
type Option func(*Trie)

// WithSerializer binds the value serializer that EncodeLeafValue applies
// to this trie's leaf values. EncodeNode does not consult it; it takes
// its serializer as an argument.
func WithSerializer(s Serializer) Option {
	return func(t *Trie) { t.serializer = s }
}

// New returns an empty Trie.
func New(opts ...Option) *Trie {
	t := &Trie{root: NullBranch}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the trie's current root node.
func (t *Trie) Root() Node {
	return t.root
}

// Get returns the value stored at key, and whether it was present.
func (t *Trie) Get(key [32]byte) ([]byte, bool, error) {
	bits, err := bitSequenceFromKey(key)
	if err != nil {
		return nil, false, err
	}
	return Get(t.root, bits)
}

// Put installs value at key, replacing the trie's root with the result
// (spec §4.5/§6.3).
func (t *Trie) Put(key [32]byte, value []byte) error {
	bits, err := bitSequenceFromKey(key)
	if err != nil {
		return err
	}
	newRoot, err := Put(t.root, bits, value)
	if err != nil {
		return err
	}
	t.root = newRoot
	return nil
}

// EncodeLeafValue serializes v with the trie's bound serializer, or
// returns it unchanged if none was configured.
func (t *Trie) EncodeLeafValue(v []byte) []byte {
	if t.serializer == nil {
		return v
	}
	return t.serializer(v)
}

// bitSequenceFromKey converts a 32-byte (256-bit) key into the
// BitSequence representation the transformers operate on, bit 0 being
// the most significant bit of key[0].
func bitSequenceFromKey(key [32]byte) (BitSequence, error) {
	out := newBitSequence(KeyBits)
	for i := 0; i < KeyBits; i++ {
		byteIdx := i / 8
		bitIdx := 7 - (i % 8)
		bit := (key[byteIdx]>>uint(bitIdx))&1 == 1
		out.setRawBit(i, bit)
	}
	return out, nil
}
