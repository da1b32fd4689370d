package bintrie

import "github.com/holiman/uint256"

// KeyFromUint256 renders v as a big-endian 32-byte key, the form Get/Put
// expect. This mirrors how verkle-style binary tries in the wild derive
// keys from 256-bit integers (e.g. address/storage-slot hashes) rather
// than building them bit by bit.
func KeyFromUint256(v *uint256.Int) [32]byte {
	return v.Bytes32()
}

// KeyToUint256 is the inverse of KeyFromUint256.
func KeyToUint256(key [32]byte) *uint256.Int {
	return new(uint256.Int).SetBytes(key[:])
}
