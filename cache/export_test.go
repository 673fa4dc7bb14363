package cache

// Test bridges for the snapshot codec.
var (
	EncodeSnapshot = encodeSnapshot
	DecodeSnapshot = decodeSnapshot
)
