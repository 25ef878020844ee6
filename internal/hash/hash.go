package hash

import (
	"hash/fnv"
)

// Fields returns the FNV-64a sum of the fields in order. Every field is
// followed by a zero byte so that ("ab", "c") and ("a", "bc") differ.
func Fields(fields ...string) uint64 {
	h := fnv.New64a()
	for _, field := range fields {
		_, _ = h.Write([]byte(field))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
