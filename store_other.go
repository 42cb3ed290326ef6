//go:build !unix

package mempool

// mapAnon falls back to the heap when anonymous mappings are unavailable.
func mapAnon(size int) ([]byte, func([]byte) error, error) {
	return make([]byte, size), func([]byte) error { return nil }, nil
}
