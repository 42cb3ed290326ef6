//go:build unix

package mempool

import "golang.org/x/sys/unix"

// mapAnon obtains size bytes as an anonymous private mapping.
func mapAnon(size int) ([]byte, func([]byte) error, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	data, err := unix.Mmap(-1, 0, size, prot, flags)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}
