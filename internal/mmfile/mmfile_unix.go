//go:build unix

// Package mmfile maps files into memory so layouts can be applied to file
// contents without reading them into the heap. On unix systems the returned
// slice aliases the page cache; elsewhere a heap copy stands in.
package mmfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only and returns its contents plus a cleanup
// function releasing the mapping.
func Map(path string) ([]byte, func() error, error) {
	data, _, cleanup, err := mapFile(path, false)
	return data, cleanup, err
}

// MapRW maps the file at path for reading and writing. Writes through the
// returned slice land in the shared mapping; flush forces them to disk and
// cleanup releases the mapping.
func MapRW(path string) ([]byte, func() error, func() error, error) {
	return mapFile(path, true)
}

func mapFile(path string, writable bool) ([]byte, func() error, func() error, error) {
	flags := os.O_RDONLY
	prot := unix.PROT_READ
	if writable {
		flags = os.O_RDWR
		prot |= unix.PROT_WRITE
	}
	f, err := os.OpenFile(path, flags, 0)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		noop := func() error { return nil }
		return []byte{}, noop, noop, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, nil, err
	}
	flush := func() error {
		return unix.Msync(data, unix.MS_SYNC)
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if err == unix.EINVAL {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, flush, cleanup, nil
}
