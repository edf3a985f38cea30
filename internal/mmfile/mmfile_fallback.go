//go:build !unix

package mmfile

import "os"

// Map reads the file at path into memory. The fallback has no mapping to
// release, so cleanup is a no-op.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}

// MapRW reads the file into memory; flush writes the whole buffer back.
func MapRW(path string) ([]byte, func() error, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	flush := func() error {
		return os.WriteFile(path, data, info.Mode().Perm())
	}
	cleanup := func() error { return nil }
	return data, flush, cleanup, nil
}
