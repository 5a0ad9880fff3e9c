//go:build !unix

package workspace

// FreeSpace is not supported on this platform.
func FreeSpace(path string) (uint64, bool) {
	return 0, false
}
