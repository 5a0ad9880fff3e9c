//go:build unix

package workspace

import "golang.org/x/sys/unix"

// FreeSpace returns the free bytes available on the filesystem holding
// path, and whether the value could be determined.
func FreeSpace(path string) (uint64, bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, false
	}
	return st.Bavail * uint64(st.Bsize), true
}
