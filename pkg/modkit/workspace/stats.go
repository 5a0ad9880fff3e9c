package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// Stats summarizes a whole workspace subtree. Unlike the display tree,
// stats are depth-unbounded and gathered with a parallel walk.
type Stats struct {
	Files int64 `json:"files"`
	Dirs  int64 `json:"dirs"`
	Bytes int64 `json:"bytes"`
}

// Stat walks the entire subtree under root and aggregates file and
// directory counts plus total size. Entries that cannot be read are
// skipped; the walk itself never fails on a single bad entry.
func Stat(root string) (*Stats, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
	}

	var files, dirs, bytes atomic.Int64

	conf := fastwalk.Config{
		Follow: false,
	}
	err = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs.Add(1)
			return nil
		}
		files.Add(1)
		if info, err := d.Info(); err == nil {
			bytes.Add(info.Size())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking workspace: %w", err)
	}

	return &Stats{
		Files: files.Load(),
		Dirs:  dirs.Load() - 1, // exclude the root itself
		Bytes: bytes.Load(),
	}, nil
}
