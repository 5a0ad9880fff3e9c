// Package workspace provides the local filesystem operations behind the
// mod editor: bounded-depth tree building for the file panel, flat
// directory listing, and plain/project file persistence.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultMaxDepth is how many levels below the root the editor expands
// when opening a workspace.
const DefaultMaxDepth = 3

// ErrNotFound is returned when the workspace root does not exist or is
// not a directory.
var ErrNotFound = errors.New("workspace root not found")

// Kind classifies a tree node.
type Kind string

// Node kinds.
const (
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
)

// Node is one entry in the hierarchical workspace view.
//
// Children is a tri-state: a folder whose depth budget was exhausted is
// "not expanded" (Expanded false, Children nil), an expanded folder with
// no entries is "confirmed empty" (Expanded true, Children empty), and an
// expanded folder otherwise carries its ordered children. Files are never
// expanded. JSON output mirrors this: the children field is absent for
// files and unexpanded folders, and [] for confirmed-empty folders.
type Node struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	Kind     Kind    `json:"type"`
	Children []*Node `json:"-"`
	Expanded bool    `json:"-"`
}

// NotExpanded reports whether this folder's depth budget was exhausted
// before its entries could be enumerated.
func (n *Node) NotExpanded() bool {
	return n.Kind == KindFolder && !n.Expanded
}

// ConfirmedEmpty reports whether this folder was enumerated and had no
// entries. It is false for unexpanded folders, which may or may not be
// empty.
func (n *Node) ConfirmedEmpty() bool {
	return n.Kind == KindFolder && n.Expanded && len(n.Children) == 0
}

// MarshalJSON emits the children field only for expanded folders, so a
// consumer can distinguish "not expanded further" from "confirmed empty".
func (n *Node) MarshalJSON() ([]byte, error) {
	type alias struct {
		Name     string   `json:"name"`
		Path     string   `json:"path"`
		Kind     Kind     `json:"type"`
		Children *[]*Node `json:"children,omitempty"`
	}

	a := alias{Name: n.Name, Path: n.Path, Kind: n.Kind}
	if n.Expanded {
		children := n.Children
		if children == nil {
			children = []*Node{}
		}
		a.Children = &children
	}
	return json.Marshal(a)
}

// Tree is the result of a workspace tree build.
type Tree struct {
	// Root is the directory the tree was built from.
	Root string `json:"root"`

	// Nodes are the root's immediate entries in display order.
	Nodes []*Node `json:"nodes"`

	// Skipped counts directories whose entries could not be enumerated.
	// The tree is best-effort: a bad entry never fails the whole view.
	Skipped int `json:"skipped,omitempty"`
}

// BuildTree walks root up to maxDepth levels and returns an ordered,
// nested description of files and folders. Root existence is checked
// once, here; unreadable directories below the root are skipped and
// counted rather than aborting the build.
//
// Entries at each level sort folders first, then byte-wise by name, so
// repeated builds of an unmodified directory yield identical order.
func BuildTree(root string, maxDepth int) (*Tree, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
	}

	nodes, skipped, err := buildLevel(root, 0, maxDepth)
	if err != nil {
		// Root passed the stat check but could not be enumerated.
		skipped = 1
	}
	return &Tree{Root: root, Nodes: nodes, Skipped: skipped}, nil
}

// buildLevel enumerates one directory level at the given depth and
// recurses into subdirectories while depth < maxDepth. A non-nil error
// means dir itself could not be enumerated; the caller must then leave
// the folder unexpanded rather than present it as confirmed empty.
func buildLevel(dir string, depth, maxDepth int) ([]*Node, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		return entries[i].Name() < entries[j].Name()
	})

	var skipped int
	nodes := make([]*Node, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		node := &Node{
			Name: entry.Name(),
			Path: path,
			Kind: KindFile,
		}

		if entry.IsDir() {
			node.Kind = KindFolder
			if depth < maxDepth {
				children, s, err := buildLevel(path, depth+1, maxDepth)
				skipped += s
				if err != nil {
					// Partial results beat total failure for a
					// display-only tree: count the skip and leave the
					// folder unexpanded.
					skipped++
				} else {
					node.Children = children
					node.Expanded = true
				}
			}
		}

		nodes = append(nodes, node)
	}

	return nodes, skipped, nil
}

// Walk visits every node in the tree depth-first in display order.
func (t *Tree) Walk(fn func(n *Node, depth int)) {
	var visit func(nodes []*Node, depth int)
	visit = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			visit(n.Children, depth+1)
		}
	}
	visit(t.Nodes, 0)
}

// Count returns the number of file and folder nodes in the tree.
func (t *Tree) Count() (files, folders int) {
	t.Walk(func(n *Node, _ int) {
		if n.Kind == KindFolder {
			folders++
		} else {
			files++
		}
	})
	return files, folders
}
