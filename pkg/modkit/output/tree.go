// Package output renders workspace trees and listings for the terminal,
// as styled text or JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/modkit/pkg/modkit/workspace"
)

// Branch glyphs for the tree renderer.
const (
	glyphBranch = "├── "
	glyphLast   = "└── "
	glyphPipe   = "│   "
	glyphSpace  = "    "
)

// RenderTree renders a workspace tree as styled text, one node per line.
// Folders whose depth budget was exhausted are marked with an ellipsis so
// the user can tell them apart from confirmed-empty folders.
func RenderTree(t *workspace.Tree) string {
	var sb strings.Builder
	sb.WriteString(FolderStyle.Render(t.Root))
	sb.WriteString("\n")
	renderNodes(&sb, t.Nodes, "")

	if t.Skipped > 0 {
		sb.WriteString(WarnStyle.Render(fmt.Sprintf("(%d unreadable directories skipped)", t.Skipped)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderNodes(sb *strings.Builder, nodes []*workspace.Node, prefix string) {
	for i, n := range nodes {
		glyph, childPrefix := glyphBranch, prefix+glyphPipe
		if i == len(nodes)-1 {
			glyph, childPrefix = glyphLast, prefix+glyphSpace
		}

		sb.WriteString(BranchStyle.Render(prefix + glyph))
		sb.WriteString(renderName(n))
		sb.WriteString("\n")

		renderNodes(sb, n.Children, childPrefix)
	}
}

func renderName(n *workspace.Node) string {
	if n.Kind != workspace.KindFolder {
		return FileStyle.Render(n.Name)
	}
	name := n.Name + "/"
	if n.NotExpanded() {
		name += " …"
	}
	return FolderStyle.Render(name)
}
