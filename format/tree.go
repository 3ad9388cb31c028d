package format

import (
	"sort"
	"strings"

	"github.com/itsatony/project2md/walker"
)

// treeNode is one entry in the rendered directory tree.
type treeNode struct {
	name     string
	isFile   bool
	children map[string]*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name, children: make(map[string]*treeNode)}
}

// renderTree builds the box-drawing tree shown in the Project Structure
// section. Files sort before directories, then alphabetically, matching the
// layout of the generated document's file-contents section.
func renderTree(rootName string, files []walker.FileUnit) string {
	root := newTreeNode(rootName)

	for _, f := range files {
		parts := strings.Split(f.RelPath, "/")
		current := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := current.children[part]
			if !ok {
				child = newTreeNode(part)
				current.children[part] = child
			}
			current = child
		}
		leaf := newTreeNode(parts[len(parts)-1])
		leaf.isFile = true
		current.children[parts[len(parts)-1]] = leaf
	}

	var lines []string
	var walk func(node *treeNode, prefix string, isLast bool)
	walk = func(node *treeNode, prefix string, isLast bool) {
		connector := "├── "
		if isLast {
			connector = "└── "
		}
		lines = append(lines, prefix+connector+node.name)

		children := make([]*treeNode, 0, len(node.children))
		for _, child := range node.children {
			children = append(children, child)
		}
		sort.Slice(children, func(i, j int) bool {
			if children[i].isFile != children[j].isFile {
				return children[i].isFile
			}
			return children[i].name < children[j].name
		})

		childPrefix := prefix + "│   "
		if isLast {
			childPrefix = prefix + "    "
		}
		for i, child := range children {
			walk(child, childPrefix, i == len(children)-1)
		}
	}
	walk(root, "", true)

	return strings.Join(lines, "\n")
}
