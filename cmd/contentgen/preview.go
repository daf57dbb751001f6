package main

import (
	"fmt"
	"io"
	"path"
	"strings"
)

type treeNode struct {
	name     string
	dir      bool
	children []*treeNode
	index    map[string]*treeNode
}

func newTreeNode(name string, dir bool) *treeNode {
	return &treeNode{name: name, dir: dir, index: make(map[string]*treeNode)}
}

func (n *treeNode) child(name string, dir bool) *treeNode {
	if existing, ok := n.index[name]; ok {
		return existing
	}
	c := newTreeNode(name, dir)
	n.index[name] = c
	n.children = append(n.children, c)
	return c
}

// buildTree turns report entries (slash paths, directories with a trailing
// slash) into a tree rooted at rootName.
func buildTree(rootName string, entries []string) *treeNode {
	root := newTreeNode(rootName, true)
	for _, entry := range entries {
		isDir := strings.HasSuffix(entry, "/")
		parts := strings.Split(strings.TrimSuffix(entry, "/"), "/")
		node := root
		for i, part := range parts {
			last := i == len(parts)-1
			node = node.child(part, !last || isDir)
		}
	}
	return root
}

// label collapses chains of single-child directories so assets/data/data.json
// prints on one line.
func (n *treeNode) label() (string, *treeNode) {
	name := n.name
	node := n
	for node.dir && len(node.children) == 1 {
		node = node.children[0]
		name = path.Join(name, node.name)
	}
	if node.dir {
		name += "/"
	}
	return name, node
}

func writeTree(w io.Writer, root *treeNode) {
	fmt.Fprintf(w, "%s/\n", root.name)
	writeTreeChildren(w, root, "")
}

func writeTreeChildren(w io.Writer, node *treeNode, prefix string) {
	for i, child := range node.children {
		last := i == len(node.children)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}
		name, tail := child.label()
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, name)
		if tail.dir {
			writeTreeChildren(w, tail, prefix+indent)
		}
	}
}
