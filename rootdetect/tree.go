// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package rootdetect

import (
	"io/fs"
	"path"
	"strings"

	"github.com/woozymasta/lspk"
)

// Tree is an in-memory Node.
type Tree struct {
	label    string
	children []*Tree
	index    map[string]int
	dir      bool
}

// NewTree returns a node with label and children in the given order.
func NewTree(label string, isDir bool, children ...*Tree) *Tree {
	t := &Tree{label: label, dir: isDir}
	for _, c := range children {
		t.add(c)
	}

	return t
}

// ChildCount implements Node.
func (t *Tree) ChildCount() int { return len(t.children) }

// Child implements Node.
func (t *Tree) Child(i int) Node { return t.children[i] }

// Label implements Node.
func (t *Tree) Label() string { return t.label }

// IsDir implements Node.
func (t *Tree) IsDir() bool { return t.dir }

// FromPaths builds a tree from archive entry paths. Intermediate segments
// become directories; children keep first-seen order. The root is an
// unlabeled directory.
func FromPaths(paths []string) *Tree {
	root := NewTree("", true)
	for _, p := range paths {
		p = lspk.NormalizePath(p)
		if p == "" {
			continue
		}

		segments := strings.Split(p, "/")
		node := root
		for i, segment := range segments {
			node = node.child(segment, i < len(segments)-1)
		}
	}

	return root
}

// FromFS builds a tree from the directory root of fsys. The returned root
// is labeled with the base name of root.
func FromFS(fsys fs.FS, root string) (*Tree, error) {
	top := NewTree(path.Base(root), true)
	nodes := map[string]*Tree{root: top}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}

		parent := nodes[path.Dir(p)]
		n := parent.child(d.Name(), d.IsDir())
		if d.IsDir() {
			nodes[p] = n
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return top, nil
}

// child returns the child with label, creating it when absent. A directory
// request upgrades an existing file node with the same label.
func (t *Tree) child(label string, isDir bool) *Tree {
	if i, ok := t.index[label]; ok {
		c := t.children[i]
		c.dir = c.dir || isDir
		return c
	}

	c := &Tree{label: label, dir: isDir}
	t.add(c)
	return c
}

func (t *Tree) add(c *Tree) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if _, ok := t.index[c.label]; !ok {
		t.index[c.label] = len(t.children)
	}

	t.children = append(t.children, c)
}
