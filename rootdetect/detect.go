// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lspk

package rootdetect

import (
	"container/heap"
	"fmt"
	"regexp"
	"strings"

	"github.com/woozymasta/lspk/wildcard"
)

// Node is one file or directory of a tree searched by Detect.
type Node interface {
	ChildCount() int
	Child(i int) Node
	Label() string
	IsDir() bool
}

// Detect searches the descendants of root, shallowest first, for the first
// node accepted by spec and returns its depth minus spec.Offset. Children of
// root have depth 1; root itself is never tested. Nodes of equal depth are
// visited in insertion order. The bool result is false when nothing matches.
func Detect(root Node, spec Spec) (int, bool, error) {
	if err := spec.Validate(); err != nil {
		return 0, false, err
	}

	match, err := compileMatcher(spec)
	if err != nil {
		return 0, false, err
	}

	if root == nil {
		return 0, false, nil
	}

	queue := &levelQueue{}
	queue.pushChildren(root, 1)

	for queue.Len() > 0 {
		item := heap.Pop(queue).(levelItem)
		if acceptsKind(spec.Target, item.node.IsDir()) && match(item.node.Label()) {
			return item.depth - spec.Offset, true, nil
		}

		queue.pushChildren(item.node, item.depth+1)
	}

	return 0, false, nil
}

// compileMatcher builds the label predicate for spec.
func compileMatcher(spec Spec) (func(string) bool, error) {
	if spec.Matcher == MatcherRegex {
		expr := "^(?:" + spec.Expression + ")$"
		if spec.CaseInvariant {
			expr = "(?i)" + expr
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
		}

		return re.MatchString, nil
	}

	if spec.CaseInvariant {
		expression := strings.ToLower(spec.Expression)
		return func(label string) bool {
			return wildcard.Match(strings.ToLower(label), expression)
		}, nil
	}

	return func(label string) bool {
		return wildcard.Match(label, spec.Expression)
	}, nil
}

func acceptsKind(target TargetKind, isDir bool) bool {
	switch target {
	case TargetFile:
		return !isDir
	case TargetDirectory:
		return isDir
	default:
		return true
	}
}

type levelItem struct {
	node  Node
	depth int
	seq   int
}

// levelQueue is a min-heap by depth, then insertion sequence.
type levelQueue struct {
	items []levelItem
	seq   int
}

func (q *levelQueue) Len() int { return len(q.items) }

func (q *levelQueue) Less(i, j int) bool {
	if q.items[i].depth != q.items[j].depth {
		return q.items[i].depth < q.items[j].depth
	}

	return q.items[i].seq < q.items[j].seq
}

func (q *levelQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *levelQueue) Push(x any) { q.items = append(q.items, x.(levelItem)) }

func (q *levelQueue) Pop() any {
	n := len(q.items) - 1
	item := q.items[n]
	q.items[n] = levelItem{}
	q.items = q.items[:n]
	return item
}

func (q *levelQueue) pushChildren(n Node, depth int) {
	for i := range n.ChildCount() {
		child := n.Child(i)
		if child == nil {
			continue
		}

		heap.Push(q, levelItem{node: child, depth: depth, seq: q.seq})
		q.seq++
	}
}
