// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

// Package classify maps the free-text status of a race result onto the
// fixed mechanical-failure taxonomy. Classification is a pure function of
// the status text and is re-derivable at any point; it is never stored as
// a column of the fact table.
package classify

import "strings"

// matcher is an Aho-Corasick automaton specialized for case-insensitive
// containment checks: does the text contain any of the patterns as a
// substring. Matching a fixed ~60-term taxonomy against every row on every
// filter change is the hot path, and the automaton does it in one pass
// over the text instead of one strings.Contains per term.
//
// The automaton is built once from its pattern list and immutable after
// construction, so it is safe for concurrent readers without locking.
type matcher struct {
	root     *matchNode
	patterns []string
}

type matchNode struct {
	children map[rune]*matchNode
	failure  *matchNode
	terminal bool // at least one pattern ends here (directly or via failure)
}

func newMatchNode() *matchNode {
	return &matchNode{children: make(map[rune]*matchNode)}
}

// newMatcher builds the automaton from the given patterns. Empty patterns
// are ignored. Patterns are folded to lower case; Contains folds its input
// the same way, so matching is case-insensitive and nothing else (no
// trimming, no word boundaries).
func newMatcher(patterns []string) *matcher {
	m := &matcher{root: newMatchNode()}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		m.patterns = append(m.patterns, p)
		m.insert(strings.ToLower(p))
	}
	m.buildFailureLinks()
	return m
}

func (m *matcher) insert(pattern string) {
	node := m.root
	for _, ch := range pattern {
		next := node.children[ch]
		if next == nil {
			next = newMatchNode()
			node.children[ch] = next
		}
		node = next
	}
	node.terminal = true
}

// buildFailureLinks wires the failure transitions with a BFS from the root.
// A node is terminal if a pattern ends there or at any node on its failure
// chain (suffix matches count as matches).
func (m *matcher) buildFailureLinks() {
	queue := make([]*matchNode, 0, len(m.root.children))
	for _, child := range m.root.children {
		child.failure = m.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for ch, child := range current.children {
			queue = append(queue, child)

			fail := current.failure
			for fail != nil && fail.children[ch] == nil {
				fail = fail.failure
			}
			if fail == nil {
				child.failure = m.root
			} else {
				child.failure = fail.children[ch]
				if child.failure.terminal {
					child.terminal = true
				}
			}
		}
	}
}

// Contains reports whether text contains any pattern as a substring,
// case-insensitively. Semantically equivalent to OR-ing
// strings.Contains(lower(text), lower(pattern)) over all patterns.
func (m *matcher) Contains(text string) bool {
	if len(m.patterns) == 0 {
		return false
	}

	node := m.root
	for _, ch := range strings.ToLower(text) {
		for node != nil && node.children[ch] == nil {
			node = node.failure
		}
		if node == nil {
			node = m.root
			continue
		}
		node = node.children[ch]
		if node.terminal {
			return true
		}
	}
	return false
}
