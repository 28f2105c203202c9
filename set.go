package fqdn

import "sync"

// Set is a collection of FQDNs organized as a trie keyed by label, from the
// top-level domain down. Lookup cost is O(k) in the number of labels, not
// in the number of stored names, which makes it suitable for large suffix
// lists (blocklists, zones of authority, allowed-origin sets).
//
// Entries come in two flavors: exact names (Add) and whole subtrees
// (AddSubtree), where a subtree entry covers the name itself and every
// subdomain of it.
//
// A Set is safe for concurrent use: reads proceed in parallel under an
// RWMutex, writers are exclusive.
type Set struct {
	mu   sync.RWMutex
	root *setNode
	size int
}

// setNode keeps sparse children; most nodes branch only a handful of ways.
type setNode struct {
	children map[Label]*setNode
	terminal bool // an exact entry ends here
	subtree  bool // entry covers this name and all subdomains
}

func newSetNode() *setNode {
	return &setNode{children: make(map[Label]*setNode, 4)}
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{root: newSetNode()}
}

// Add inserts an exact name.
func (s *Set) Add(f FQDN) {
	s.insert(f, false)
}

// AddSubtree inserts a name together with all of its subdomains.
func (s *Set) AddSubtree(f FQDN) {
	s.insert(f, true)
}

func (s *Set) insert(f FQDN, subtree bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node := s.root
	for _, ancestor := range reverseHierarchy(f) {
		label := firstLabel(ancestor)
		child, ok := node.children[label]
		if !ok {
			child = newSetNode()
			node.children[label] = child
		}
		node = child
	}
	if !node.terminal {
		s.size++
	}
	node.terminal = true
	if subtree {
		node.subtree = true
	}
}

// Has reports whether the exact name was added. Subtree entries only report
// true for the name they were added under.
func (s *Set) Has(f FQDN) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node := s.lookup(f)
	return node != nil && node.terminal
}

// Match reports whether the name is covered by the set: either added
// exactly, or a subdomain of a subtree entry.
func (s *Set) Match(f FQDN) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node := s.root
	for _, ancestor := range reverseHierarchy(f) {
		// A subtree entry on an ancestor covers everything below it,
		// including the root entry covering all names.
		if node.subtree {
			return true
		}
		child, ok := node.children[firstLabel(ancestor)]
		if !ok {
			return false
		}
		node = child
	}
	return node.terminal
}

// lookup walks to the node for f, or nil if the path does not exist.
// Caller holds the read lock.
func (s *Set) lookup(f FQDN) *setNode {
	node := s.root
	for _, ancestor := range reverseHierarchy(f) {
		child, ok := node.children[firstLabel(ancestor)]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// firstLabel returns the leftmost label as a view into the canonical
// buffer; the caller guarantees f is not the root.
func firstLabel(f FQDN) Label {
	return Label(f.wire[1 : 1+int(f.wire[0])])
}

// Len returns the number of distinct names added.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Clear removes every entry.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = newSetNode()
	s.size = 0
}

// reverseHierarchy lists the ancestors of f from the TLD down to f itself.
// The root yields an empty walk and so maps to the trie root.
func reverseHierarchy(f FQDN) []FQDN {
	chain := f.Hierarchy()
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
