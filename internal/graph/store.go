package graph

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"
)

// Occurrence is the minimal shape the graph store needs from an extractor:
// a label and a type tag. It intentionally does not depend on the extract
// package (extract depends on nothing in graph) so that any upstream
// producer (the real extractor, a test fixture, a future format) can
// feed the store without an import cycle.
type Occurrence struct {
	Label string
	Type  EntityType
}

// ParagraphGroup is the set of occurrences found in a single paragraph;
// every unordered pair within a group produces (or reinforces) an edge.
type ParagraphGroup []Occurrence

// Store is the exclusive owner of the graph's nodes and edges. Ownership is
// enforced by never returning internal pointers from a read; every
// read-only view is a deep copy. A single graph-owner goroutine mutates it
// in practice, but the mutex keeps this package correct independent of
// that discipline.
type Store struct {
	mu    sync.RWMutex
	nodes map[string]*Node
	edges map[string]*Edge
}

// New creates an empty Graph Store.
func New() *Store {
	return &Store{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// UpsertNode creates the node if absent, or increments its mention count,
// refreshes last_seen, and adds document to its source set. The returned
// Node is owned by the caller (a copy of current state, Sources included); mutate the
// store only via Store methods.
func (s *Store) UpsertNode(id, label string, t EntityType, document string, now time.Time) (*Node, error) {
	if id == "" {
		return nil, fmt.Errorf("graph: empty node id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.nodes[id]
	if !ok {
		n = newNode(id, label, t, now)
		s.nodes[id] = n
	}
	n.MentionCount++
	if now.After(n.LastSeen) {
		n.LastSeen = now
	}
	if now.Before(n.FirstSeen) {
		n.FirstSeen = now
	}
	n.addSource(document)
	return n.clone(), nil
}

// UpsertEdge canonicalizes the pair, creates the edge if absent, and
// increments its co-occurrence count. Both endpoints must already exist in
// the store (edge invariant); UpsertEdge does not create nodes.
func (s *Store) UpsertEdge(idA, idB string, now time.Time) (*Edge, error) {
	if idA == "" || idB == "" {
		return nil, fmt.Errorf("graph: empty edge endpoint")
	}
	if idA == idB {
		return nil, fmt.Errorf("graph: self-edge %q not permitted", idA)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, b := idA, idB
	if a > b {
		a, b = b, a
	}
	if _, ok := s.nodes[a]; !ok {
		return nil, fmt.Errorf("graph: edge endpoint %q not present in node set", a)
	}
	if _, ok := s.nodes[b]; !ok {
		return nil, fmt.Errorf("graph: edge endpoint %q not present in node set", b)
	}

	id := EdgeID(a, b)
	e, ok := s.edges[id]
	if !ok {
		e = &Edge{ID: id, SourceID: a, TargetID: b, LastSeen: now}
		s.edges[id] = e
	}
	e.CoOccurrenceCount++
	if now.After(e.LastSeen) {
		e.LastSeen = now
	}
	edgeCopy := *e
	return &edgeCopy, nil
}

// BuildStats summarizes one call to BuildDocument.
type BuildStats struct {
	ParagraphsProcessed int
	OccurrencesObserved int
	EdgesObserved       int
}

// BuildDocument extracts a document's graph contribution: for each
// paragraph group, upsert every occurrence as a node, then upsert an edge
// for every unordered pair of distinct node ids in that group. Edges are
// paragraph-scoped: two entities in different paragraphs of the same
// document never produce an edge through this path.
func (s *Store) BuildDocument(document string, groups []ParagraphGroup, now time.Time) (BuildStats, error) {
	var stats BuildStats
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		stats.ParagraphsProcessed++

		ids := make([]string, 0, len(group))
		seen := make(map[string]bool, len(group))
		for _, occ := range group {
			id := NodeID(occ.Type, occ.Label)
			if seen[id] {
				continue
			}
			seen[id] = true
			if _, err := s.UpsertNode(id, occ.Label, occ.Type, document, now); err != nil {
				return stats, err
			}
			ids = append(ids, id)
			stats.OccurrencesObserved++
		}

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if _, err := s.UpsertEdge(ids[i], ids[j], now); err != nil {
					return stats, err
				}
				stats.EdgesObserved++
			}
		}
	}
	return stats, nil
}

// Merge additively folds other into s: mention counts and co-occurrence
// counts sum, last_seen takes the later timestamp, first_seen takes the
// earlier, and source sets union. Used when incremental mutation is
// preferred over a full rebuild, as an optimization equivalent to rebuild.
func (s *Store) Merge(other *Store) {
	other.mu.RLock()
	otherNodes := make([]*Node, 0, len(other.nodes))
	for _, n := range other.nodes {
		otherNodes = append(otherNodes, n)
	}
	otherEdges := make([]*Edge, 0, len(other.edges))
	for _, e := range other.edges {
		otherEdges = append(otherEdges, e)
	}
	other.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, on := range otherNodes {
		n, ok := s.nodes[on.ID]
		if !ok {
			s.nodes[on.ID] = on.clone()
			continue
		}
		n.MentionCount += on.MentionCount
		if on.LastSeen.After(n.LastSeen) {
			n.LastSeen = on.LastSeen
		}
		if on.FirstSeen.Before(n.FirstSeen) {
			n.FirstSeen = on.FirstSeen
		}
		for _, src := range on.Sources {
			n.addSource(src)
		}
	}

	for _, oe := range otherEdges {
		e, ok := s.edges[oe.ID]
		if !ok {
			cp := *oe
			s.edges[oe.ID] = &cp
			continue
		}
		e.CoOccurrenceCount += oe.CoOccurrenceCount
		if oe.LastSeen.After(e.LastSeen) {
			e.LastSeen = oe.LastSeen
		}
	}
}

// ScoredNode pairs a node with its key-node score for ranking consumers.
type ScoredNode struct {
	Node  Node
	Score float64
}

// TopNodes returns the n highest-scoring nodes by
// score = mention_count * sqrt(edge_degree + 1), descending, ties broken by
// id for determinism.
func (s *Store) TopNodes(n int) []ScoredNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	degree := make(map[string]int, len(s.nodes))
	for _, e := range s.edges {
		degree[e.SourceID]++
		degree[e.TargetID]++
	}

	scored := make([]ScoredNode, 0, len(s.nodes))
	for id, node := range s.nodes {
		score := float64(node.MentionCount) * math.Sqrt(float64(degree[id])+1)
		scored = append(scored, ScoredNode{Node: *node.clone(), Score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Node.ID < scored[j].Node.ID
	})

	if n >= 0 && n < len(scored) {
		scored = scored[:n]
	}
	return scored
}

// All returns a deep-copied, deterministically-ordered view of every node
// and edge currently in the store. This is the raw material snapshot.Build
// decays and weights; Store itself never computes display weight, which
// stays in the decay package as a separate, pure component.
func (s *Store) All() ([]Node, []Edge) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		nodes = append(nodes, *n.clone())
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	edges := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		edges = append(edges, *e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	return nodes, edges
}

// NodeCount and EdgeCount report the current graph size.
func (s *Store) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}
