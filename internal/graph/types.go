// Package graph implements an in-memory labeled multigraph: nodes keyed by
// a stable, type-qualified id, edges keyed by an order-independent pair of
// node ids, and a Store that owns both exclusively and hands out
// deep-copied snapshots to everyone else. Struct field tagging follows the
// JSON-tagged style of internal/store/models.go, rewritten here for a
// decayed co-occurrence graph instead of a versioned note database.
package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/kittclouds/memcity/internal/decay"
)

// EntityType is the extractor's type tag, re-exported here so graph does
// not need to import the extract package (extract depends on nothing from
// graph; graph depends on decay's EntityType alias to avoid a cycle).
type EntityType = decay.EntityType

// Node is a single entity in the knowledge graph: stable across files,
// mutated in place as new occurrences are observed.
type Node struct {
	ID            string     `json:"id"`
	Label         string     `json:"label"`
	Type          EntityType `json:"type"`
	MentionCount  int        `json:"mention_count"`
	FirstSeen     time.Time  `json:"first_seen"`
	LastSeen      time.Time  `json:"last_seen"`
	Sources       []string   `json:"sources"`
	sourceIndex   map[string]struct{}
}

// Edge is an unordered, canonically-ordered co-occurrence relationship
// between two nodes.
type Edge struct {
	ID                string    `json:"id"`
	SourceID          string    `json:"source_id"`
	TargetID          string    `json:"target_id"`
	CoOccurrenceCount int       `json:"co_occurrence_count"`
	LastSeen          time.Time `json:"last_seen"`
}

// NodeID builds the stable id `type:normalized-label` mandates.
func NodeID(t EntityType, label string) string {
	return fmt.Sprintf("%s:%s", t, Normalize(label))
}

// EdgeID builds the order-independent edge id `min(a,b)|max(a,b)`.
func EdgeID(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// Normalize implements node-id normalization: lower-case,
// each whitespace run to one underscore, strip every other character that
// isn't an ASCII letter or digit (underscores already in the label
// included), truncate to 100 octets.
func Normalize(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	lastWasUnderscore := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !lastWasUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastWasUnderscore = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastWasUnderscore = false
		default:
			// Non-alphanumeric, non-whitespace: stripped entirely.
		}
	}
	out := strings.Trim(b.String(), "_")
	if len(out) > 100 {
		out = out[:100]
	}
	return out
}

func newNode(id, label string, t EntityType, now time.Time) *Node {
	return &Node{
		ID:           id,
		Label:        label,
		Type:         t,
		MentionCount: 0,
		FirstSeen:    now,
		LastSeen:     now,
		Sources:      nil,
		sourceIndex:  make(map[string]struct{}),
	}
}

func (n *Node) addSource(doc string) {
	if n.sourceIndex == nil {
		n.sourceIndex = make(map[string]struct{})
		for _, s := range n.Sources {
			n.sourceIndex[s] = struct{}{}
		}
	}
	if _, ok := n.sourceIndex[doc]; ok {
		return
	}
	n.sourceIndex[doc] = struct{}{}
	n.Sources = append(n.Sources, doc)
}

func (n *Node) clone() *Node {
	sources := make([]string, len(n.Sources))
	copy(sources, n.Sources)
	return &Node{
		ID:           n.ID,
		Label:        n.Label,
		Type:         n.Type,
		MentionCount: n.MentionCount,
		FirstSeen:    n.FirstSeen,
		LastSeen:     n.LastSeen,
		Sources:      sources,
	}
}
