// Package ingest watches a workspace directory of Markdown memory files,
// debounces and hashes changes, and maintains a live graph.Store rebuilt
// from the current watched set, publishing a snapshot after every rebuild.
package ingest

import (
	"crypto/sha256"
	"sync"
)

// Document is the hash-tracked record ingest keeps for one watched file.
// Content bytes are not retained between reads; only the hash is kept so a
// changed-hash check can discard events whose content is unchanged.
type Document struct {
	Path string
	Hash [32]byte
}

// documentTable is the exclusive, mutex-guarded owner of the watched set's
// hashes. Adapted from GoKitt's pkg/docstore (a hydrate-once, upsert-on-save
// in-memory document table for WASM callbacks); this version tracks a
// content hash instead of a version counter, since the debouncer's job is
// detecting "did the bytes actually change", not versioning.
type documentTable struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func newDocumentTable() *documentTable {
	return &documentTable{docs: make(map[string]Document)}
}

// hash returns the sha256 of content.
func hash(content []byte) [32]byte {
	return sha256.Sum256(content)
}

// upsert records path's hash, returning true if it changed (or is new).
func (t *documentTable) upsert(path string, content []byte) bool {
	h := hash(content)

	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.docs[path]
	if ok && existing.Hash == h {
		return false
	}
	t.docs[path] = Document{Path: path, Hash: h}
	return true
}

// remove drops path's hash, used on deletion.
func (t *documentTable) remove(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.docs, path)
}

// paths returns the currently tracked paths, order unspecified.
func (t *documentTable) paths() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.docs))
	for p := range t.docs {
		out = append(out, p)
	}
	return out
}
