package snapshot

import (
	"bytes"
	"encoding/json"
	"sync"
)

// bufferPool reduces GC pressure from the JSON buffers allocated every time
// a Snapshot is published, which happens on every rebuild while the
// supervisor is running. Adapted from pkg/pool (which pooled
// map[string]interface{} and []interface{} for the same reason) but typed
// for the one allocation this package actually makes on its hot path: the
// encode buffer.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// Encode marshals the snapshot to JSON using a pooled buffer, returning a
// freshly-allocated copy of the bytes (the pooled buffer goes back to the
// pool when Encode returns and is reset on its next use).
func (s *Snapshot) Encode() ([]byte, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	enc := json.NewEncoder(buf)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Decode parses a previously-Encoded Snapshot. Used by the round-trip
// property test and by any out-of-process consumer reading published
// frames back for diagnostics.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
