package ingest

// pathEvent is a single filesystem change intent forwarded by the watcher
// task into the debouncer.
type pathEvent struct {
	path    string
	deleted bool
}

// readRequest is emitted by the debouncer once a path's debounce window
// (Config.DebounceDelay, 500ms by default) has elapsed without a further
// event for that path.
type readRequest struct {
	path string
}

// rebuildMsg tells the graph-owner task to perform a full rebuild. It
// carries no payload: the owner always re-reads the current watched set
// from the document table and the filesystem, per the rebuild discipline
// (incremental mutation must be equivalent to a full rebuild for the same
// inputs, so there's no reason to carry partial state through the channel).
type rebuildMsg struct{}
