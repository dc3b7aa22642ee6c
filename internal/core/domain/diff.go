package domain

// DiffListener observes the exact snapshots removed from and added to a
// hierarchy during one logical update.
type DiffListener interface {
	// NodeRemoved is called for every snapshot removed by the update.
	NodeRemoved(snapshot Snapshot)
	// NodeAdded is called for every snapshot added by the update.
	NodeAdded(snapshot Snapshot)
}

// NoopDiffListener discards all notifications. Used when nobody needs the
// delta, e.g. while watching is inactive.
var NoopDiffListener DiffListener = noopDiffListener{}

type noopDiffListener struct{}

func (noopDiffListener) NodeRemoved(Snapshot) {}
func (noopDiffListener) NodeAdded(Snapshot)   {}

// CollectingDiffListener records removed and added snapshots so the delta of
// a single update can be forwarded without re-deriving it from two full-tree
// comparisons. Not safe for concurrent use; create one per update attempt.
type CollectingDiffListener struct {
	removed []Snapshot
	added   []Snapshot
}

// NewCollectingDiffListener creates an empty collector.
func NewCollectingDiffListener() *CollectingDiffListener {
	return &CollectingDiffListener{}
}

// NodeRemoved records a removed snapshot.
func (l *CollectingDiffListener) NodeRemoved(snapshot Snapshot) {
	l.removed = append(l.removed, snapshot)
}

// NodeAdded records an added snapshot.
func (l *CollectingDiffListener) NodeAdded(snapshot Snapshot) {
	l.added = append(l.added, snapshot)
}

// Publish invokes fn with the collected diff. fn is not called when the
// update removed and added nothing.
func (l *CollectingDiffListener) Publish(fn func(removed, added []Snapshot)) {
	if len(l.removed) == 0 && len(l.added) == 0 {
		return
	}
	fn(l.removed, l.added)
}
