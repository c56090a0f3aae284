package pgsql

import (
	"context"
	"sync"

	portsrepo "github.com/lsotoflores/expenses_tracker_backend/internal/core/ports/repositories"
	"github.com/lsotoflores/expenses_tracker_backend/internal/models"
	"github.com/lsotoflores/expenses_tracker_backend/internal/platform/events"
)

// watchBuffer bounds the per-watcher queue. A full buffer drops the signal;
// watchers re-pull whole snapshots, so a dropped signal coalesces with the
// one already queued.
const watchBuffer = 16

// ChangeNotifier fans document change signals out to in-process watchers and,
// when a publisher is wired, to the AMQP sync feed. It implements
// portsrepo.ChangeFeed. A nil ChangeNotifier drops everything.
type ChangeNotifier struct {
	mu        sync.Mutex
	watchers  map[chan portsrepo.Collection]struct{}
	publisher *events.Publisher
}

// NewChangeNotifier creates a notifier. publisher may be nil when no broker
// is configured.
func NewChangeNotifier(publisher *events.Publisher) *ChangeNotifier {
	return &ChangeNotifier{
		watchers:  make(map[chan portsrepo.Collection]struct{}),
		publisher: publisher,
	}
}

var _ portsrepo.ChangeFeed = (*ChangeNotifier)(nil)

// Watch returns a channel receiving the name of each collection that changes
// until ctx is done.
func (n *ChangeNotifier) Watch(ctx context.Context) <-chan portsrepo.Collection {
	ch := make(chan portsrepo.Collection, watchBuffer)

	n.mu.Lock()
	n.watchers[ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.watchers, ch)
		close(ch)
		n.mu.Unlock()
	}()

	return ch
}

// Notify signals a document mutation to all watchers and the sync feed.
func (n *ChangeNotifier) Notify(ctx context.Context, collection portsrepo.Collection, docID string, action models.ChangeAction) {
	if n == nil {
		return
	}

	n.mu.Lock()
	for ch := range n.watchers {
		select {
		case ch <- collection:
		default:
		}
	}
	n.mu.Unlock()

	n.publisher.PublishChange(ctx, collection, docID, action)
}
