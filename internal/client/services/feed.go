package services

import (
	"context"
	"sync"

	"github.com/Guru-25/FreeFusion/internal/client/gateway"
	"github.com/Guru-25/FreeFusion/internal/client/models"
	"github.com/Guru-25/FreeFusion/internal/common"
	"github.com/Guru-25/FreeFusion/internal/logging"
)

// FeedState is the externally observable phase of a feed synchronization.
// Exactly one of the three is active at a time.
type FeedState int

const (
	FeedLoading FeedState = iota
	FeedError
	FeedReady
)

func (s FeedState) String() string {
	switch s {
	case FeedLoading:
		return "loading"
	case FeedError:
		return "error"
	case FeedReady:
		return "ready"
	}
	return "unknown"
}

// FeedView is a snapshot of the feed's view state. Items is only meaningful
// in FeedReady (an empty slice is a valid Ready state and renders as
// "no projects available"); Err is only meaningful in FeedError.
type FeedView struct {
	State FeedState
	Items []models.ProjectRequest
	Err   error
}

// FeedSynchronizer fetches the customer_requests collection and reduces it
// into a FeedView. One Sync call produces exactly one Loading -> terminal
// transition; there is no polling and no retry.
type FeedSynchronizer struct {
	gw     gateway.Gateway
	logger logging.Logger

	mu   sync.Mutex
	view FeedView
}

func NewFeedSynchronizer(gw gateway.Gateway, logger logging.Logger) *FeedSynchronizer {
	return &FeedSynchronizer{
		gw:     gw,
		logger: logger.With("component", "feed"),
		view:   FeedView{State: FeedLoading},
	}
}

// View returns the current view-state snapshot.
func (f *FeedSynchronizer) View() FeedView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.view
}

// Sync runs one synchronization cycle and returns the terminal view. The
// Loading state is published before the fetch is issued, so an observer
// polling View never misses the Loading phase.
func (f *FeedSynchronizer) Sync(ctx context.Context) FeedView {
	f.setView(FeedView{State: FeedLoading})

	docs, err := f.gw.GetAllDocuments(ctx, common.CollectionCustomerRequests)
	if err != nil {
		f.logger.Error(ctx, "error fetching requests", "error", err)
		v := FeedView{State: FeedError, Err: err}
		f.setView(v)
		return v
	}

	// Gateway-determined order is preserved; nothing is re-sorted.
	items := make([]models.ProjectRequest, 0, len(docs))
	for _, doc := range docs {
		req, err := models.ProjectRequestFromDocument(doc)
		if err != nil {
			f.logger.Warn(ctx, "skipping malformed request document", "id", doc.ID, "error", err)
			continue
		}
		items = append(items, *req)
	}

	v := FeedView{State: FeedReady, Items: items}
	f.setView(v)
	return v
}

func (f *FeedSynchronizer) setView(v FeedView) {
	f.mu.Lock()
	f.view = v
	f.mu.Unlock()
}
