package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Guru-25/FreeFusion/internal/client/gateway"
	"github.com/stretchr/testify/require"
)

func requestDoc(id, title, contact string) gateway.Document {
	return gateway.Document{ID: id, Fields: map[string]any{
		"projectTitle": title,
		"contactInfo":  contact,
	}}
}

func TestSync_LoadingVisibleBeforeFetch(t *testing.T) {
	fake := &fakeGateway{GetAllDocs: []gateway.Document{requestDoc("r1", "Logo", "c@d.e")}}
	f := NewFeedSynchronizer(fake, testLogger())

	var stateDuringFetch FeedState
	fake.OnGetAll = func() { stateDuringFetch = f.View().State }

	v := f.Sync(context.Background())
	require.Equal(t, FeedLoading, stateDuringFetch)
	require.Equal(t, FeedReady, v.State)
}

func TestSync_ReadyPreservesGatewayOrder(t *testing.T) {
	fake := &fakeGateway{GetAllDocs: []gateway.Document{
		requestDoc("b", "Second", "b@x.y"),
		requestDoc("a", "First", "a@x.y"),
	}}
	f := NewFeedSynchronizer(fake, testLogger())

	v := f.Sync(context.Background())
	require.Equal(t, FeedReady, v.State)
	require.Len(t, v.Items, 2)
	require.Equal(t, "b", v.Items[0].ID)
	require.Equal(t, "a", v.Items[1].ID)
}

func TestSync_EmptyReadyIsNotError(t *testing.T) {
	fake := &fakeGateway{}
	f := NewFeedSynchronizer(fake, testLogger())

	v := f.Sync(context.Background())
	require.Equal(t, FeedReady, v.State)
	require.Empty(t, v.Items)
	require.NoError(t, v.Err)
	require.NotNil(t, v.Items, "empty Ready must carry an empty slice, not nil")
}

func TestSync_Error(t *testing.T) {
	cause := errors.New("network down")
	fake := &fakeGateway{GetAllErr: cause}
	f := NewFeedSynchronizer(fake, testLogger())

	v := f.Sync(context.Background())
	require.Equal(t, FeedError, v.State)
	require.ErrorIs(t, v.Err, cause)
	require.Empty(t, v.Items)
}

func TestSync_MalformedDocumentsSkipped(t *testing.T) {
	fake := &fakeGateway{GetAllDocs: []gateway.Document{
		requestDoc("ok", "Valid", "v@x.y"),
		{ID: "broken", Fields: map[string]any{"description": "no title"}},
	}}
	f := NewFeedSynchronizer(fake, testLogger())

	v := f.Sync(context.Background())
	require.Equal(t, FeedReady, v.State)
	require.Len(t, v.Items, 1)
	require.Equal(t, "ok", v.Items[0].ID)
}

func TestSync_SequentialCyclesAreIndependent(t *testing.T) {
	cause := errors.New("boom")
	fake := &fakeGateway{GetAllErr: cause}
	f := NewFeedSynchronizer(fake, testLogger())

	first := f.Sync(context.Background())
	require.Equal(t, FeedError, first.State)

	// The second cycle starts from Loading again and reaches its own
	// terminal state.
	fake.GetAllErr = nil
	fake.GetAllDocs = []gateway.Document{requestDoc("r1", "Logo", "c@d.e")}

	var stateDuringFetch FeedState
	fake.OnGetAll = func() { stateDuringFetch = f.View().State }

	second := f.Sync(context.Background())
	require.Equal(t, FeedLoading, stateDuringFetch)
	require.Equal(t, FeedReady, second.State)
	require.NoError(t, second.Err)
	require.Equal(t, 2, fake.GetAllCalls)
}

func TestFeedSynchronizer_InitialStateIsLoading(t *testing.T) {
	f := NewFeedSynchronizer(&fakeGateway{}, testLogger())
	require.Equal(t, FeedLoading, f.View().State)
}
