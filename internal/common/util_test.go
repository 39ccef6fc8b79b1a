package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("hunter2")
	WipeByteArray(b)
	require.Equal(t, make([]byte, 7), b)
}

func TestKnownCollection(t *testing.T) {
	require.True(t, KnownCollection(CollectionCustomers))
	require.True(t, KnownCollection(CollectionFreelancers))
	require.True(t, KnownCollection(CollectionCustomerRequests))
	require.False(t, KnownCollection("users"))
	require.False(t, KnownCollection(""))
}
