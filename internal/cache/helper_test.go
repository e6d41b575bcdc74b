package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestAside_MissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedThing) func() error {
		return func() error {
			fetches++
			*dest = cachedThing{Name: "fetched", Count: fetches}
			return nil
		}
	}

	var first cachedThing
	require.NoError(t, Aside(ctx, "thing:1", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "fetched", first.Name)

	// Second read is served from the cache; fetch does not run again.
	var second cachedThing
	require.NoError(t, Aside(ctx, "thing:1", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, first, second)
}

func TestAside_FetchErrorPropagates(t *testing.T) {
	setupMiniredis(t)

	var dest cachedThing
	err := Aside(context.Background(), "thing:err", &dest, time.Minute, func() error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAside_ExpiredEntryRefetches(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	var dest cachedThing
	fetch := func() error {
		fetches++
		dest = cachedThing{Name: "v", Count: fetches}
		return nil
	}

	require.NoError(t, Aside(ctx, "thing:ttl", &dest, time.Minute, fetch))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, Aside(ctx, "thing:ttl", &dest, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
}

func TestAside_NoClientFallsThrough(t *testing.T) {
	SetClient(nil)

	fetches := 0
	var dest cachedThing
	fetch := func() error {
		fetches++
		return nil
	}

	ctx := context.Background()
	require.NoError(t, Aside(ctx, "thing:none", &dest, time.Minute, fetch))
	require.NoError(t, Aside(ctx, "thing:none", &dest, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
}

func TestInvalidatePost_DropsPostAndListing(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	postID := uuid.New()
	require.NoError(t, SetJSON(ctx, PostKey(postID), cachedThing{Name: "p"}, time.Minute))
	require.NoError(t, SetJSON(ctx, PublishedPostsKey, []cachedThing{}, time.Minute))
	require.NoError(t, SetJSON(ctx, PostKey(uuid.New()), cachedThing{Name: "other"}, time.Minute))

	InvalidatePost(ctx, postID)

	assert.False(t, mr.Exists(PostKey(postID)))
	assert.False(t, mr.Exists(PublishedPostsKey))
	assert.Len(t, mr.Keys(), 1)
}
