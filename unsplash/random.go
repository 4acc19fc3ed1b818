package unsplash

import (
	"context"
	"strings"
)

// Random is the base stage of the staged random-photo request builder,
// created by Client.RandomPhoto.
//
// The base stage accepts any combination of the optional filters below, in
// any order; re-setting a filter overwrites it. From here exactly one of
// three exclusive narrowing steps may be taken: Query, Collections, or
// Count. Each stage is an immutable value; mutators return a new value and
// later stages simply do not have the methods that would reopen an earlier
// choice.
type Random struct {
	c           *Client
	featured    *bool
	username    *string
	width       *int
	height      *int
	orientation *Orientation
}

// RandomQuery is the stage of a random-photo request restricted to a
// free-text query. Only the photo count can still be fixed.
type RandomQuery struct {
	rand  Random
	query string
}

// RandomCollection is the stage of a random-photo request restricted to a
// set of collections. Only the photo count can still be fixed.
type RandomCollection struct {
	rand       Random
	collection string
}

// RandomCount is the terminal stage of a random-photo request with a fixed
// photo count and no restriction.
type RandomCount struct {
	rand  Random
	count int
}

// RandomQueryCount is the terminal stage of a random-photo request with a
// fixed photo count, restricted to a free-text query.
type RandomQueryCount struct {
	rand  RandomQuery
	count int
}

// RandomCollectionCount is the terminal stage of a random-photo request with
// a fixed photo count, restricted to a set of collections.
type RandomCollectionCount struct {
	rand  RandomCollection
	count int
}

// randomParams is the flattened parameter set of an un-counted stage.
type randomParams struct {
	Featured    *bool        `url:"featured"`
	Username    *string      `url:"username"`
	Width       *int         `url:"w"`
	Height      *int         `url:"h"`
	Orientation *Orientation `url:"orientation"`
	Collection  *string      `url:"collection"`
	Query       *string      `url:"query"`
}

// randomCountParams is the flattened parameter set of a counted stage.
type randomCountParams struct {
	Featured    *bool        `url:"featured"`
	Username    *string      `url:"username"`
	Width       *int         `url:"w"`
	Height      *int         `url:"h"`
	Orientation *Orientation `url:"orientation"`
	Collection  *string      `url:"collection"`
	Query       *string      `url:"query"`
	Count       int          `url:"count"`
}

// RandomPhoto starts building a random-photo request.
func (c *Client) RandomPhoto() Random {
	return Random{c: c}
}

// Featured restricts the photos to featured photos only.
func (r Random) Featured(featured bool) Random {
	r.featured = &featured
	return r
}

// Username restricts the photos to photos by the given user.
func (r Random) Username(username string) Random {
	r.username = &username
	return r
}

// Width restricts the photos to the given width.
func (r Random) Width(w int) Random {
	r.width = &w
	return r
}

// Height restricts the photos to the given height.
func (r Random) Height(h int) Random {
	r.height = &h
	return r
}

// Orientation restricts the photos to the given orientation.
func (r Random) Orientation(orientation Orientation) Random {
	r.orientation = &orientation
	return r
}

// Query restricts the photos to photos matching the given query. Only the
// photo count can be set afterwards.
func (r Random) Query(query string) RandomQuery {
	return RandomQuery{rand: r, query: query}
}

// Collections restricts the photos to photos within the given collections.
// Only the photo count can be set afterwards.
func (r Random) Collections(ids ...string) RandomCollection {
	return RandomCollection{rand: r, collection: strings.Join(ids, ",")}
}

// Count fixes the number of photos to get. Nothing can be set afterwards.
// Count panics if count is 0.
func (r Random) Count(count int) RandomCount {
	mustPositive(count, "count")
	return RandomCount{rand: r, count: count}
}

// Get fetches one random photo matching the accumulated filters.
func (r Random) Get(ctx context.Context) (Photo, error) {
	params := randomParams{
		Featured:    r.featured,
		Username:    r.username,
		Width:       r.width,
		Height:      r.height,
		Orientation: r.orientation,
	}
	return GetJSON[Photo](ctx, &r.c.public, params, r.c.randomURL)
}

// Count fixes the number of photos to get. Nothing can be set afterwards.
// Count panics if count is 0.
func (r RandomQuery) Count(count int) RandomQueryCount {
	mustPositive(count, "count")
	return RandomQueryCount{rand: r, count: count}
}

// Get fetches one random photo matching the query.
func (r RandomQuery) Get(ctx context.Context) (Photo, error) {
	params := randomParams{
		Featured:    r.rand.featured,
		Username:    r.rand.username,
		Width:       r.rand.width,
		Height:      r.rand.height,
		Orientation: r.rand.orientation,
		Query:       &r.query,
	}
	return GetJSON[Photo](ctx, &r.rand.c.public, params, r.rand.c.randomURL)
}

// Count fixes the number of photos to get. Nothing can be set afterwards.
// Count panics if count is 0.
func (r RandomCollection) Count(count int) RandomCollectionCount {
	mustPositive(count, "count")
	return RandomCollectionCount{rand: r, count: count}
}

// Get fetches one random photo from the collections.
func (r RandomCollection) Get(ctx context.Context) (Photo, error) {
	params := randomParams{
		Featured:    r.rand.featured,
		Username:    r.rand.username,
		Width:       r.rand.width,
		Height:      r.rand.height,
		Orientation: r.rand.orientation,
		Collection:  &r.collection,
	}
	return GetJSON[Photo](ctx, &r.rand.c.public, params, r.rand.c.randomURL)
}

// Get fetches the random photos.
func (r RandomCount) Get(ctx context.Context) ([]Photo, error) {
	params := randomCountParams{
		Featured:    r.rand.featured,
		Username:    r.rand.username,
		Width:       r.rand.width,
		Height:      r.rand.height,
		Orientation: r.rand.orientation,
		Count:       r.count,
	}
	return GetJSON[[]Photo](ctx, &r.rand.c.public, params, r.rand.c.randomURL)
}

// Get fetches the random photos matching the query.
func (r RandomQueryCount) Get(ctx context.Context) ([]Photo, error) {
	params := randomCountParams{
		Featured:    r.rand.rand.featured,
		Username:    r.rand.rand.username,
		Width:       r.rand.rand.width,
		Height:      r.rand.rand.height,
		Orientation: r.rand.rand.orientation,
		Query:       &r.rand.query,
		Count:       r.count,
	}
	return GetJSON[[]Photo](ctx, &r.rand.rand.c.public, params, r.rand.rand.c.randomURL)
}

// Get fetches the random photos from the collections.
func (r RandomCollectionCount) Get(ctx context.Context) ([]Photo, error) {
	params := randomCountParams{
		Featured:    r.rand.rand.featured,
		Username:    r.rand.rand.username,
		Width:       r.rand.rand.width,
		Height:      r.rand.rand.height,
		Orientation: r.rand.rand.orientation,
		Collection:  &r.rand.collection,
		Count:       r.count,
	}
	return GetJSON[[]Photo](ctx, &r.rand.rand.c.public, params, r.rand.rand.c.randomURL)
}

// mustPositive rejects zero builder values before any request is built.
// A zero count or page is a programming error in the calling code, not a
// runtime condition to recover from.
func mustPositive(n int, name string) {
	if n < 1 {
		panic("unsplash: " + name + " must be at least 1")
	}
}
