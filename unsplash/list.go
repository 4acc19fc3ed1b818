package unsplash

import "context"

// ListPhotos is a request builder for the photo listing endpoint, created by
// Client.ListPhotos. Unsplash paginates the listing; all parameters are
// optional.
type ListPhotos struct {
	c       *Client
	page    *int
	perPage *int
	orderBy *Order
}

type listParams struct {
	Page    *int   `url:"page"`
	PerPage *int   `url:"per_page"`
	OrderBy *Order `url:"order_by"`
}

// ListPhotos starts building a photo listing request.
func (c *Client) ListPhotos() ListPhotos {
	return ListPhotos{c: c}
}

// Page selects the page to fetch. Pages start at 1; Page panics if page is 0.
func (l ListPhotos) Page(page int) ListPhotos {
	mustPositive(page, "page")
	l.page = &page
	return l
}

// PerPage sets the number of photos per page. PerPage panics if perPage is 0.
func (l ListPhotos) PerPage(perPage int) ListPhotos {
	mustPositive(perPage, "per_page")
	l.perPage = &perPage
	return l
}

// OrderBy sets the ordering of the listing.
func (l ListPhotos) OrderBy(order Order) ListPhotos {
	l.orderBy = &order
	return l
}

// Get fetches the page of photos.
func (l ListPhotos) Get(ctx context.Context) ([]Photo, error) {
	params := listParams{
		Page:    l.page,
		PerPage: l.perPage,
		OrderBy: l.orderBy,
	}
	return GetJSON[[]Photo](ctx, &l.c.public, params, l.c.photosURL)
}
