package unsplash

import "time"

// Orientation of a photo.
type Orientation string

// Orientation values accepted by the API.
const (
	OrientationPortrait  Orientation = "Portrait"
	OrientationLandscape Orientation = "Landscape"
	OrientationSquarish  Orientation = "Squarish"
)

// Order of listing results.
type Order string

// Order values accepted by the API. Latest is the default when unspecified.
const (
	OrderLatest  Order = "Latest"
	OrderOldest  Order = "Oldest"
	OrderPopular Order = "Popular"
)

// Photo is a photo on Unsplash.
type Photo struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Color       string    `json:"color"`
	Likes       int       `json:"likes"`
	LikedByUser bool      `json:"liked_by_user"`
	Description string    `json:"description"`
	// User who posted the photo.
	User User `json:"user"`
	// Collections of the current user containing the photo.
	CurrentUserCollections []Collection `json:"current_user_collections"`
	URLs                   PhotoURLs    `json:"urls"`
	Links                  PhotoLinks   `json:"links"`
}

// Collection is a collection of photos on Unsplash.
type Collection struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Curated     bool      `json:"curated"`
}

// PhotoURLs point to a photo in various sizes.
type PhotoURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// PhotoLinks are the API and web links of a photo.
type PhotoLinks struct {
	Self     string `json:"self"`
	HTML     string `json:"html"`
	Download string `json:"download"`
	// DownloadLocation is the API endpoint that yields the tracked
	// download URL, see Client.DownloadURL.
	DownloadLocation string `json:"download_location"`
}

// User is a user on Unsplash.
type User struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	PortfolioURL      string `json:"portfolio_url"`
	Email             string `json:"email"`
	Bio               string `json:"bio"`
	Location          string `json:"location"`
	TotalLikes        int    `json:"total_likes"`
	TotalPhotos       int    `json:"total_photos"`
	TotalCollections  int    `json:"total_collections"`
	InstagramUsername string `json:"instagram_username"`
	TwitterUsername   string `json:"twitter_username"`
	// ProfileImage links to the user's avatar in various sizes.
	ProfileImage ProfileImage `json:"profile_image"`
	Links        UserLinks    `json:"links"`
	UpdatedAt    *time.Time   `json:"updated_at"`
	// FollowedByUser is only set when the request is authenticated with a
	// bearer token.
	FollowedByUser *bool `json:"followed_by_user"`
}

// ProfileImage links to a user's avatar in various sizes.
type ProfileImage struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// UserLinks are the API and web links of a user.
type UserLinks struct {
	Self      string `json:"self"`
	HTML      string `json:"html"`
	Photos    string `json:"photos"`
	Likes     string `json:"likes"`
	Portfolio string `json:"portfolio"`
}
