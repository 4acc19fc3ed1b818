package unsplash

import "context"

// CurrentUser fetches the profile of the user the bearer token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	config, err := c.bearerConfig()
	if err != nil {
		return User{}, err
	}
	return GetJSON[User](ctx, config, nil, c.meURL)
}

// UserUpdate is a request builder for updating the current user's profile,
// created by Client.UpdateProfile. Only the fields that were set are sent.
type UserUpdate struct {
	c                 *Client
	username          *string
	firstName         *string
	lastName          *string
	email             *string
	url               *string
	location          *string
	bio               *string
	instagramUsername *string
}

type userUpdateParams struct {
	Username          *string `url:"username"`
	FirstName         *string `url:"first_name"`
	LastName          *string `url:"last_name"`
	Email             *string `url:"email"`
	URL               *string `url:"url"`
	Location          *string `url:"location"`
	Bio               *string `url:"bio"`
	InstagramUsername *string `url:"instagram_username"`
}

// UpdateProfile starts building a profile update for the current user.
func (c *Client) UpdateProfile() UserUpdate {
	return UserUpdate{c: c}
}

// Username updates the user's username.
func (u UserUpdate) Username(username string) UserUpdate {
	u.username = &username
	return u
}

// FirstName updates the user's first name.
func (u UserUpdate) FirstName(firstName string) UserUpdate {
	u.firstName = &firstName
	return u
}

// LastName updates the user's last name.
func (u UserUpdate) LastName(lastName string) UserUpdate {
	u.lastName = &lastName
	return u
}

// Email updates the user's email.
func (u UserUpdate) Email(email string) UserUpdate {
	u.email = &email
	return u
}

// URL updates the user's portfolio URL.
func (u UserUpdate) URL(url string) UserUpdate {
	u.url = &url
	return u
}

// Location updates the user's location.
func (u UserUpdate) Location(location string) UserUpdate {
	u.location = &location
	return u
}

// Bio updates the user's bio.
func (u UserUpdate) Bio(bio string) UserUpdate {
	u.bio = &bio
	return u
}

// InstagramUsername updates the user's Instagram username.
func (u UserUpdate) InstagramUsername(username string) UserUpdate {
	u.instagramUsername = &username
	return u
}

// Do applies the update and returns the updated profile.
func (u UserUpdate) Do(ctx context.Context) (User, error) {
	config, err := u.c.bearerConfig()
	if err != nil {
		return User{}, err
	}
	params := userUpdateParams{
		Username:          u.username,
		FirstName:         u.firstName,
		LastName:          u.lastName,
		Email:             u.email,
		URL:               u.url,
		Location:          u.location,
		Bio:               u.bio,
		InstagramUsername: u.instagramUsername,
	}
	return PutJSON[User](ctx, config, params, u.c.meURL)
}
