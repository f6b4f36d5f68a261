// Copyright (c) 2026 Foodgram

/*
Package account handles public user profiles and avatar management.

The profile read model is viewer-relative: IsSubscribed reflects whether
the requesting user follows the profile, always false for anonymous
viewers and for one's own profile. The User entity itself lives in the
auth package; this package only projects it.
*/
package account

import "context"

// Profile is the public projection of an account.
type Profile struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Avatar       string `json:"avatar"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// Repository defines read access to profiles and avatar updates.
type Repository interface {
	// FindProfile loads one profile with the viewer-relative flag.
	// viewerID 0 means anonymous.
	FindProfile(context context.Context, id, viewerID int64) (*Profile, error)

	// ListProfiles pages through all accounts, newest registration first.
	ListProfiles(context context.Context, viewerID int64, limit, offset int) ([]*Profile, int, error)

	// UpdateAvatar stores the media reference, empty to clear.
	UpdateAvatar(context context.Context, id int64, avatar string) error
}
