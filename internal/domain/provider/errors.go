package provider

import "errors"

var (
	ErrArtistNotFound       = errors.New("artist not found")
	ErrStudioNotFound       = errors.New("studio not found")
	ErrNotOwner             = errors.New("you can only edit your own profile")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
	ErrSlugTaken            = errors.New("slug is already taken")
)
