package domain

import "errors"

var (
	ErrLoginRejected   = errors.New("login rejected")
	ErrCommentRejected = errors.New("comment rejected")
	ErrProductNotFound = errors.New("product not found")
	ErrSecretNotFound  = errors.New("secret not found")
)
