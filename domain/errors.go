package domain

import "errors"

var (
	// ErrUnauthorized indicates the server rejected the action because the
	// caller is not signed in.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyTitle indicates the user submitted a story without a title.
	ErrEmptyTitle = errors.New("story title cannot be empty")

	// ErrEmptyDetail indicates the user submitted a story without detail text.
	ErrEmptyDetail = errors.New("story detail cannot be empty")

	// ErrNoAnswer indicates a questionnaire submit without a selected answer.
	ErrNoAnswer = errors.New("no answer selected")
)
