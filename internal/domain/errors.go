package domain

import "errors"

var (
	// ErrUnauthorized is returned when the caller is not authenticated
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrNotViewer is returned when a non-viewer requests a referral link
	ErrNotViewer = errors.New("Only viewers can generate referral links")

	// ErrNotCreator is returned when a non-creator manages content
	ErrNotCreator = errors.New("Only creators can manage content")

	// ErrAccountFlagged is returned when the anti-bot scorer rejects the caller
	ErrAccountFlagged = errors.New("Account flagged for suspicious activity")

	// ErrShareRateLimited is returned when the viewer exceeded the hourly share cap
	ErrShareRateLimited = errors.New("Share rate limit exceeded. Please wait before sharing again.")

	// ErrLinkNotFound is returned when a referral link does not exist or is not owned by the caller
	ErrLinkNotFound = errors.New("link not found")

	// ErrContentNotFound is returned when content does not exist or is not visible
	ErrContentNotFound = errors.New("content not found")

	// ErrContentInactive is returned when an action requires active content
	ErrContentInactive = errors.New("content is not active")

	// ErrShareNotFound is returned when a social share does not exist
	ErrShareNotFound = errors.New("share not found")

	// ErrNotificationNotFound is returned when a notification does not exist for the user
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedResponse is returned when an external response cannot be parsed into its typed model
	ErrMalformedResponse = errors.New("malformed response")
)
