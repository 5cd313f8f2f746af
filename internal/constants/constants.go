package constants

// Context / session keys
const (
	ContextKeyUserID  = "user_id"
	ContextKeyIsGuest = "is_guest"
)

// SessionCookieName is the cookie carrying the session ID.
const SessionCookieName = "teamspace_session"

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8
