// internal/repository/account/error.go
package account

import "strings"

// ErrorKind tags a remote failure. The tag is decided exactly once, here at
// the adapter boundary, so call sites never re-sniff message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindDuplicateEmail
	KindUnreachable
	KindNetwork
)

// Error is a remote account/data service failure with its boundary-assigned
// kind and the service's human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// classify tags a remote message. Precedence mirrors how the failure modes
// overlap: an unreachable server first, then a duplicate email, then a flaky
// network, then everything else.
func classify(message string) *Error {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "fetch"):
		return &Error{Kind: KindUnreachable, Message: message}
	case strings.Contains(lower, "email"), strings.Contains(lower, "already registered"):
		return &Error{Kind: KindDuplicateEmail, Message: message}
	case strings.Contains(lower, "network"), strings.Contains(lower, "connection"):
		return &Error{Kind: KindNetwork, Message: message}
	default:
		return &Error{Kind: KindUnknown, Message: message}
	}
}
