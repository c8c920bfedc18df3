package content

import "strings"

// ErrKind classifies store failures for the HTTP layer.
type ErrKind int

const (
	KindNotFound ErrKind = iota
	KindValidation
	KindUnexpected
)

// OpError reports an operation failure as a kind plus one message per
// problem. Validation failures carry one entry per bad field.
type OpError struct {
	Kind ErrKind
	Msgs []string
}

func (e *OpError) Error() string {
	return strings.Join(e.Msgs, "; ")
}

func notFound(id string) *OpError {
	return &OpError{Kind: KindNotFound, Msgs: []string{"content '" + id + "' not found"}}
}

func invalid(msgs []string) *OpError {
	return &OpError{Kind: KindValidation, Msgs: msgs}
}
