package diagnostic

import (
	"errors"
	"fmt"
)

// Kind classifies a problem found while loading definitions or parsing text.
type Kind string

const (
	SyntaxError                   Kind = "syntax_error"
	UnknownVariation              Kind = "unknown_variation"
	EmptyAliasBranch              Kind = "empty_alias_branch"
	NameStartsWithNumber          Kind = "name_starts_with_number"
	InvalidItemData               Kind = "invalid_item_data"
	InvalidRange                  Kind = "invalid_range"
	OutOfDataRange                Kind = "out_of_data_range"
	InvalidID                     Kind = "invalid_id"
	InvalidBlockData              Kind = "invalid_block_data"
	InvalidItemType               Kind = "invalid_item_type"
	InvalidAmount                 Kind = "invalid_amount"
	InvalidSection                Kind = "invalid_section"
	SectionNotFound               Kind = "section_not_found"
	NotASection                   Kind = "not_a_section"
	UnexpectedSection             Kind = "unexpected_section"
	UnexpectedNonVariationSection Kind = "unexpected_non_variation_section"
	UnexpectedEntry               Kind = "unexpected_entry"
	EmptyString                   Kind = "empty_string"
	DiscouragedID                 Kind = "discouraged_id"
	MissingAliases                Kind = "missing_aliases"
)

// Severity of a reported diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "error"
	}
}

// Diagnostic is a non-fatal report handed to a reporter. Node names the
// definition entry being processed, if any.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Node     string
}

// Error is the failure returned by parsing operations.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// FromError turns a failure into an error-level Diagnostic.
func FromError(err error, node string) Diagnostic {
	kind := KindOf(err)
	if kind == "" {
		kind = SyntaxError
	}
	return Diagnostic{Kind: kind, Severity: SeverityError, Message: err.Error(), Node: node}
}

// Warning builds a warning-level Diagnostic.
func Warning(kind Kind, node, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...), Node: node}
}

// Failure builds an error-level Diagnostic.
func Failure(kind Kind, node, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Severity: SeverityError, Message: fmt.Sprintf(format, args...), Node: node}
}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Discard drops every diagnostic. Used for speculative parses.
var Discard = discard{}
