// Package spellerr defines the structured error kinds spellkit raises at
// dictionary load time and during document checking.
package spellerr

import "fmt"

// Kind classifies a spellkit error for callers that want to branch on it
// (for example a CLI collaborator mapping it to an exit code) without
// parsing the message text.
type Kind int

const (
	// DictionaryNotFound means the referenced dictionary file, or a
	// required companion file (.aff alongside .dic), does not exist.
	DictionaryNotFound Kind = iota
	// InvalidDictionaryFormat means a .aff or .dic source failed to parse:
	// bad header, malformed rule body, unparseable condition, wrong flag mode.
	InvalidDictionaryFormat
	// Configuration means a required parameter was missing or invalid.
	Configuration
	// SpellcheckError is the umbrella for unexpected runtime failures
	// during checking that are not covered by the other three kinds.
	SpellcheckError
)

func (k Kind) String() string {
	switch k {
	case DictionaryNotFound:
		return "dictionary not found"
	case InvalidDictionaryFormat:
		return "invalid dictionary format"
	case Configuration:
		return "configuration error"
	case SpellcheckError:
		return "spellcheck error"
	default:
		return "unknown error"
	}
}

// Error is the single structured error type spellkit raises. Path and Line
// are optional: Line is only meaningful for InvalidDictionaryFormat, Path
// is only meaningful when the error is about a specific file.
type Error struct {
	Kind    Kind
	Path    string
	Line    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == InvalidDictionaryFormat && e.Path != "" && e.Line > 0:
		return fmt.Sprintf("parse error at %s:%d: %s", e.Path, e.Line, e.Message)
	case e.Kind == DictionaryNotFound && e.Path != "":
		return fmt.Sprintf("file not found: %s", e.Path)
	case e.Kind == Configuration:
		return fmt.Sprintf("configuration error: %s", e.Message)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NotFound builds a DictionaryNotFound error for the given path.
func NotFound(path string, cause error) *Error {
	return &Error{Kind: DictionaryNotFound, Path: path, Message: "no such file or directory", Cause: cause}
}

// BadFormat builds an InvalidDictionaryFormat error with a line reference.
func BadFormat(path string, line int, msg string) *Error {
	return &Error{Kind: InvalidDictionaryFormat, Path: path, Line: line, Message: msg}
}

// BadConfig builds a Configuration error.
func BadConfig(msg string) *Error {
	return &Error{Kind: Configuration, Message: msg}
}

// Runtime builds a SpellcheckError for unexpected runtime failures.
func Runtime(msg string, cause error) *Error {
	return &Error{Kind: SpellcheckError, Message: msg, Cause: cause}
}
