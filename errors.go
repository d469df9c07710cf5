package astexpr

import "fmt"

// Code identifies a failure category. The zero value means no error.
type Code int

// error codes.
const (
	CodeMemory  Code = -1  // Allocation failure
	CodeInit    Code = -2  // Handle not initialised or already destroyed
	CodeString  Code = -3  // Expression string missing or blank
	CodeToken   Code = -4  // Tokenization or tree construction failure
	CodeExist   Code = -5  // Tree has already been built on this handle
	CodeNoExpr  Code = -6  // No tree has been built yet
	CodeVar     Code = -7  // Variable array missing
	CodeValue   Code = -8  // Evaluation value storage mismatch
	CodeSize    Code = -9  // Variable array too short
	CodeEval    Code = -10 // Evaluator reached an unknown token
	CodeNumVar  Code = -11 // Too many distinct variables
	CodeUnknown Code = -99
)

// Error records a failure of a build or evaluation. For token errors it
// carries the input expression and the byte offset of the offending
// character, so the message can point at the exact location.
type Error struct {
	Code Code   // Failure category
	Msg  string // Parser-chosen message for token errors
	Expr string // The input expression
	Pos  int    // Byte offset of the offending character
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code == CodeToken {
		return fmt.Sprintf("%s at position %d", e.message(), e.Pos)
	}

	return e.message()
}

// message returns the human-readable text for the error code.
func (e *Error) message() string {
	switch e.Code {
	case CodeMemory:
		return "failed to allocate memory"
	case CodeInit:
		return "the abstract syntax tree is not initialised"
	case CodeString:
		return "invalid expression string"
	case CodeToken:
		if e.Msg != "" {
			return e.Msg
		}
		return "uncaught error of the expression"
	case CodeExist:
		return "the abstract syntax tree has already been built"
	case CodeNoExpr:
		return "the abstract syntax tree has not been built"
	case CodeVar:
		return "the variable array is not set"
	case CodeValue:
		return "mismatched value type for the evaluation"
	case CodeSize:
		return "not enough elements in the variable array"
	case CodeEval:
		return "unknown error for evaluation"
	case CodeNumVar:
		return "too many variables"
	default:
		return "unknown error"
	}
}

// Is reports whether target carries the same error code, so callers can
// match with errors.Is against an &Error{Code: ...} template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// tokenError builds a token error pointing at a position in the expression.
func tokenError(msg, expr string, pos int) *Error {
	return &Error{Code: CodeToken, Msg: msg, Expr: expr, Pos: pos}
}
