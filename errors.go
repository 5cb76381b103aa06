// errors.go
//
// This file implements the taxonomy of errors that hooks and engine
// operations report. Player-facing operations are total: they return a
// tagged result or a *EngineError, never a panic. Broken internal
// invariants are reported as EngineFault; reporting one does not move the
// owning Game to GAME_OVER.

package lexengine

import "fmt"

// Kind enumerates the error taxonomy from the engine's failure model.
type Kind int

const (
	// KindNotFound indicates an unknown game or player.
	KindNotFound Kind = iota
	// KindStateViolation indicates a hook invalid for the current game state.
	KindStateViolation
	// KindTurnViolation indicates the caller is not the current player.
	KindTurnViolation
	// KindInvalidPlacement indicates an off-board, overlapping, disconnected,
	// or rack-unsatisfiable placement.
	KindInvalidPlacement
	// KindLexiconReject indicates one or more formed words are not in the
	// dictionary.
	KindLexiconReject
	// KindExhausted indicates the bag is empty when a draw was required.
	KindExhausted
	// KindCorruptDictionary indicates a malformed DAWG file.
	KindCorruptDictionary
	// KindUnknownLetter indicates a query referenced a letter outside the
	// dictionary's alphabet.
	KindUnknownLetter
	// KindEngineFault indicates a broken internal invariant. Raising it
	// leaves the owning Game's state unchanged.
	KindEngineFault
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindStateViolation:
		return "StateViolation"
	case KindTurnViolation:
		return "TurnViolation"
	case KindInvalidPlacement:
		return "InvalidPlacement"
	case KindLexiconReject:
		return "LexiconReject"
	case KindExhausted:
		return "Exhausted"
	case KindCorruptDictionary:
		return "CorruptDictionary"
	case KindUnknownLetter:
		return "UnknownLetter"
	case KindEngineFault:
		return "EngineFault"
	default:
		return "Unknown"
	}
}

// EngineError is the concrete error type returned by every hook and
// engine-level operation that can fail.
type EngineError struct {
	Kind    Kind
	Message string
	Wrapped error
}

func (e *EngineError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Wrapped
}

// newErr builds an *EngineError of the given kind with a formatted message.
func newErr(kind Kind, format string, args ...interface{}) *EngineError {
	return &EngineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func errNotFound(format string, args ...interface{}) *EngineError {
	return newErr(KindNotFound, format, args...)
}

func errStateViolation(format string, args ...interface{}) *EngineError {
	return newErr(KindStateViolation, format, args...)
}

func errTurnViolation(format string, args ...interface{}) *EngineError {
	return newErr(KindTurnViolation, format, args...)
}

func errInvalidPlacement(format string, args ...interface{}) *EngineError {
	return newErr(KindInvalidPlacement, format, args...)
}

func errLexiconReject(format string, args ...interface{}) *EngineError {
	return newErr(KindLexiconReject, format, args...)
}

func errExhausted(format string, args ...interface{}) *EngineError {
	return newErr(KindExhausted, format, args...)
}

func errCorruptDictionary(format string, args ...interface{}) *EngineError {
	return newErr(KindCorruptDictionary, format, args...)
}

func errUnknownLetter(format string, args ...interface{}) *EngineError {
	return newErr(KindUnknownLetter, format, args...)
}

// errEngineFault builds a KindEngineFault error for an invariant
// violation. It does not change any Game's state.
func errEngineFault(format string, args ...interface{}) *EngineError {
	return newErr(KindEngineFault, format, args...)
}
