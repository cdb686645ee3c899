package core

import "errors"

type ErrorKind uint8

const (
	_ ErrorKind = iota
	KindNoWalletProvider
	KindConnectionRejected
	KindValidation
	KindSimulatedFee
	KindStorageRead
	KindStorageWrite
	KindNotConnected
)

func (k ErrorKind) String() string {
	switch k {
	case KindNoWalletProvider:
		return "NoWalletProvider"
	case KindConnectionRejected:
		return "ConnectionRejected"
	case KindValidation:
		return "ValidationError"
	case KindSimulatedFee:
		return "SimulatedFeeError"
	case KindStorageRead:
		return "StorageReadError"
	case KindStorageWrite:
		return "StorageWriteError"
	case KindNotConnected:
		return "NotConnected"
	default:
		return "Unknown"
	}
}

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func WrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match against any *Error of the same kind, so the sentinels
// below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNoWalletProvider   = NewError(KindNoWalletProvider, "Phantom wallet not found! Please install Phantom wallet.")
	ErrConnectionRejected = NewError(KindConnectionRejected, "User rejected the request.")
	ErrValidation         = NewError(KindValidation, "invalid token form")
	ErrSimulatedFee       = NewError(KindSimulatedFee, "insufficient SOL to pay transaction fees")
	ErrStorageRead        = NewError(KindStorageRead, "failed to read tokens")
	ErrStorageWrite       = NewError(KindStorageWrite, "failed to write tokens")
	ErrNotConnected       = NewError(KindNotConnected, "Please connect your wallet first")
)

func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
