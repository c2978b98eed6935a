package domain

// ErrorKind classifies the terminal failure modes of a mapping operation.
// Every failure reported by the adapter carries exactly one kind.
type ErrorKind int

const (
	// KindTransport indicates the HTTP client reported a transport-level
	// failure (connection error, timeout, cancellation). The body, if any,
	// is never inspected.
	KindTransport ErrorKind = iota

	// KindNoData indicates the exchange completed at the transport level
	// but carried no response body.
	KindNoData

	// KindMappingFailed indicates a body was present but no object could
	// be produced from it (unparseable JSON, key path miss, or failed
	// field coercion).
	KindMappingFailed

	// KindPersistence indicates the write transaction could not be
	// acquired or committed. Mapping itself may have succeeded.
	KindPersistence
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindNoData:
		return "no_data"
	case KindMappingFailed:
		return "mapping_failed"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Canonical failure messages. These are part of the adapter contract and
// asserted by callers, so they must not drift.
const (
	NoDataMessage        = "Data could not be serialized. Input data was nil."
	MappingFailedMessage = "ObjectMapper failed to serialize response."
)

// Error is the typed failure carried inside an Outcome.
// It wraps the underlying cause where one exists (e.g. the transport
// error surfaced verbatim from the HTTP client).
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// TransportError builds the failure for a transport-level error reported
// by the HTTP client. The original error is preserved as the cause.
func TransportError(cause error) *Error {
	msg := "request failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: KindTransport, Message: msg, Cause: cause}
}

// NoDataError builds the failure for an exchange with no response body.
func NoDataError() *Error {
	return &Error{Kind: KindNoData, Message: NoDataMessage}
}

// MappingError builds the failure for a body that could not be mapped.
func MappingError(cause error) *Error {
	return &Error{Kind: KindMappingFailed, Message: MappingFailedMessage, Cause: cause}
}

// PersistenceError builds the failure for a transaction that could not be
// acquired or committed.
func PersistenceError(cause error) *Error {
	return &Error{Kind: KindPersistence, Message: "persistence transaction failed", Cause: cause}
}
