package usecase

import "errors"

// Error codes surfaced to the router. Callers branch on these instead
// of matching message text.
const (
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeFetchFailed      = "FETCH_FAILED"
	CodeLookupFailed     = "LOOKUP_FAILED"
	CodeAppendFailed     = "APPEND_FAILED"
	CodeWriteFailed      = "WRITE_FAILED"
	CodeMissingRef       = "MISSING_REF"
)

// ErrTableNotFound is returned (wrapped) by store adapters when the
// named table does not exist. The engine maps it to STORE_UNAVAILABLE.
var ErrTableNotFound = errors.New("table not found")

type SyncError struct {
	Code    string
	Message string
	Err     error
}

func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// ErrCode extracts the sync error code, or "" for foreign errors.
func ErrCode(err error) string {
	var se *SyncError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func syncErr(code, msg string, err error) *SyncError {
	return &SyncError{Code: code, Message: msg, Err: err}
}
