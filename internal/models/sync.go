package models

// RetryableError wraps a transient sink failure (network error, timeout,
// server overload). The record stays queued and is retried on the next
// drain pass.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable sync error: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// RejectedError is a permanent sink failure (validation rejection, conflict,
// entity no longer exists). The record is dropped and counted as failed;
// retrying it would fail the same way.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "mutation rejected: " + e.Reason
}
