package errors

import "errors"

var (
	ErrInvalidReportRequest = errors.New("invalid report request")
	ErrPDFUnavailable       = errors.New("pdf rendering is not configured")
)
