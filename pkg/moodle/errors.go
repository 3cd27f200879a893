package moodle

import (
	"errors"
	"fmt"
)

// Well-known server error codes.
const (
	ErrcodeInvalidToken     = "invalidtoken"
	ErrcodeAccessDenied     = "accessexception"
	ErrcodeInvalidParameter = "invalidparameter"

	// errcodeHTTPStatus is synthesized locally for HTTP-level failures
	// that carry no JSON exception body.
	errcodeHTTPStatus = "httpstatus"
)

// RemoteError is an application-level error returned by the Moodle web
// service. HTTP responses with status >= 400 and no JSON exception body
// are reported with the synthetic errorcode "httpstatus".
type RemoteError struct {
	Errorcode string
	Message   string
	URL       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("moodle: %s: %s (%s)", e.Errorcode, e.Message, e.URL)
}

// IsInvalidToken reports whether err is a RemoteError caused by an
// expired or revoked token. The client re-logs-in and retries once on
// this error before surfacing it.
func IsInvalidToken(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Errorcode == ErrcodeInvalidToken
}

// IsAccessDenied reports whether err is a RemoteError for a permission
// failure. These are never retried.
func IsAccessDenied(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Errorcode == ErrcodeAccessDenied
}
