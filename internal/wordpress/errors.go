package wordpress

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Kind classifies adapter failures so callers can surface distinct,
// structured reasons without parsing error strings
type Kind string

const (
	// KindAuth means the remote rejected the credentials or permission level
	KindAuth Kind = "auth_failure"
	// KindNotReachable covers DNS, connect, timeout and TLS failures
	KindNotReachable Kind = "not_reachable"
	// KindAPIUnavailable means the REST API is absent (404 on discovery)
	KindAPIUnavailable Kind = "api_unavailable"
	// KindRemoteRejected means a write returned a non-2xx with a body
	KindRemoteRejected Kind = "remote_rejected"
	// KindPartialTaxonomy means some category/tag names could not be resolved
	KindPartialTaxonomy Kind = "partial_taxonomy"
	// KindMediaAttach means the featured image could not be set (non-fatal)
	KindMediaAttach Kind = "media_attach"
)

// Error is a classified adapter failure with a user-presentable reason
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an adapter Error of the given kind
func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// classifyTransportErr maps a failed outbound call to a distinct reason.
// Timeout, unreachable and certificate failures are kept apart because the
// caller surfaces them verbatim to the end user.
func classifyTransportErr(err error) *Error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}

	var (
		certVerify *tls.CertificateVerificationError
		unknownCA  x509.UnknownAuthorityError
		hostname   x509.HostnameError
		certErr    x509.CertificateInvalidError
	)
	if errors.As(err, &certVerify) || errors.As(err, &unknownCA) ||
		errors.As(err, &hostname) || errors.As(err, &certErr) {
		return &Error{Kind: KindNotReachable, Reason: fmt.Sprintf("certificate error: %v", err), Err: err}
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &Error{Kind: KindNotReachable, Reason: "request timed out", Err: err}
	}

	return &Error{Kind: KindNotReachable, Reason: fmt.Sprintf("site unreachable: %v", err), Err: err}
}
