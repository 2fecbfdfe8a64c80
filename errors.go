package oauth2

import (
	"encoding/json"
	"fmt"
)

// ErrorField is an RFC 6749 §5.2 error code. The enumerated constants
// cover the codes the RFC defines; any other wire value is carried
// through verbatim as a server-specific code. Matching is case-sensitive:
// the RFC registers the codes as exact ASCII tokens (unlike token_type,
// no case folding is applied).
type ErrorField string

// RFC 6749 §5.2 error codes.
const (
	// ErrorInvalidRequest: the request is missing a required parameter,
	// includes an unsupported parameter value, repeats a parameter, or is
	// otherwise malformed.
	ErrorInvalidRequest ErrorField = "invalid_request"

	// ErrorInvalidClient: client authentication failed.
	ErrorInvalidClient ErrorField = "invalid_client"

	// ErrorInvalidGrant: the provided authorization grant or refresh
	// token is invalid, expired, revoked, does not match the redirection
	// URI used in the authorization request, or was issued to another
	// client.
	ErrorInvalidGrant ErrorField = "invalid_grant"

	// ErrorUnauthorizedClient: the authenticated client is not authorized
	// to use this authorization grant type.
	ErrorUnauthorizedClient ErrorField = "unauthorized_client"

	// ErrorUnsupportedGrantType: the authorization grant type is not
	// supported by the authorization server.
	ErrorUnsupportedGrantType ErrorField = "unsupported_grant_type"

	// ErrorInvalidScope: the requested scope is invalid, unknown,
	// malformed, or exceeds the scope granted by the resource owner.
	ErrorInvalidScope ErrorField = "invalid_scope"
)

// ErrorResponse is the error payload returned by the token endpoint,
// as defined in RFC 6749 §5.2.
type ErrorResponse struct {
	// ErrorCode is the single ASCII error code.
	ErrorCode ErrorField `json:"error"`

	// ErrorDescription is optional human-readable ASCII text with
	// additional information about the error.
	ErrorDescription string `json:"error_description,omitempty"`

	// ErrorURI optionally identifies a human-readable web page with
	// information about the error.
	ErrorURI string `json:"error_uri,omitempty"`
}

// UnmarshalJSON decodes the wire form, requiring the `error` field:
// an error payload without a code is not a valid RFC 6749 §5.2 response.
func (e *ErrorResponse) UnmarshalJSON(data []byte) error {
	var wire struct {
		Error            *string `json:"error"`
		ErrorDescription string  `json:"error_description"`
		ErrorURI         string  `json:"error_uri"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Error == nil {
		return fmt.Errorf("error response is missing the required \"error\" field")
	}
	e.ErrorCode = ErrorField(*wire.Error)
	e.ErrorDescription = wire.ErrorDescription
	e.ErrorURI = wire.ErrorURI
	return nil
}

// String formats the response for diagnostics: the code, followed by the
// description and documentation URI when present.
func (e ErrorResponse) String() string {
	formatted := string(e.ErrorCode)
	if e.ErrorDescription != "" {
		formatted += ": " + e.ErrorDescription
	}
	if e.ErrorURI != "" {
		formatted += " / See " + e.ErrorURI
	}
	return formatted
}

// ErrorKind discriminates the failure modes of a token request.
type ErrorKind int

// Token request failure modes.
const (
	// ErrorKindServerResponse: the server answered with a structured
	// RFC 6749 §5.2 error response.
	ErrorKindServerResponse ErrorKind = iota

	// ErrorKindClient: the HTTP transport failed before a response could
	// be read.
	ErrorKindClient

	// ErrorKindParse: a response body (success or error) failed to
	// deserialize; the raw body is retained for diagnostics.
	ErrorKindParse

	// ErrorKindOther: any other condition, such as a missing token
	// endpoint or an empty response body.
	ErrorKindOther
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindServerResponse:
		return "server_response"
	case ErrorKindClient:
		return "client"
	case ErrorKindParse:
		return "parse"
	case ErrorKindOther:
		return "other"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// RequestTokenError is the error returned by a failed token request.
// Branch on Kind, or use errors.As to recover it from a wrapped chain.
type RequestTokenError struct {
	// Kind discriminates which of the remaining fields are populated.
	Kind ErrorKind

	// Response is the parsed server error, for ErrorKindServerResponse.
	Response *ErrorResponse

	// Err is the underlying cause, for ErrorKindClient and ErrorKindParse.
	Err error

	// Body is the raw response body, for ErrorKindParse.
	Body []byte

	// Message describes the condition, for ErrorKindOther.
	Message string
}

// Error implements the error interface with a distinct format per kind.
func (e *RequestTokenError) Error() string {
	switch e.Kind {
	case ErrorKindServerResponse:
		return fmt.Sprintf("server returned error response `%s`", e.Response)
	case ErrorKindClient:
		return fmt.Sprintf("client error: %v", e.Err)
	case ErrorKindParse:
		return fmt.Sprintf("failed to parse server response: %v", e.Err)
	default:
		return fmt.Sprintf("other error: %s", e.Message)
	}
}

// Unwrap exposes the underlying transport or parse cause to errors.Is/As.
func (e *RequestTokenError) Unwrap() error { return e.Err }

func serverResponseError(resp *ErrorResponse) *RequestTokenError {
	return &RequestTokenError{Kind: ErrorKindServerResponse, Response: resp}
}

func clientError(err error) *RequestTokenError {
	return &RequestTokenError{Kind: ErrorKindClient, Err: err}
}

func parseError(err error, body []byte) *RequestTokenError {
	return &RequestTokenError{Kind: ErrorKindParse, Err: err, Body: body}
}

func otherError(message string) *RequestTokenError {
	return &RequestTokenError{Kind: ErrorKindOther, Message: message}
}
