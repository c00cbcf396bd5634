// Package api contains the wire types shared between the LCchat server and
// this client. Every endpoint wraps its payload in the same envelope, so the
// envelope is generic over the payload type.
package api

import "fmt"

// CodeOK is the application-level success code inside the envelope.
// Transport-level success (HTTP 2xx) does not imply application-level
// success; callers must check the envelope code separately.
const CodeOK = 200

// Response is the uniform envelope every endpoint returns.
type Response[T any] struct {
	Code int    `json:"code"` // application-level status code, 200 = success
	Msg  string `json:"msg"`  // human-readable message
	Data T      `json:"data"` // endpoint-specific payload
}

// OK reports whether the envelope carries an application-level success.
func (r *Response[T]) OK() bool {
	return r.Code == CodeOK
}

// Err returns the application-level failure as an error, or nil on success.
func (r *Response[T]) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Code: r.Code, Msg: r.Msg}
}

// Error represents an application-level failure reported inside a
// transport-successful envelope (code != 200).
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned code %d: %s", e.Code, e.Msg)
}
