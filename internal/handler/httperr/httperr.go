// Package httperr defines the envelope the error middleware serializes when
// a request fails without a handler-written body.
package httperr

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}
