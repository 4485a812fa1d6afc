// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts HTTP concerns to the spectrum generator
// and keeps internal error details out of client responses.
package api
