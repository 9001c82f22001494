// Package http provides thin request/response wrappers used by handlers:
// JSON body binding on the request side and enveloped JSON responses on
// the writer side.
package http
