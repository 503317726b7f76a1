// Package statusboard shows a live/error board for a list of HTTP endpoints.
package statusboard
