// Package errors defines the docstream error taxonomy: sentinel errors for
// classification via errors.Is, a builder for enriched errors, and exit-code
// plumbing for the CLI.
//
// Filesystem errors from save operations are deliberately not wrapped in a
// sentinel; they propagate unchanged so callers can inspect the underlying
// *os.PathError.
package errors

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedYAML marks input rejected by the YAML parser.
	ErrMalformedYAML = errors.New("malformed yaml")

	// ErrMarshal marks values the YAML emitter cannot represent.
	ErrMarshal = errors.New("cannot marshal value to yaml")

	// ErrFetchFailed marks document sources that could not be retrieved.
	ErrFetchFailed = errors.New("failed to fetch document source")

	// ErrFetchTooLarge marks payloads that exceed the fetch size limit.
	// Errors carrying it are also marked with ErrFetchFailed.
	ErrFetchTooLarge = errors.New("fetched document exceeds size limit")

	// ErrCreateFetchClient marks failures constructing the fetch client
	// before any transfer started.
	ErrCreateFetchClient = errors.New("failed to create fetch client")

	// ErrNoFetchCommand marks an exec fetch attempted without a configured
	// helper command.
	ErrNoFetchCommand = errors.New("no fetch command configured")
)
