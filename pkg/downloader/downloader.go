// Package downloader retrieves the raw bytes of document sources: URLs and
// filesystem paths through go-getter, or an external helper command when one
// is configured.
package downloader

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// MaxFetchSize caps a single fetched payload at 10 MiB. Payloads over the
// cap fail the fetch instead of being truncated.
const MaxFetchSize = 10 * 1024 * 1024

// maxLocationLength bounds the accepted location string.
const maxLocationLength = 2048

// Fetcher retrieves the raw bytes of a document source.
type Fetcher interface {
	// FetchData fetches the source at location and returns its payload.
	FetchData(ctx context.Context, location string) ([]byte, error)
}

// ClientFactory abstracts the creation of a downloader client for better testability.
type ClientFactory interface {
	NewClient(ctx context.Context, src, dest string, mode ClientMode) (DownloadClient, error)
}

// DownloadClient defines an interface for download operations.
type DownloadClient interface {
	Get() error
}

// ClientMode represents different modes for downloading (file, dir, etc.)
type ClientMode int

const (
	ClientModeInvalid ClientMode = iota

	// ClientModeAny downloads anything it can: a file is saved into the
	// destination directory, a directory or archive is unpacked into it.
	ClientModeAny

	// ClientModeFile downloads a single file saved as the destination path.
	ClientModeFile

	// ClientModeDir downloads a directory or archive into the destination.
	ClientModeDir
)

// ValidateLocation rejects locations the fetch layer will not accept: empty
// strings, oversized strings, and scheme-form URIs containing traversal
// sequences, spaces, or an unknown scheme. Plain filesystem paths are left
// to the filesystem to judge.
func ValidateLocation(location string) error {
	if location == "" {
		return errors.New("location cannot be empty")
	}
	if len(location) > maxLocationLength {
		return errors.Newf("location exceeds maximum length of %d characters", maxLocationLength)
	}
	if !strings.Contains(location, "://") {
		return nil
	}
	if strings.Contains(location, "..") {
		return errors.New("location cannot contain path traversal sequences")
	}
	if strings.Contains(location, " ") {
		return errors.New("location cannot contain spaces")
	}
	scheme := strings.SplitN(location, "://", 2)[0]
	if !IsValidScheme(scheme) {
		return errors.Newf("unsupported location scheme: %s", scheme)
	}
	return nil
}

// IsValidScheme checks if the location scheme is one the fetch layer handles.
func IsValidScheme(scheme string) bool {
	validSchemes := map[string]bool{
		"http":       true,
		"https":      true,
		"file":       true,
		"s3":         true,
		"gcs":        true,
		"git":        true,
		"hg":         true,
		"ssh":        true,
		"git::https": true,
		"git::ssh":   true,
	}
	return validSchemes[scheme]
}
