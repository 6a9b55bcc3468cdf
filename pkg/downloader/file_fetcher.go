package downloader

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	errUtils "github.com/primestack/docstream/errors"
	log "github.com/primestack/docstream/pkg/logger"
)

// fileFetcher retrieves sources with a download client, staging the payload
// at a temp path before reading it back. The staging path uses a fresh UUID
// per fetch so concurrent fetches never collide.
type fileFetcher struct {
	clientFactory     ClientFactory
	tempPathGenerator func() string
	fileReader        func(string) ([]byte, error)
	fileStat          func(string) (os.FileInfo, error)
}

// NewFileFetcher initializes a Fetcher backed by the given client factory.
func NewFileFetcher(factory ClientFactory) Fetcher {
	return &fileFetcher{
		clientFactory:     factory,
		tempPathGenerator: func() string { return filepath.Join(os.TempDir(), uuid.New().String()) },
		fileReader:        os.ReadFile,
		fileStat:          os.Stat,
	}
}

// FetchData fetches the source at location and returns its payload.
// Payloads larger than MaxFetchSize fail with ErrFetchTooLarge.
func (f *fileFetcher) FetchData(ctx context.Context, location string) ([]byte, error) {
	masked := MaskLocation(location)

	if err := ValidateLocation(location); err != nil {
		return nil, errUtils.Build(errUtils.ErrCreateFetchClient).
			WithCause(err).
			WithSentinel(errUtils.ErrFetchFailed).
			WithContext("location", masked).
			WithHint("Check that the location format is valid").
			Err()
	}

	dest := f.tempPathGenerator()
	defer os.RemoveAll(dest)

	client, err := f.clientFactory.NewClient(ctx, location, dest, ClientModeFile)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrCreateFetchClient).
			WithCause(err).
			WithSentinel(errUtils.ErrFetchFailed).
			WithContext("location", masked).
			WithHint("Check that the location format is valid").
			Err()
	}

	if err := client.Get(); err != nil {
		return nil, errUtils.Build(errUtils.ErrFetchFailed).
			WithCause(err).
			WithContext("location", masked).
			WithHint("Check network connectivity and that the source exists").
			Err()
	}

	// Stat follows the symlink go-getter leaves for local files, so the
	// size check sees the real payload.
	info, err := f.fileStat(dest)
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrFetchFailed).
			WithCause(err).
			WithContext("location", masked).
			Err()
	}
	if info.Size() > MaxFetchSize {
		log.Debug("fetched payload over size limit", "location", masked, "size", info.Size())
		return nil, errUtils.Build(errUtils.ErrFetchTooLarge).
			WithSentinel(errUtils.ErrFetchFailed).
			WithContext("location", masked).
			WithContext("size", strconv.FormatInt(info.Size(), 10)).
			WithHintf("Sources are limited to %d bytes", MaxFetchSize).
			Err()
	}

	return f.fileReader(dest)
}
