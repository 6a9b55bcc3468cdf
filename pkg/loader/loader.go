// Package loader turns document sources into parsed document streams. It
// fetches the raw payload, parses every document in it, and drops the
// documents that carry no content: blank documents, explicit nulls, empty
// sequences and empty mappings. Scalar zero values (0, false, "") are
// content and survive.
package loader

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/primestack/docstream/pkg/codec"
	"github.com/primestack/docstream/pkg/downloader"
	log "github.com/primestack/docstream/pkg/logger"
	"github.com/primestack/docstream/pkg/schema"
)

// Loader fetches and parses document sources.
type Loader struct {
	fetcher downloader.Fetcher
	timeout time.Duration
}

// NewLoader builds a Loader from the configuration. When fetch.command is
// set the external helper performs the fetches; otherwise the built-in
// go-getter client does.
func NewLoader(cfg schema.Configuration) *Loader {
	var fetcher downloader.Fetcher
	if cfg.Fetch.Command != "" {
		log.Debug("using fetch helper", "command", cfg.Fetch.Command)
		fetcher = downloader.NewExecFetcher(cfg.Fetch.Command)
	} else {
		fetcher = downloader.NewFileFetcher(downloader.NewGoGetterClientFactory())
	}

	timeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second

	return &Loader{fetcher: fetcher, timeout: timeout}
}

// NewLoaderWithFetcher builds a Loader around an explicit fetcher. A zero or
// negative timeout means fetches are never cut short.
func NewLoaderWithFetcher(fetcher downloader.Fetcher, timeout time.Duration) *Loader {
	return &Loader{fetcher: fetcher, timeout: timeout}
}

// Load fetches the source at location and returns its non-empty documents.
// A hung fetch blocks until the configured timeout, or forever when none is
// set; callers needing tighter control use LoadContext.
func (l *Loader) Load(location string) ([]any, error) {
	ctx, cancel := l.fetchContext()
	defer cancel()
	return l.LoadContext(ctx, location)
}

// Fetch returns the raw payload at location without parsing it.
func (l *Loader) Fetch(location string) ([]byte, error) {
	ctx, cancel := l.fetchContext()
	defer cancel()
	return l.fetcher.FetchData(ctx, location)
}

// fetchContext returns the context fetches run under: deadline-bound when a
// timeout is configured, unbounded otherwise.
func (l *Loader) fetchContext() (context.Context, context.CancelFunc) {
	if l.timeout > 0 {
		return context.WithTimeout(context.Background(), l.timeout)
	}
	return context.WithCancel(context.Background())
}

// LoadContext is Load with a caller-supplied context.
func (l *Loader) LoadContext(ctx context.Context, location string) ([]any, error) {
	data, err := l.fetcher.FetchData(ctx, location)
	if err != nil {
		return nil, err
	}
	docs, err := l.LoadString(string(data))
	if err != nil {
		return nil, err
	}
	log.Debug("loaded documents", "location", downloader.MaskLocation(location), "kept", len(docs))
	return docs, nil
}

// LoadString parses text already in hand and returns its non-empty
// documents.
func (l *Loader) LoadString(text string) ([]any, error) {
	docs, err := codec.Parse(text)
	if err != nil {
		return nil, err
	}
	return lo.Filter(docs, func(doc any, _ int) bool {
		return !codec.IsEmpty(doc)
	}), nil
}
