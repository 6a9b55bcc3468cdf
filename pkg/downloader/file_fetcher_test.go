package downloader

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	errUtils "github.com/primestack/docstream/errors"
)

type fakeFileInfo struct {
	size int64
}

func (f fakeFileInfo) Name() string       { return "payload" }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() os.FileMode  { return 0o644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }

func newTestFetcher(factory ClientFactory, data []byte, size int64) *fileFetcher {
	return &fileFetcher{
		clientFactory:     factory,
		tempPathGenerator: func() string { return filepath.Join(os.TempDir(), "docstream-test-payload") },
		fileReader:        func(_ string) ([]byte, error) { return data, nil },
		fileStat:          func(_ string) (os.FileInfo, error) { return fakeFileInfo{size: size}, nil },
	}
}

func TestFileFetcher_FetchData_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockDownloadClient(ctrl)
	mockFactory := NewMockClientFactory(ctrl)

	mockFactory.EXPECT().NewClient(gomock.Any(), "https://example.com/doc.yaml", gomock.Any(), ClientModeFile).Return(mockClient, nil)
	mockClient.EXPECT().Get().Return(nil)

	payload := []byte("a: 1\n")
	f := newTestFetcher(mockFactory, payload, int64(len(payload)))

	data, err := f.FetchData(context.Background(), "https://example.com/doc.yaml")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestFileFetcher_FetchData_ClientCreationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactory := NewMockClientFactory(ctrl)
	expectedErr := errors.New("invalid URL")
	mockFactory.EXPECT().NewClient(gomock.Any(), "https://example.com/doc.yaml", gomock.Any(), ClientModeFile).Return(nil, expectedErr)

	f := newTestFetcher(mockFactory, nil, 0)

	_, err := f.FetchData(context.Background(), "https://example.com/doc.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrCreateFetchClient)
	assert.ErrorIs(t, err, errUtils.ErrFetchFailed)
}

func TestFileFetcher_FetchData_TransferFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockDownloadClient(ctrl)
	mockFactory := NewMockClientFactory(ctrl)

	mockFactory.EXPECT().NewClient(gomock.Any(), "https://example.com/doc.yaml", gomock.Any(), ClientModeFile).Return(mockClient, nil)
	mockClient.EXPECT().Get().Return(errors.New("connection refused"))

	f := newTestFetcher(mockFactory, nil, 0)

	_, err := f.FetchData(context.Background(), "https://example.com/doc.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrFetchFailed)
	assert.NotErrorIs(t, err, errUtils.ErrFetchTooLarge)
}

func TestFileFetcher_FetchData_OverSizeLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockDownloadClient(ctrl)
	mockFactory := NewMockClientFactory(ctrl)

	mockFactory.EXPECT().NewClient(gomock.Any(), "https://example.com/big.yaml", gomock.Any(), ClientModeFile).Return(mockClient, nil)
	mockClient.EXPECT().Get().Return(nil)

	f := newTestFetcher(mockFactory, nil, MaxFetchSize+1)

	_, err := f.FetchData(context.Background(), "https://example.com/big.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrFetchTooLarge)
	assert.ErrorIs(t, err, errUtils.ErrFetchFailed)
}

func TestFileFetcher_FetchData_InvalidLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The factory must never be called for locations that fail validation.
	mockFactory := NewMockClientFactory(ctrl)
	f := newTestFetcher(mockFactory, nil, 0)

	tests := []string{
		"",
		"ftp://example.com/doc.yaml",
		"https://example.com/../../etc/passwd",
	}
	for _, location := range tests {
		_, err := f.FetchData(context.Background(), location)
		require.Error(t, err, "location %q", location)
		assert.ErrorIs(t, err, errUtils.ErrCreateFetchClient)
		assert.ErrorIs(t, err, errUtils.ErrFetchFailed)
	}
}

func TestFileFetcher_LocalFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(src, []byte("a: 1\n---\nb: 2\n"), 0o644))

	f := NewFileFetcher(NewGoGetterClientFactory())

	data, err := f.FetchData(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n---\nb: 2\n", string(data))
}

func TestFileFetcher_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("service: web\n"))
	}))
	defer srv.Close()

	f := NewFileFetcher(NewGoGetterClientFactory())

	data, err := f.FetchData(context.Background(), srv.URL+"/doc.yaml")
	require.NoError(t, err)
	assert.Equal(t, "service: web\n", string(data))
}

func TestFileFetcher_HTTPOverSizeLimit(t *testing.T) {
	payload := bytes.Repeat([]byte("#"), int(MaxFetchSize)+1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	f := NewFileFetcher(NewGoGetterClientFactory())

	_, err := f.FetchData(context.Background(), srv.URL+"/big.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrFetchTooLarge)
	assert.ErrorIs(t, err, errUtils.ErrFetchFailed)
}

func TestFileFetcher_HTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFileFetcher(NewGoGetterClientFactory())

	_, err := f.FetchData(context.Background(), srv.URL+"/missing.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrFetchFailed)
}
