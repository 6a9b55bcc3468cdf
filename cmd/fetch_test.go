package cmd

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/primestack/docstream/errors"
)

func TestFetch_LocalFile(t *testing.T) {
	path := writeDoc(t, "a: 1\n---\nnull\n")

	out, err := executeCommand(t, "fetch", path)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n---\nnull\n", out)
}

func TestFetch_DoesNotParse(t *testing.T) {
	// The helper contract hands over raw text; even broken YAML must pass
	// through untouched.
	path := writeDoc(t, "a: [\n")

	out, err := executeCommand(t, "fetch", path)
	require.NoError(t, err)
	assert.Equal(t, "a: [\n", out)
}

func TestFetch_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("service: web\n"))
	}))
	defer srv.Close()

	out, err := executeCommand(t, "fetch", srv.URL+"/doc.yaml")
	require.NoError(t, err)
	assert.Equal(t, "service: web\n", out)
}

func TestFetch_MissingLocation(t *testing.T) {
	_, err := executeCommand(t, "fetch", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrFetchFailed)
}

func TestFetch_RequiresExactlyOneArgument(t *testing.T) {
	_, err := executeCommand(t, "fetch")
	assert.Error(t, err)

	_, err = executeCommand(t, "fetch", "a.yaml", "b.yaml")
	assert.Error(t, err)
}
