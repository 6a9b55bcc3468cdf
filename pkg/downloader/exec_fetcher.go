package downloader

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	errUtils "github.com/primestack/docstream/errors"
	log "github.com/primestack/docstream/pkg/logger"
)

// execFetcher delegates fetching to an external helper command. The helper
// is invoked as `<command> <location>` and must write the payload to stdout
// and exit zero. Stderr is logged at debug level and never mixed into the
// payload.
type execFetcher struct {
	command string
}

// NewExecFetcher returns a Fetcher that shells out to the given helper.
func NewExecFetcher(command string) Fetcher {
	return &execFetcher{command: command}
}

// FetchData runs the helper and returns its stdout. The helper is killed as
// soon as its output exceeds MaxFetchSize; a nonzero exit fails the fetch.
func (f *execFetcher) FetchData(ctx context.Context, location string) ([]byte, error) {
	if f.command == "" {
		return nil, errUtils.Build(errUtils.ErrNoFetchCommand).
			WithSentinel(errUtils.ErrFetchFailed).
			WithHint("Set fetch.command in docstream.yaml or unset it to use the built-in client").
			Err()
	}
	if _, err := exec.LookPath(f.command); err != nil {
		return nil, errUtils.Build(errUtils.ErrCreateFetchClient).
			WithCause(err).
			WithSentinel(errUtils.ErrFetchFailed).
			WithContext("command", f.command).
			Err()
	}

	masked := MaskLocation(location)

	cmd := exec.CommandContext(ctx, f.command, location)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errUtils.Build(errUtils.ErrCreateFetchClient).
			WithCause(err).
			WithSentinel(errUtils.ErrFetchFailed).
			WithContext("command", f.command).
			Err()
	}
	if err := cmd.Start(); err != nil {
		return nil, errUtils.Build(errUtils.ErrFetchFailed).
			WithCause(err).
			WithContext("command", f.command).
			Err()
	}

	// Read one byte past the cap so an oversized payload is detectable
	// without buffering all of it.
	data, readErr := io.ReadAll(io.LimitReader(stdout, MaxFetchSize+1))
	if int64(len(data)) > MaxFetchSize {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		log.Debug("fetch helper output over size limit", "command", f.command, "location", masked)
		return nil, errUtils.Build(errUtils.ErrFetchTooLarge).
			WithSentinel(errUtils.ErrFetchFailed).
			WithContext("location", masked).
			WithHintf("Sources are limited to %d bytes", MaxFetchSize).
			Err()
	}

	waitErr := cmd.Wait()
	if stderr.Len() > 0 {
		log.Debug("fetch helper stderr", "command", f.command, "stderr", stderr.String())
	}
	if readErr != nil {
		return nil, errUtils.Build(errUtils.ErrFetchFailed).
			WithCause(readErr).
			WithContext("location", masked).
			Err()
	}
	if waitErr != nil {
		return nil, errUtils.Build(errUtils.ErrFetchFailed).
			WithCause(waitErr).
			WithContext("command", f.command).
			WithContext("location", masked).
			WithHintf("The helper %q exited abnormally", f.command).
			Err()
	}

	return data, nil
}
