package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/primestack/docstream/cmd"
	errUtils "github.com/primestack/docstream/errors"
	log "github.com/primestack/docstream/pkg/logger"
)

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Exit with correct POSIX exit code (128 + signal number).
		// Use errUtils.OsExit to allow test interception.
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		// Fallback to SIGINT exit code if signal type assertion fails.
		errUtils.OsExit(130)
	}()

	// Disable timestamp in logs so output stays stable across runs.
	log.Default().SetReportTimestamp(false)

	// Run the application and exit with the appropriate code.
	// Use errUtils.OsExit to allow test interception.
	errUtils.OsExit(run())
}

// run executes the root command and returns an exit code. This separation
// keeps os.Exit out of the code path tests exercise.
func run() int {
	err := cmd.Execute()
	if err != nil {
		verbose := log.GetLevel() <= log.DebugLevel
		os.Stderr.WriteString(errUtils.Format(err, verbose) + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
