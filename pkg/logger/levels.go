package logger

import (
	"math"
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// Level aliases the underlying charm log level.
type Level = charm.Level

// Log levels. OffLevel sits above every charm level so nothing is emitted.
const (
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
	OffLevel   = Level(math.MaxInt32)
)

// ErrInvalidLogLevel is returned when a configured log level is not recognized.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ParseLevel maps a configured level name to a Level. Names are
// case-insensitive; the empty string defaults to info.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "off":
		return OffLevel, nil
	default:
		return InfoLevel, errors.Mark(
			errors.Newf("invalid log level %q, supported levels are Debug, Info, Warning, Error, Off", name),
			ErrInvalidLogLevel,
		)
	}
}
