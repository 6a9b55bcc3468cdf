package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Format renders an error for terminal output: the message first, then any
// hints attached via the builder, one per line.
//
// With verbose set, the full cause chain is appended in cockroachdb/errors'
// %+v format.
func Format(err error, verbose bool) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(err.Error())

	for _, hint := range errors.GetAllHints(err) {
		sb.WriteString("\n  hint: ")
		sb.WriteString(hint)
	}

	if verbose {
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("%+v", err))
	}

	return sb.String()
}
