package cmd

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/primestack/docstream/pkg/codec"
	"github.com/primestack/docstream/pkg/loader"
)

var (
	catOutputFile string
	catTmpFile    bool
)

// catCmd loads every location, drops the empty documents, and re-serializes
// the survivors as one stream.
var catCmd = &cobra.Command{
	Use:   "cat <location>...",
	Short: "Fetch, filter and concatenate YAML document streams",
	Long: `Load each location (a local path, a URL, or '-' for stdin), drop the
documents that carry no content, and write the remaining documents as one
multi-document YAML stream.`,
	Example: `  docstream cat doc.yaml
  docstream cat base.yaml https://example.com/extra.yaml -o merged.yaml
  cat doc.yaml | docstream cat - --tmp`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if catOutputFile != "" && catTmpFile {
			return errors.New("--output and --tmp cannot be used together")
		}

		docs, err := loadAll(cmd, args)
		if err != nil {
			return err
		}

		switch {
		case catTmpFile:
			path, err := codec.Tmp(docs...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		case catOutputFile != "":
			return codec.Save(catOutputFile, docs...)
		default:
			text, err := codec.Stringify(docs...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		}
	},
}

// loadAll loads every location in order. Stdin may only stand in for a
// single location, since it cannot be read twice.
func loadAll(cmd *cobra.Command, locations []string) ([]any, error) {
	l := loader.NewLoader(cliConfig)

	var docs []any
	for _, location := range locations {
		var (
			loaded []any
			err    error
		)
		if location == "-" {
			if len(locations) > 1 {
				return nil, errors.New("'-' cannot be combined with other locations")
			}
			text, readErr := io.ReadAll(cmd.InOrStdin())
			if readErr != nil {
				return nil, readErr
			}
			loaded, err = l.LoadString(string(text))
		} else {
			loaded, err = l.Load(location)
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}
	return docs, nil
}

func init() {
	catCmd.Flags().StringVarP(&catOutputFile, "output", "o", "", "Write the stream to this file instead of stdout")
	catCmd.Flags().BoolVar(&catTmpFile, "tmp", false, "Write the stream to a fresh temp file and print its path")
	RootCmd.AddCommand(catCmd)
}
