package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/primestack/docstream/pkg/downloader"
	"github.com/primestack/docstream/pkg/loader"
)

// fetchCmd prints the raw payload of one location to stdout: payload on
// stdout, nonzero exit on failure. That is exactly the fetch.command helper
// protocol, so docstream can be configured as its own fetch helper. It
// always uses the built-in client, never the configured helper, so the
// arrangement cannot recurse.
var fetchCmd = &cobra.Command{
	Use:     "fetch <location>",
	Short:   "Fetch one location and print the raw payload",
	Long:    `Fetch the location with the built-in client and print the payload to stdout without parsing it.`,
	Example: "  docstream fetch https://example.com/doc.yaml",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetcher := downloader.NewFileFetcher(downloader.NewGoGetterClientFactory())
		timeout := time.Duration(cliConfig.Fetch.TimeoutSeconds) * time.Second
		l := loader.NewLoaderWithFetcher(fetcher, timeout)

		data, err := l.Fetch(args[0])
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	RootCmd.AddCommand(fetchCmd)
}
