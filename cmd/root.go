package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/primestack/docstream/pkg/config"
	log "github.com/primestack/docstream/pkg/logger"
	"github.com/primestack/docstream/pkg/schema"
)

var cliConfig schema.Configuration

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "docstream",
	Short: "Read, filter and write multi-document YAML streams",
	Long: `Docstream loads multi-document YAML from local paths, URLs or a custom
fetch helper, drops the documents that carry no content, and writes the
survivors back out as one stream.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Determine if the command is a help command or if the help flag is set.
		isHelpRequested := cmd.Name() == "help" || cmd.Flags().Changed("help")
		if isHelpRequested {
			// Do not silence usage or errors when help is invoked.
			cmd.SilenceUsage = false
			cmd.SilenceErrors = false
		} else {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
		}

		configPaths, err := cmd.Flags().GetStringSlice("config")
		if err != nil {
			return err
		}
		cliConfig, err = config.LoadConfig(configPaths...)
		if err != nil {
			return err
		}

		// Command-line flags win over every config source.
		if err := setStringFlagIfChanged(cmd.Flags(), "logs-level", &cliConfig.Logs.Level); err != nil {
			return err
		}
		if err := setStringFlagIfChanged(cmd.Flags(), "logs-file", &cliConfig.Logs.File); err != nil {
			return err
		}

		setupLogger(&cliConfig)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().String("logs-level", "", "Logs level. Supported log levels are Debug, Info, Warning, Error, Off. If the log level is set to Off, docstream will not log any messages")
	RootCmd.PersistentFlags().String("logs-file", "", "The file to write docstream logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
	RootCmd.PersistentFlags().StringSlice("config", nil, "Paths to additional configuration files to merge, highest priority last")
}

// setupLogger applies the configured level and destination to the default
// logger.
func setupLogger(cfg *schema.Configuration) {
	level, err := log.ParseLevel(cfg.Logs.Level)
	if err != nil {
		log.Warn("Invalid log level in configuration, keeping Info", "level", cfg.Logs.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	switch cfg.Logs.File {
	case "":
		// Leave the current destination alone.
	case "/dev/stderr":
		log.SetOutput(os.Stderr)
	case "/dev/stdout":
		log.SetOutput(os.Stdout)
	case "/dev/null":
		log.SetOutput(io.Discard)
	default:
		file, err := os.OpenFile(cfg.Logs.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Error("Failed to open log file, keeping the current destination", "file", cfg.Logs.File, "error", err)
			return
		}
		log.SetOutput(file)
	}
}
