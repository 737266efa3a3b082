package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leeforge/clog/config"
	"github.com/leeforge/clog/json"
	"github.com/leeforge/clog/logging"
)

var (
	// Version is set during build
	Version = "dev"
)

// newRootCmd builds the command that writes one record per level through a
// configured logger.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clog [flags] [message]",
		Short: "Write sample records through a colorized console and file logger",
		Long: `clog configures a named logger and writes one record per level.

Examples:
  clog --name svc --level INFO
  clog --name audit --level DEBUG --file audit.log --mode w --encoding gbk
  clog --options '{"name":"svc","level":"WARNING"}'
  clog --config config/loggers.yaml --describe`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
		Version:      Version,
	}

	cmd.Flags().StringP("name", "n", "clog", "Logger name")
	cmd.Flags().StringP("level", "l", logging.DebugLevel.String(), "Minimum level: DEBUG, INFO, WARNING, ERROR or CRITICAL")
	cmd.Flags().StringP("file", "f", "", "Also write plain records to this file")
	cmd.Flags().String("mode", string(logging.ModeAppend), "File open mode: a, w or x")
	cmd.Flags().String("encoding", "utf-8", "File text encoding")
	cmd.Flags().StringP("config", "c", "", "YAML file listing loggers to configure")
	cmd.Flags().String("options", "", "Raw options bundle as a JSON object")
	cmd.Flags().Bool("describe", false, "Print the configured loggers as JSON")
	cmd.Flags().Bool("trace", false, "Print factory diagnostics to stderr")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	message := "sample record"
	if len(args) == 1 {
		message = args[0]
	}

	var factoryOpts []logging.FactoryOption
	if trace, _ := flags.GetBool("trace"); trace {
		diag, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = diag.Sync() }()
		factoryOpts = append(factoryOpts, logging.WithDiagnostics(diag))
	}

	var (
		f       *logging.Factory
		handles []*logging.Handle
	)
	if path, _ := flags.GetString("config"); path != "" {
		cfg, err := config.NewConfig(config.FileConfigOptions(path))
		if err != nil {
			return err
		}
		f, handles, err = logging.SetupFromConfig(cfg, factoryOpts...)
		if f != nil {
			defer func() { _ = f.Close() }()
		}
		if err != nil {
			return err
		}
	} else {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		f = logging.NewFactory(factoryOpts...)
		defer func() { _ = f.Close() }()

		h, err := f.GetLogger(opts)
		if err != nil {
			return err
		}
		handles = []*logging.Handle{h}
	}

	counter := logging.NewLevelCounter()
	for _, h := range handles {
		l := logging.WithHooks(h, counter.Hook())
		l.Debug(message)
		l.Info(message)
		l.Warning(message)
		l.Error(message)
		l.Critical(message)
		if err := h.Sync(); err != nil {
			return fmt.Errorf("sync %s: %w", h.Name(), err)
		}
	}

	if describe, _ := flags.GetBool("describe"); describe {
		descriptions := make([]logging.Description, 0, len(handles))
		for _, h := range handles {
			descriptions = append(descriptions, h.Describe())
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"loggers": descriptions,
			"written": counter.Total(),
		}); err != nil {
			return err
		}
	}

	return nil
}

// buildOptions assembles an options bundle from --options or the individual flags.
// Only flags that shape the bundle are included, so the result has two or five keys.
func buildOptions(cmd *cobra.Command) (logging.Options, error) {
	flags := cmd.Flags()

	if raw, _ := flags.GetString("options"); raw != "" {
		var opts logging.Options
		if err := json.Unmarshal([]byte(raw), &opts); err != nil {
			return nil, fmt.Errorf("parse --options: %w", err)
		}
		return opts, nil
	}

	name, _ := flags.GetString("name")
	level, _ := flags.GetString("level")
	opts := logging.Options{
		logging.OptionName:  name,
		logging.OptionLevel: level,
	}

	file, _ := flags.GetString("file")
	if file == "" {
		return opts, nil
	}
	mode, _ := flags.GetString("mode")
	encoding, _ := flags.GetString("encoding")
	opts[logging.OptionFile] = file
	opts[logging.OptionMode] = mode
	opts[logging.OptionEncoding] = encoding
	return opts, nil
}
