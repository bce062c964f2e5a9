package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mordilloSan/go-rlog/config"
	"github.com/mordilloSan/go-rlog/journal"
	"github.com/mordilloSan/go-rlog/rlog"
)

// Demo binary for go-rlog. Shows flag, config-file and journald wiring:
//
//	go-rlog --level warn --regions web,db
//	go-rlog --config rlog.toml --out ./app.log
//	go-rlog --journal
func main() {
	var (
		configPath string
		levelName  string
		regions    string
		noColor    bool
		outPath    string
		useJournal bool
	)

	cmd := &cobra.Command{
		Use:           "go-rlog",
		Short:         "Emit sample region-scoped log lines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileCfg := &config.File{}
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				fileCfg = loaded
			}

			// Flags the user set on the command line win over the file.
			changed := make(map[string]bool)
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if !changed["level"] && fileCfg.Logging.Level != "" {
				levelName = fileCfg.Logging.Level
			}
			if !changed["regions"] && fileCfg.Logging.Regions != "" {
				regions = fileCfg.Logging.Regions
			}
			if !changed["no-color"] && fileCfg.Logging.Color != nil {
				noColor = !*fileCfg.Logging.Color
			}
			if !changed["out"] && fileCfg.Logging.FilePath != "" {
				outPath = fileCfg.Logging.FilePath
			}

			level, err := rlog.ParseLevel(levelName)
			if err != nil {
				return err
			}

			var sink io.Writer = os.Stdout
			switch {
			case useJournal:
				if !journal.Available() {
					return fmt.Errorf("journald socket is not available")
				}
				sink = journal.NewWriter("go-rlog")
			case outPath != "":
				f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				sink = f
			}

			lg, err := rlog.New(rlog.Config{
				MinLevel:   level,
				Regions:    regions,
				Sink:       sink,
				NoColor:    noColor,
				BufferSize: fileCfg.Logging.BufferSize,
			})
			if err != nil {
				return err
			}
			defer lg.Close()

			web := lg.Logger("web")
			db := lg.Logger("db")
			jobs := lg.Logger("jobs")

			web.Infof("listening on port %d", 8080)
			db.Debug("connection pool warmed")
			db.Warnf("slow query took %dms", 412)
			jobs.Info("queue drained")
			web.Errorf("request failed: %v", io.ErrUnexpectedEOF)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML configuration file")
	cmd.Flags().StringVar(&levelName, "level", "debug", "minimum level (debug, info, warn, error, fatal)")
	cmd.Flags().StringVar(&regions, "regions", "all", "comma-separated region filter")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "append output to this file instead of stdout")
	cmd.Flags().BoolVar(&useJournal, "journal", false, "send output to systemd-journald")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
