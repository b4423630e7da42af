package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pavelanni/scorecard/internal/codec"
	"github.com/pavelanni/scorecard/internal/dataset"
	appI18n "github.com/pavelanni/scorecard/internal/i18n"
	"github.com/pavelanni/scorecard/internal/model"
	"github.com/pavelanni/scorecard/internal/report"
	"github.com/pavelanni/scorecard/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "scorecard",
		Short:        "Read-only score cards for the Scratch to Python curriculum",
		SilenceUsage: true,
	}

	show := showCmd()
	root.AddCommand(show, exportCmd(), validateCmd(), chartsCmd())

	// Make "show" the default when no subcommand is given.
	root.RunE = show.RunE
	root.Flags().AddFlagSet(show.Flags())

	return root
}

func addCommonFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("dataset", string(model.SchemaV1), "Built-in score card to use (v1, v2)")
	f.String("file", "", "Load the score card from a JSON or YAML file instead")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the student profile and score summary",
		RunE:  runShow,
	}
	addCommonFlags(cmd)
	f := cmd.Flags()
	f.StringP("lang", "l", "en", "Report language (en, zh)")
	f.Float64("pass-ratio", report.DefaultPassRatio, "Share of the full score needed to pass a stage")
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the score card as JSON or YAML",
		RunE:  runExport,
	}
	addCommonFlags(cmd)
	f := cmd.Flags()
	f.StringP("format", "f", "json", "Output format (json, yaml)")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.Bool("with-derived", false, "Include subject comparison, score trend and stats")
	f.Float64("pass-ratio", report.DefaultPassRatio, "Share of the full score needed to pass a stage")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check score card files against the schema and record invariants",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
	}
	f := cmd.Flags()
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func chartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Write the chart datasets as JSON",
		RunE:  runCharts,
	}
	addCommonFlags(cmd)
	cmd.Flags().StringP("output", "o", "-", "Output file path (- for stdout)")
	return cmd
}

func setupLogging(v *viper.Viper) {
	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("SCORECARD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("scorecard")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/scorecard")
	v.AddConfigPath("/etc/scorecard")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// setup configures logging and returns the command's settings.
func setup(cmd *cobra.Command) *viper.Viper {
	v := viperForCmd(cmd)
	setupLogging(v)
	return v
}

// openStore builds the store from --file when set, otherwise from the
// built-in card named by --dataset.
func openStore(v *viper.Viper) (*store.Store, error) {
	var ds model.Dataset
	if path := v.GetString("file"); path != "" {
		ex, err := readCard(path)
		if err != nil {
			return nil, err
		}
		ds = ex.Dataset
		slog.Info("loaded score card", "path", path, "version", ds.Version, "records", len(ds.Scores))
	} else {
		var err error
		ds, err = dataset.ByVersion(model.SchemaVersion(strings.ToLower(v.GetString("dataset"))))
		if err != nil {
			return nil, err
		}
		slog.Debug("using built-in score card", "version", ds.Version)
	}

	s, err := store.New(ds)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

func readCard(path string) (model.Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Export{}, fmt.Errorf("read %s: %w", path, err)
	}
	ex, err := codec.Decode(data, codec.FormatFromPath(path))
	if err != nil {
		return model.Export{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return ex, nil
}

// openOutput returns stdout for "" or "-", otherwise a created file.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

func runShow(cmd *cobra.Command, _ []string) error {
	v := setup(cmd)

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}
	if !appI18n.Supported(lang) {
		slog.Warn("no translations for language, falling back", "lang", lang)
	}

	s, err := openStore(v)
	if err != nil {
		return err
	}

	ctx := appI18n.WithLanguage(context.Background(), lang)
	return report.Render(ctx, cmd.OutOrStdout(), s, v.GetFloat64("pass-ratio"))
}

func runExport(cmd *cobra.Command, _ []string) error {
	v := setup(cmd)

	format, err := codec.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}
	s, err := openStore(v)
	if err != nil {
		return err
	}

	var stats *model.ScoreStats
	if v.GetBool("with-derived") {
		st, err := report.Summarize(s.ListScores(), v.GetFloat64("pass-ratio"))
		if err != nil {
			return err
		}
		stats = &st
	}
	export := s.Export(v.GetBool("with-derived"), stats)

	w, closeFn, err := openOutput(v.GetString("output"))
	if err != nil {
		return err
	}
	if err := codec.Encode(w, export, format); err != nil {
		_ = closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	slog.Info("exported score card", "version", s.Version(), "format", format, "records", s.ScoreCount())
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	setup(cmd)

	for _, path := range args {
		ex, err := readCard(path)
		if err != nil {
			slog.Error("invalid score card", "path", path, "error", err)
			return err
		}
		slog.Info("score card OK", "path", path, "version", ex.Version, "records", len(ex.Scores))
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d records)\n", path, ex.Version, len(ex.Scores))
	}
	return nil
}

func runCharts(cmd *cobra.Command, _ []string) error {
	v := setup(cmd)

	s, err := openStore(v)
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(v.GetString("output"))
	if err != nil {
		return err
	}
	if err := codec.Encode(w, s.Charts(), codec.FormatJSON); err != nil {
		_ = closeFn()
		return err
	}
	return closeFn()
}
