package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/ketotab/ketotab"
	"github.com/ketotab/ketotab/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// process flags
	outDir    string
	position  int
	title     string
	unit      string
	keepCarbs bool
	planOut   bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ketotab",
	Short: "ketotab - nutrition diary augmenter",
	Long: `ketotab parses nutrition-diary HTML reports, derives a net-carbs
column (total carbohydrates minus fiber, floored at zero), and rewrites
the tables in place: the new column is inserted, the raw carbs column is
hidden, and the macro percentage breakdowns are recomputed over net
carbs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// processCmd augments one or more diary pages
var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Augment diary pages with a net-carbs column",
	Long: `Parses each HTML file, inserts the derived net-carbs column into
every diary table found, and writes the augmented page next to the
input (or into --out-dir) with an .augmented.html suffix.

Example:
  ketotab process diary.html --title "Net Carbs" --keep-carbs`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

// inspectCmd prints the parsed model for a diary page
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print the transformation plans for a diary page as JSON",
	Long: `Parses the HTML file and prints the per-table transformation plan,
including the chart datasets, without rewriting anything. Useful for
checking what process would change.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ketotab.yaml", "Configuration file")

	processCmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Output directory (default: alongside input)")
	processCmd.Flags().IntVar(&position, "position", -1, "Column insertion position (default: after carbs)")
	processCmd.Flags().StringVar(&title, "title", "", "Column title (default from config)")
	processCmd.Flags().StringVar(&unit, "unit", "", "Column unit (default from config)")
	processCmd.Flags().BoolVar(&keepCarbs, "keep-carbs", false, "Leave the raw carbs column visible")
	processCmd.Flags().BoolVar(&planOut, "plan", false, "Also write the transformation plan as JSON")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, args []string) error {
	g, _ := errgroup.WithContext(cmd.Context())
	for _, path := range args {
		path := path
		g.Go(func() error {
			if err := processFile(path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func processFile(path string) error {
	log := logger.With(zap.String("file", path))
	log.Debug("processing diary page")

	a := newAugmenter(path)

	out, err := os.Create(outputPath(path, ".augmented.html"))
	if err != nil {
		return err
	}
	defer out.Close()

	if err := a.Augment(out); err != nil {
		return err
	}
	log.Info("wrote augmented page", zap.String("output", out.Name()))

	if planOut {
		plans, err := a.Plans()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(plans, "", "  ")
		if err != nil {
			return err
		}
		planPath := outputPath(path, ".plan.json")
		if err := os.WriteFile(planPath, data, 0o644); err != nil {
			return err
		}
		log.Info("wrote transformation plan", zap.String("output", planPath))
	}

	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	plans, err := newAugmenter(args[0]).Plans()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(plans)
}

// newAugmenter builds an Augmenter for path from config plus flag
// overrides.
func newAugmenter(path string) *ketotab.Augmenter {
	a := ketotab.Open(path).
		Target(cfg.TargetPosition()).
		Title(cfg.Column.Title).
		Unit(cfg.Column.Unit).
		Aliases(cfg.Aliases)

	if position >= 0 {
		a = a.Target(position)
	}
	if title != "" {
		a = a.Title(title)
	}
	if unit != "" {
		a = a.Unit(unit)
	}
	if keepCarbs || cfg.KeepCarbs {
		a = a.KeepCarbs()
	}
	return a
}

// outputPath swaps the input extension for suffix, optionally relocating
// into the output directory.
func outputPath(path, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + suffix
	dir := filepath.Dir(path)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, base)
}
