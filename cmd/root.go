package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	talys "github.com/massrun/massrun/talys"
)

var (
	// CLI flags for TALYS run parameters
	logLevel   string // Log verbosity level
	ldmodel    int    // Ldmodel parameter for TALYS
	strength   int    // Strength parameter for TALYS
	massmodel  int    // Massmodel parameter for TALYS
	massSource string // Which mass-excess column feeds the input file (jyfl or ame20)

	// CLI flags for reaction selection and batch output
	reactionPicks []int // Reaction row indices to prepare
	allReactions  bool  // Prepare every reaction in the table
	presetsPath   string
	presetName    string
	writeManifest bool // Write <runs-root>/manifest.yaml after the batch
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "massrun",
	Short: "Prepare run directories and input files for TALYS from a data workbook",
}

// setUpLogging applies the --log flag to the global logger.
func setUpLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// expandSelections resolves the --reactions/--all flags against the reaction
// table size. --all wins over an explicit index list.
func expandSelections(total int, all bool, picks []int) []int {
	if all {
		selections := make([]int, total)
		for i := range selections {
			selections[i] = i
		}
		return selections
	}
	return picks
}

// prepareCmd runs the full pipeline: load workbook, create run directories,
// write input files, one run per selected reaction.
var prepareCmd = &cobra.Command{
	Use:   "prepare <runs-root> <data.xlsx>",
	Short: "Create run directories and TALYS input files for selected reactions",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()
		runsRoot, dataPath := args[0], args[1]

		params := talys.RunParams{Ldmodel: ldmodel, Strength: strength, Massmodel: massmodel}
		src, err := talys.ParseMassSource(massSource)
		if err != nil {
			logrus.Fatalf("Invalid --mass-source: %v", err)
		}

		if presetName != "" {
			if presetsPath == "" {
				logrus.Fatalf("--preset requires --presets <file>")
			}
			presets, err := talys.LoadPresets(presetsPath)
			if err != nil {
				logrus.Fatalf("Failed to load presets: %v", err)
			}
			preset, ok := presets.Lookup(presetName)
			if !ok {
				logrus.Fatalf("Unknown preset %q in %s", presetName, presetsPath)
			}
			params, src, err = preset.Apply()
			if err != nil {
				logrus.Fatalf("Invalid preset %q: %v", presetName, err)
			}
			logrus.Infof("Using preset %q: ldmodel=%d strength=%d massmodel=%d mass source=%s",
				presetName, params.Ldmodel, params.Strength, params.Massmodel, src)
		}

		ds, err := talys.LoadDataset(dataPath)
		if err != nil {
			logrus.Fatalf("Failed to load data workbook: %v", err)
		}
		logrus.Infof("Loaded %d nuclides and %d reactions from %s", len(ds.Nuclides), len(ds.Reactions), dataPath)

		selections := expandSelections(len(ds.Reactions), allReactions, reactionPicks)
		reports := talys.Prepare(ds, runsRoot, selections, talys.Options{
			Params:     params,
			MassSource: src,
		})

		failures := 0
		for _, r := range reports {
			switch {
			case r.Err != nil:
				failures++
				logrus.Errorf("reaction %d failed: %v", r.Index, r.Err)
			case len(r.Warnings) > 0:
				logrus.Warnf("reaction %d %s prepared in %s with warnings: %v", r.Index, r.Reaction, r.DirName, r.Warnings)
			default:
				logrus.Infof("reaction %d %s prepared in %s", r.Index, r.Reaction, r.DirName)
			}
		}

		if writeManifest {
			manifest := talys.BuildManifest(talys.SystemClock(), dataPath, params, reports)
			path, err := talys.WriteManifest(runsRoot, manifest)
			if err != nil {
				logrus.Fatalf("Failed to write manifest: %v", err)
			}
			logrus.Infof("Wrote manifest %s", path)
		}

		if failures > 0 {
			logrus.Errorf("%d of %d runs failed", failures, len(reports))
			os.Exit(1)
		}
	},
}

// listCmd prints the reaction table with row indices so the operator can
// pick --reactions values, plus the nuclide row count for a sanity check.
var listCmd = &cobra.Command{
	Use:   "list <data.xlsx>",
	Short: "List the reactions defined in a data workbook",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()
		ds, err := talys.LoadDataset(args[0])
		if err != nil {
			logrus.Fatalf("Failed to load data workbook: %v", err)
		}
		fmt.Printf("%d nuclides, %d reactions\n\n", len(ds.Nuclides), len(ds.Reactions))
		for i, r := range ds.Reactions {
			fmt.Printf("%3d  %s\n", i, r)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	prepareCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// TALYS model-selection parameters
	prepareCmd.Flags().IntVar(&ldmodel, "ldmodel", talys.DefaultParams.Ldmodel, "Ldmodel parameter for TALYS")
	prepareCmd.Flags().IntVar(&strength, "strength", talys.DefaultParams.Strength, "Strength parameter for TALYS")
	prepareCmd.Flags().IntVar(&massmodel, "massmodel", talys.DefaultParams.Massmodel, "Massmodel parameter for TALYS")
	prepareCmd.Flags().StringVar(&massSource, "mass-source", string(talys.MassSourceJYFL), "Mass-excess column to export (jyfl or ame20)")

	// Reaction selection and batch output
	prepareCmd.Flags().IntSliceVar(&reactionPicks, "reactions", []int{0}, "Comma-separated reaction row indices to prepare")
	prepareCmd.Flags().BoolVar(&allReactions, "all", false, "Prepare every reaction in the table")
	prepareCmd.Flags().StringVar(&presetsPath, "presets", "", "Path to a presets YAML file")
	prepareCmd.Flags().StringVar(&presetName, "preset", "", "Named preset to apply from --presets")
	prepareCmd.Flags().BoolVar(&writeManifest, "manifest", false, "Write <runs-root>/manifest.yaml summarizing the batch")

	listCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(listCmd)
}
