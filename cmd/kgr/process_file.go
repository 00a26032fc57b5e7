package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kgrefine/internal/csvfile"
	"kgrefine/internal/nouns"
	"kgrefine/internal/pipeline"
	"kgrefine/internal/refine"
	"kgrefine/internal/ui"
)

var (
	inPlace              bool
	outputFile           string
	saveOpenRefine       bool
	openRefineOutputFile string
	saveProcessed        bool
	processedOutputFile  string
	ignoreValuesFile     string
	dryRun               bool
)

var processFileCmd = &cobra.Command{
	Use:   "process-file <column> <csv_file>",
	Short: "Replace the values of one CSV column after confirmation",
	Long: `Replace the values of one CSV column with Knowledge Graph suggestions.

Every unique value of the column is looked up once, in sorted order.
Suggestions that only differ by case or singular/plural form are dropped;
the rest are offered one by one and nothing is replaced without a yes.
A run that stops early (ctrl-c, lookup failure) still writes everything
collected so far.

Examples:
  kgr process-file fruit data.csv                  # writes data_out.csv
  kgr process-file fruit data.csv -i               # rewrites data.csv
  kgr process-file fruit data.csv -s -c            # also writes audit files
  kgr process-file fruit data.csv -g done.json -d  # dry run with ignore list
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		column, csvPath := args[0], args[1]

		client, err := newReplacer()
		if err != nil {
			FatalError("%v", err)
		}

		logger.Info("reading unique column values from CSV file",
			zap.String("column", column),
			zap.String("file", csvPath))
		var table *csvfile.Table
		err = ui.WithSpinner("Processing CSV file...", func() error {
			var readErr error
			table, readErr = csvfile.Read(csvPath, column)
			return readErr
		})
		if err != nil {
			FatalError("%v", err)
		}
		values := table.UniqueValues()
		logger.Info("found unique values", zap.Int("count", len(values)))

		ignore, err := refine.ReadIgnoreValues(ignoreValuesFile)
		if err != nil {
			FatalError("%v", err)
		}

		p := &pipeline.Pipeline{
			Lookup:  client,
			Nouns:   nouns.NewComparer(),
			Confirm: ui.ReplacePrompt{},
			Log:     logger,
		}
		result := p.Process(cmd.Context(), values, ignore)

		if saveProcessed {
			path := processedOutputFile
			if path == "" {
				path = csvfile.DerivedPath(csvPath, "_processed.json")
				logger.Info("no processed values file path provided", zap.String("using", path))
			}
			if err := refine.WriteProcessedValues(path, result.Processed); err != nil {
				FatalError("%v", err)
			}
		}

		if saveOpenRefine {
			path := openRefineOutputFile
			if path == "" {
				path = csvfile.DerivedPath(csvPath, "_openrefine.json")
				logger.Info("no OpenRefine file path provided", zap.String("using", path))
			}
			if err := refine.WriteOperations(path, column, result.Replacements); err != nil {
				FatalError("%v", err)
			}
		}

		if dryRun {
			fmt.Println(ui.RenderMuted("Dry run, not writing CSV output."))
			return
		}

		outPath := outputFile
		if inPlace {
			outPath = csvPath
		} else if outPath == "" {
			outPath = csvfile.OutputPath(csvPath)
		}
		logger.Info("writing file with new values", zap.String("path", outPath))
		if err := table.WriteWithReplacements(outPath, result.Replacements); err != nil {
			FatalError("%v", err)
		}

		fmt.Println(ui.RenderRunSummary(column, result.Replacements,
			len(result.Processed), result.Offered, ui.GetWidth()))
	},
}

func init() {
	processFileCmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "Replace CSV file values in-place (default: false)")
	processFileCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "Output CSV file path (ignored when using --in-place; default stem(<CSV_FILE>)_out.csv)")
	processFileCmd.Flags().BoolVarP(&saveOpenRefine, "save-openrefine", "s", false, "Save replacements as OpenRefine Operation History file (default: false)")
	processFileCmd.Flags().StringVarP(&openRefineOutputFile, "openrefine-output-file", "f", "", "OpenRefine Operation History file path (default stem(<CSV_FILE>)_openrefine.json)")
	processFileCmd.Flags().BoolVarP(&saveProcessed, "save-processed-values", "c", false, "Store processed values in file (default: false)")
	processFileCmd.Flags().StringVarP(&processedOutputFile, "processed-values-output-file", "r", "", "Processed values file path (default stem(<CSV_FILE>)_processed.json)")
	processFileCmd.Flags().StringVarP(&ignoreValuesFile, "ignore-values-file", "g", "", "Load values to be ignored from file")
	processFileCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Skip replacing and saving CSV file values (default: false)")
	rootCmd.AddCommand(processFileCmd)
}
