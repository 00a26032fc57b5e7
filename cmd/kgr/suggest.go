package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Look up a single value in the Google Knowledge Graph",
	Long: `Look up a single value and print what the Knowledge Graph would
replace it with.

Examples:
  kgr suggest "Apple"                # Result from Google Knowledge Graph: "Apple Inc."
  kgr -k YOUR_KEY suggest "Bananas"  # pass the API key explicitly
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newReplacer()
		if err != nil {
			FatalError("%v", err)
		}

		query := args[0]
		suggestion, err := client.Suggest(cmd.Context(), query)
		if err != nil {
			FatalError("%v", err)
		}

		switch {
		case suggestion == query:
			fmt.Printf("Result from Google Knowledge Graph equals input: %q\n", query)
		case suggestion != "":
			fmt.Printf("Result from Google Knowledge Graph: %q\n", suggestion)
		default:
			fmt.Printf("No results in the Google Knowledge Graph for: %q\n", query)
		}
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
