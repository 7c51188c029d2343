package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-audiofeatures/extract"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available extractors and their feature columns",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINPUT\tFEATURES\tHEADERS")

	for _, info := range extract.Catalog() {
		ext, err := info.New(defaultAnalysisRate)
		if err != nil {
			return err
		}

		input := "mono"
		if info.Stereo {
			input = "stereo"
		}

		headers := ext.Headers()
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			info.Name, input, len(headers), strings.Join(headers, ", "))
	}

	return w.Flush()
}
