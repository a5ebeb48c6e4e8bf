package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles FILE",
	Short: "Count the interned styles and style components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wb, err := openWorkbook(args[0])
		if err != nil {
			return err
		}
		repo := wb.Styles()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "styles\t%d\n", repo.Len())
		fmt.Fprintf(out, "fonts\t%d\n", len(repo.Fonts()))
		fmt.Fprintf(out, "fills\t%d\n", len(repo.Fills()))
		fmt.Fprintf(out, "borders\t%d\n", len(repo.Borders()))
		fmt.Fprintf(out, "numFmts\t%d\n", len(repo.NumberFormats()))
		fmt.Fprintf(out, "cellXfs\t%d\n", len(repo.CellXfs()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
