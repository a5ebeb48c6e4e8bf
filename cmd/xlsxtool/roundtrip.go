package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip IN OUT",
	Short: "Read a workbook and write it back",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wb, err := openWorkbook(args[0])
		if err != nil {
			return err
		}
		if err := wb.SaveAs(args[1]); err != nil {
			return err
		}
		cells := 0
		for _, ws := range wb.Worksheets() {
			cells += ws.CellCount()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d sheets, %d cells\n", args[1], len(wb.Worksheets()), cells)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}
