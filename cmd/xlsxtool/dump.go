package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dumpSheet string

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print every cell with its address and type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wb, err := openWorkbook(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, ws := range wb.Worksheets() {
			if dumpSheet != "" && ws.Name() != dumpSheet {
				continue
			}
			hidden := ""
			if ws.Hidden() {
				hidden = " (hidden)"
			}
			fmt.Fprintf(out, "[%s]%s\n", ws.Name(), hidden)
			for _, c := range ws.Cells() {
				fmt.Fprintf(out, "%s\t%s\t%s\n", c.Address, c.Type, c.Value.Text())
			}
			for _, m := range ws.MergedCells() {
				fmt.Fprintf(out, "merged\t%s\n", m)
			}
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpSheet, "sheet", "s", "", "Only dump the named sheet")
	rootCmd.AddCommand(dumpCmd)
}
