package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newClassesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the class names and identifiers in the active sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := a.sheet()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Class", "Identifier")
			for _, name := range sheet.Names() {
				if err := table.Append([]string{name, sheet[name]}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
