package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/versescope/versescope/pkg/layout"
	"github.com/versescope/versescope/pkg/reference"
)

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "List the translations available for selection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, t := range cat.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s %4d  %s  %s\n", t.ShortName, t.ModuleID, layout.DirectionOf(t), t.Name)
		}
		return nil
	},
}

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the accepted book names",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, b := range reference.Books {
			fmt.Fprintln(cmd.OutOrStdout(), b)
		}
	},
}

func init() {
	rootCmd.AddCommand(translationsCmd)
	rootCmd.AddCommand(booksCmd)
}
