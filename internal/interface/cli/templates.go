package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yanqian/ai-sitegen/internal/domain/sitegen"
)

func newTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available templates and example prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := sitegen.BuildCatalog()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, tpl := range catalog.Templates {
				fmt.Fprintf(w, "%s\t%s\t%s\n", tpl.ID, tpl.Name, tpl.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nExamples:")
			for _, example := range catalog.Examples {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", example)
			}
			return nil
		},
	}
}
