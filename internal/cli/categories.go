package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"quiz-author/internal/domain"
)

// NewCategoriesCmd lists category and difficulty labels with their codes.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List quiz categories and difficulties",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Categories")
			for _, label := range domain.Categories() {
				code, err := domain.ToBackendCode(label)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-12s %s\n", label, code)
			}
			fmt.Fprintln(out, "Difficulties")
			for _, label := range domain.Difficulties() {
				code, err := domain.DifficultyCode(label)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-12s %s\n", label, code)
			}
			return nil
		},
	}
}
