package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"quiz-author/internal/app"
	"quiz-author/internal/config"
)

// NewProfileCmd prints the profile page.
func NewProfileCmd(configPath *string) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show profile and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			loader, closeFn, err := loadProfileLoader(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			view, err := app.NewProfileService(loader).View(cmd.Context())
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), view, all)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every achievement")
	return cmd
}

func printProfile(out io.Writer, view app.ProfileView, all bool) {
	p := view.Profile
	fmt.Fprintf(out, "%s  (rating %d)\n", p.Nickname, p.Rating)
	fmt.Fprintf(out, "solved %d  accuracy %d%%\n\n", p.SolvedCount, p.AccuracyPct)

	fmt.Fprintln(out, "Achievements")
	if all {
		for _, a := range p.Achievements {
			mark := " "
			if a.Achieved {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %s - %s\n", mark, a.Title, a.Description)
		}
		return
	}
	if len(view.Featured) == 0 {
		fmt.Fprintln(out, "  no achievements yet")
		return
	}
	for _, a := range view.Featured {
		fmt.Fprintf(out, "  %s - %s\n", a.Title, a.Description)
	}
}
