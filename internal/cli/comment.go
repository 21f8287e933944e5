package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"quiz-author/internal/app"
)

// NewCommentCmd groups comment commands.
func NewCommentCmd(configPath, apiURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Quiz comments",
	}
	cmd.AddCommand(newCommentAddCmd(configPath, apiURL))
	return cmd
}

func newCommentAddCmd(configPath, apiURL *string) *cobra.Command {
	var (
		quizID   int64
		parentID int64
		content  string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post a comment or a reply",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps(*configPath, *apiURL, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer d.Close()

			if err := app.NewCommentService(d.client).AddComment(cmd.Context(), quizID, parentID, content); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "comment posted")
			return nil
		},
	}
	cmd.Flags().Int64Var(&quizID, "quiz-id", 0, "quiz to comment on")
	cmd.Flags().Int64Var(&parentID, "parent", 0, "parent comment id for replies")
	cmd.Flags().StringVar(&content, "content", "", "comment text")
	_ = cmd.MarkFlagRequired("quiz-id")
	return cmd
}
