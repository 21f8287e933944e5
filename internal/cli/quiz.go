package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"quiz-author/internal/app"
	"quiz-author/internal/domain"
	"quiz-author/internal/form"
)

type quizFlags struct {
	category    string
	content     string
	options     []string
	answer      int
	explanation string
	tags        []string
	removeTags  []string
}

// NewQuizCmd groups the quiz authoring pages.
func NewQuizCmd(configPath, apiURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Create or edit multiple-choice quizzes",
	}
	cmd.AddCommand(newQuizCreateCmd(configPath, apiURL))
	cmd.AddCommand(newQuizEditCmd(configPath, apiURL))
	return cmd
}

func newQuizCreateCmd(configPath, apiURL *string) *cobra.Command {
	var flags quizFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a multiple-choice quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCategory(cmd, flags.category); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			d, err := loadDeps(*configPath, *apiURL, out)
			if err != nil {
				return err
			}
			defer d.Close()

			page := app.NewCreateQuizPage(d.client, d.toast, d.nav)
			page.Update(func(f form.QuizForm) form.QuizForm {
				return applyQuizFlags(cmd, f, flags)
			})
			return submitQuiz(cmd, page, out)
		},
	}
	bindQuizFlags(cmd, &flags)
	return cmd
}

func newQuizEditCmd(configPath, apiURL *string) *cobra.Command {
	var flags quizFlags
	cmd := &cobra.Command{
		Use:   "edit <quiz-id>",
		Short: "Edit an existing multiple-choice quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quizID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || quizID <= 0 {
				return fmt.Errorf("invalid quiz id %q", args[0])
			}
			if err := checkCategory(cmd, flags.category); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			d, err := loadDeps(*configPath, *apiURL, out)
			if err != nil {
				return err
			}
			defer d.Close()

			page := app.NewEditQuizPage(quizID, d.client, d.quizzes, d.toast, d.nav)
			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			page.Update(func(f form.QuizForm) form.QuizForm {
				return applyQuizFlags(cmd, f, flags)
			})
			return submitQuiz(cmd, page, out)
		},
	}
	bindQuizFlags(cmd, &flags)
	cmd.Flags().StringArrayVar(&flags.removeTags, "remove-tag", nil, "tag to remove (repeatable)")
	return cmd
}

func bindQuizFlags(cmd *cobra.Command, flags *quizFlags) {
	cmd.Flags().StringVar(&flags.category, "category", "", "category label, see `quiz-author categories`")
	cmd.Flags().StringVar(&flags.content, "content", "", "question text")
	cmd.Flags().StringArrayVar(&flags.options, "option", nil, "option text, or N=text for a specific position (repeatable)")
	cmd.Flags().IntVar(&flags.answer, "answer", domain.NoAnswer, "correct option position (0 clears)")
	cmd.Flags().StringVar(&flags.explanation, "explanation", "", "answer explanation")
	cmd.Flags().StringArrayVar(&flags.tags, "tag", nil, "tag to add (repeatable)")
}

// applyQuizFlags feeds the flags the user set through the form transitions,
// the way keystrokes would reach the page.
func applyQuizFlags(cmd *cobra.Command, f form.QuizForm, flags quizFlags) form.QuizForm {
	changed := cmd.Flags().Changed
	if changed("category") {
		f = f.SetCategory(flags.category)
	}
	if changed("content") {
		f = f.SetContent(flags.content)
	}
	next := 1
	for _, raw := range flags.options {
		pos, text := parseOption(raw, next)
		f = f.SetOption(pos, text)
		next = pos + 1
	}
	if changed("answer") {
		f = setAnswer(f, flags.answer)
	}
	if changed("explanation") {
		f = f.SetExplanation(flags.explanation)
	}
	for _, tag := range flags.tags {
		f = f.AddTag(tag)
	}
	for _, tag := range flags.removeTags {
		f = f.RemoveTag(tag)
	}
	return f
}

// checkCategory rejects labels the category dropdown would never offer.
func checkCategory(cmd *cobra.Command, label string) error {
	if !cmd.Flags().Changed("category") || label == "" {
		return nil
	}
	_, err := domain.ToBackendCode(label)
	return err
}

// setAnswer selects position without toggling an existing selection off.
func setAnswer(f form.QuizForm, position int) form.QuizForm {
	current := f.Draft.Answer
	switch {
	case position == domain.NoAnswer && current != domain.NoAnswer:
		return f.SetAnswer(current)
	case position != domain.NoAnswer && position != current:
		return f.SetAnswer(position)
	}
	return f
}

// parseOption accepts "N=text" or plain text for the next position.
func parseOption(raw string, next int) (int, string) {
	if head, tail, ok := strings.Cut(raw, "="); ok {
		if pos, err := strconv.Atoi(strings.TrimSpace(head)); err == nil {
			return pos, tail
		}
	}
	return next, raw
}

func submitQuiz(cmd *cobra.Command, page *app.QuizPage, out io.Writer) error {
	err := page.Submit(cmd.Context())
	if errors.Is(err, domain.ErrValidation) {
		printFieldErrors(out, page.Form())
	}
	return err
}

func printFieldErrors(out io.Writer, f form.QuizForm) {
	e := f.Errors
	if e.Category {
		fmt.Fprintf(out, "  category: choose one of %s\n", strings.Join(domain.Categories(), ", "))
	}
	if e.Content {
		fmt.Fprintln(out, "  content: question is required")
	}
	for i, bad := range e.Options {
		if bad {
			fmt.Fprintf(out, "  option %d: text is required\n", i+1)
		}
	}
	if e.Answer {
		fmt.Fprintln(out, "  answer: choose the correct option")
	}
	if e.Explanation {
		fmt.Fprintln(out, "  explanation: explanation is required")
	}
}
