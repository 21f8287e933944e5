package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"quiz-author/internal/app"
	"quiz-author/internal/domain"
	"quiz-author/internal/form"
	transport "quiz-author/internal/transport/http"
)

// NewGameCmd groups the game room commands.
func NewGameCmd(configPath, apiURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Private game rooms",
	}
	cmd.AddCommand(newGameCreateCmd(configPath, apiURL))
	return cmd
}

func newGameCreateCmd(configPath, apiURL *string) *cobra.Command {
	var (
		topic      string
		difficulty string
		count      int
		wait       bool
		wsURL      string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a private game room",
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic != "" {
				if _, err := domain.ToBackendCode(topic); err != nil {
					return err
				}
			}
			if difficulty != "" {
				if _, err := domain.DifficultyCode(difficulty); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			d, err := loadDeps(*configPath, *apiURL, out)
			if err != nil {
				return err
			}
			defer d.Close()

			page := app.NewGameRoomPage(d.client, d.toast, d.nav)
			f := page.Update(func(g form.GameRoomForm) form.GameRoomForm {
				return g.SetTopic(topic).SetDifficulty(difficulty).SetQuizCount(count)
			})
			if f.Config.QuizCount != count {
				fmt.Fprintf(out, "quiz count must be between %d and %d; keeping %d\n",
					domain.MinQuizCount, domain.MaxQuizCount, f.Config.QuizCount)
			}

			handoff, err := page.Submit(cmd.Context())
			if errors.Is(err, domain.ErrValidation) {
				f = page.Form()
				if f.TopicMissing {
					fmt.Fprintln(out, "  topic: choose a topic")
				}
				if f.DifficultyMissing {
					fmt.Fprintln(out, "  difficulty: choose 하, 중 or 상")
				}
			}
			if err != nil || !wait {
				return err
			}

			if wsURL == "" {
				wsURL = d.cfg.API.WSURL
			}
			if wsURL == "" {
				return fmt.Errorf("--wait needs --ws-url or api.wsURL in config")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return waitForStart(ctx, transport.NewWaitingRoomClient(wsURL), handoff, cmd)
		},
	}
	cmd.Flags().StringVar(&topic, "topic", "", "topic label, see `quiz-author categories`")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "difficulty: 하, 중 or 상")
	cmd.Flags().IntVar(&count, "count", domain.DefaultQuizCount, "number of quizzes (5-20)")
	cmd.Flags().BoolVar(&wait, "wait", false, "stay in the waiting room until the game starts")
	cmd.Flags().StringVar(&wsURL, "ws-url", "", "waiting room websocket URL (overrides config)")
	return cmd
}

func waitForStart(ctx context.Context, room *transport.WaitingRoomClient, handoff domain.WaitingRoomState, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "waiting for players...")
	err := room.Wait(ctx, handoff, func(e transport.RoomEvent) {
		fmt.Fprintf(out, "  %s %s\n", e.Type, string(e.Payload))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
