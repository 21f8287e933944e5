package cli

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	configPath string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	envAPI := os.Getenv("API_BASE_URL")
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:          "quiz-author",
		Short:        "Author quizzes, open game rooms and comment from the terminal",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&apiURL, "api-url", envAPI, "quiz API base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewQuizCmd(&configPath, &apiURL))
	cmd.AddCommand(NewGameCmd(&configPath, &apiURL))
	cmd.AddCommand(NewCommentCmd(&configPath, &apiURL))
	cmd.AddCommand(NewProfileCmd(&configPath))
	cmd.AddCommand(NewCategoriesCmd())
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}
