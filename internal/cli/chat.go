package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"babysteps/internal/chat"
	"babysteps/internal/domain"
	"babysteps/internal/tui"
)

var chatChildID string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatChildID, "child", "", "child profile ID (omit for an anonymous chat)")
}

func runChat(cmd *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()

	var child *domain.Child
	if chatChildID != "" {
		child, err = app.Children.Get(ctx, chatChildID)
		if err != nil {
			return fmt.Errorf("child %s: %w", chatChildID, err)
		}
	}

	session := chat.New(child, chat.Deps{
		Retriever: app.Retriever,
		Composer:  app.Composer,
		Parser:    app.Parser,
		Children:  app.Children,
		Messages:  app.Messages,
	}, chat.WithTopK(app.Config.Retrieval.TopK), chat.WithLogger(app.Logger))

	if child != nil {
		if _, err := session.RunProactive(ctx); err != nil {
			app.Logger.Warn().Err(err).Msg("proactive check failed")
		}
	}

	program := tea.NewProgram(tui.New(session), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
