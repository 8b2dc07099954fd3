// Command convo renders a conversation as a list of expandable message cards.
//
// Usage:
//
//	convo [flags]
//
// Flags:
//
//	-theme string         Theme: light, dark, auto (default: auto, from the terminal background)
//	-minimal              Render the minimal variant: author and body only
//	-conversation string  Path to a .json, .yaml or .yml conversation (default: built-in sample)
//	-log string           Path to a debug log file (default: no logging)
//	-log-level string     Log level (default: debug when -log is set)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	bt "github.com/fwojciec/convo/bubbletea"
	"github.com/fwojciec/convo/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "convo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags.
	var (
		themeFlag        = flag.String("theme", themeAuto, "Theme: light, dark, auto")
		minimal          = flag.Bool("minimal", false, "Render author and body only, without avatar or expansion")
		conversationPath = flag.String("conversation", "", "Path to a .json, .yaml or .yml conversation")
		logPath          = flag.String("log", "", "Path to a debug log file")
		logLevel         = flag.String("log-level", "debug", "Log level")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	theme, err := resolveTheme(*themeFlag, lipgloss.HasDarkBackground)
	if err != nil {
		return err
	}

	conv, err := loadConversation(*conversationPath, *minimal)
	if err != nil {
		return err
	}

	config := bt.Config{
		Minimal: *minimal,
		Buffer:  bt.DefaultBuffer,
	}
	if *logPath != "" {
		log, closeLog, err := logger.Open(*logPath, *logLevel)
		if err != nil {
			return err
		}
		defer closeLog()
		log.Info().Str("theme", theme.Name).Int("messages", len(conv)).Bool("minimal", *minimal).Msg("start")
		config.Logger = &log
	}

	if err := bt.Run(ctx, bt.New(conv, theme, config)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
