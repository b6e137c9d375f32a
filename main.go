package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dskvich/chatai-assistant/pkg/api"
	"github.com/dskvich/chatai-assistant/pkg/auth"
	"github.com/dskvich/chatai-assistant/pkg/config"
	"github.com/dskvich/chatai-assistant/pkg/domain"
	"github.com/dskvich/chatai-assistant/pkg/logger"
	"github.com/dskvich/chatai-assistant/pkg/telegram"
	"github.com/dskvich/chatai-assistant/pkg/workers"
)

const sessionJanitorInterval = time.Minute

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	loadConfig := func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		slog.SetDefault(logger.New(os.Stderr, cfg.LogLevel, cfg.LogNoColor))
		return nil
	}

	serve := func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), cfg)
	}

	root := &cobra.Command{
		Use:               "assistant",
		Short:             "Conversational assistant with chat, image and speech capabilities",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE:              serve,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the web interface and the optional Telegram bot",
			Args:  cobra.NoArgs,
			RunE:  serve,
		},
		&cobra.Command{
			Use:   "check",
			Short: "Verify the configured API credentials",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCheck(cmd, cfg)
			},
		},
		newAskCmd(func() *config.Config { return cfg }),
	)

	return root
}

func runServe(ctx context.Context, cfg *config.Config) error {
	c, err := setupComponents(cfg)
	if err != nil {
		return err
	}
	defer c.close()

	workerGroup, err := setupWorkers(cfg, c)
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	err = workerGroup.Start(ctx)
	slog.Info("shutdown complete")
	return err
}

func setupWorkers(cfg *config.Config, c *components) (workers.Group, error) {
	workerGroup := workers.Group{
		workers.NewWebServer(api.NewRouter(c.assistant), cfg.ListenAddr()),
	}

	if cfg.SessionTTL > 0 {
		workerGroup = append(workerGroup, workers.NewSessionJanitor(c.sessions, sessionJanitorInterval))
	}

	if cfg.TelegramBotToken == "" {
		slog.Info("TELEGRAM_BOT_TOKEN not set, Telegram bot disabled")
		return workerGroup, nil
	}

	b, err := telegram.NewBot(
		cfg.TelegramBotToken,
		c.assistant,
		c.speech,
		auth.NewAuthenticator(cfg.TelegramAuthorizedUserIDs),
	)
	if err != nil {
		return nil, err
	}

	return append(workerGroup, workers.NewTelegramBot(b)), nil
}

func runCheck(cmd *cobra.Command, cfg *config.Config) error {
	c, err := setupComponents(cfg)
	if err != nil {
		return err
	}
	defer c.close()

	for _, line := range c.assistant.CheckCredentials(cmd.Context()) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

type askOptions struct {
	language  string
	mode      string
	audioPath string
	imageOut  string
	audioOut  string
}

func newAskCmd(cfg func() *config.Config) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask [text...]",
		Short: "Run a single turn and print the answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, cfg(), opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "Answer language")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(domain.ModeAuto), "auto, chat or image")
	cmd.Flags().StringVarP(&opts.audioPath, "audio", "a", "", "Audio file to transcribe instead of text")
	cmd.Flags().StringVar(&opts.imageOut, "image-out", "image.png", "Where to write a generated image")
	cmd.Flags().StringVar(&opts.audioOut, "audio-out", "", "Where to write the spoken answer (MP3)")

	return cmd
}

func runAsk(cmd *cobra.Command, cfg *config.Config, opts *askOptions, text string) error {
	c, err := setupComponents(cfg)
	if err != nil {
		return err
	}
	defer c.close()

	out := c.assistant.Handle(cmd.Context(), "cli", domain.Input{
		Text:      text,
		Language:  opts.language,
		AudioPath: opts.audioPath,
		Mode:      domain.Mode(opts.mode),
	})

	w := cmd.OutOrStdout()

	switch out.Kind {
	case domain.OutputImage:
		if err := os.WriteFile(opts.imageOut, out.Image.Data, 0o644); err != nil {
			return fmt.Errorf("writing image: %w", err)
		}
		fmt.Fprintf(w, "%s: %s\n", out.Message(), opts.imageOut)
	case domain.OutputText:
		fmt.Fprintln(w, out.Text)
		if opts.audioOut != "" && out.Audio != nil {
			if err := os.WriteFile(opts.audioOut, out.Audio.Data, 0o644); err != nil {
				return fmt.Errorf("writing audio: %w", err)
			}
		}
	default:
		return errors.New(out.Message())
	}

	return nil
}
