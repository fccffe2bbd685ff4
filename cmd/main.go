package main

import (
	"context"
	"fmt"
	"log"
	"os"

	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/openai"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/di"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/server"
	"github.com/Tomas-vilte/MateReview/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "locales")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	container := di.NewContainer(cfgApp, translations)

	if err := container.RegisterAIProvider("openai", openai.NewOpenAIProviderFactory()); err != nil {
		return nil, fmt.Errorf("no se pudo registrar el proveedor OpenAI: %w", err)
	}

	if err := container.RegisterAIProvider("gemini", gemini.NewGeminiProviderFactory()); err != nil {
		return nil, fmt.Errorf("no se pudo registrar el proveedor Gemini: %w", err)
	}

	if err := container.RegisterVCSProvider("github", github.NewGitHubProviderFactory()); err != nil {
		return nil, fmt.Errorf("no se pudo registrar el proveedor de GitHub: %w", err)
	}

	serveCommand := &cli.Command{
		Name:  "serve",
		Usage: translations.GetMessage("serve_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "listen address",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), false)

			if addr := cmd.String("addr"); addr != "" {
				cfgApp.ServerAddr = addr
			}

			reviewService, err := container.GetReviewService(ctx)
			if err != nil {
				return err
			}

			srv := server.New(cfgApp, translations, reviewService)
			return srv.Start(ctx)
		},
	}

	reviewCommand := &cli.Command{
		Name:    "review",
		Aliases: []string{"r"},
		Usage:   translations.GetMessage("review_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Usage:    "pull request URL",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "GitHub token (falls back to the configured one)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), true)

			reviewService, err := container.GetReviewService(ctx)
			if err != nil {
				return err
			}

			result, err := reviewService.ReviewPR(ctx, cmd.String("url"), cmd.String("token"))
			if err != nil {
				return err
			}

			fmt.Println(translations.GetMessage("review.posted", 0, map[string]interface{}{
				"URL": result.Receipt.HTMLURL,
			}))
			if len(result.AppliedLabels) > 0 {
				fmt.Println(translations.GetMessage("review.labels_applied", 0, map[string]interface{}{
					"Labels": result.AppliedLabels,
				}))
			} else {
				fmt.Println(translations.GetMessage("review.no_labels", 0, nil))
			}
			return nil
		},
	}

	return &cli.Command{
		Name:                  "mate-review",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              []*cli.Command{serveCommand, reviewCommand},
		EnableShellCompletion: true,
	}, nil
}
