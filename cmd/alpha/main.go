// Command alpha runs the voice/text assistant on the terminal. Voice input is
// optional; without a configured listener the assistant reads typed commands
// from stdin. Email credentials come from the EMAIL_USER and EMAIL_PASS
// environment variables (a .env file in the working directory is honored).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/voxlab/alpha"
	"github.com/voxlab/alpha/logging"
	"github.com/voxlab/alpha/memory"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "alpha:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// .env is optional; environment variables set directly always win.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:    "alpha",
		Usage:   "voice/text command assistant",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("ALPHA_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("ALPHA_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "note-file",
				Usage:   "path of the persisted note file",
				Sources: cli.EnvVars("ALPHA_NOTE_FILE"),
			},
			&cli.StringFlag{
				Name:    "screenshot-dir",
				Usage:   "directory for captured screenshots",
				Sources: cli.EnvVars("ALPHA_SCREENSHOT_DIR"),
			},
			&cli.DurationFlag{
				Name:  "listen-timeout",
				Usage: "how long the voice channel waits for speech",
				Value: 5 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "no-greeting",
				Usage: "skip the startup greeting",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.NewSlogLogger(logging.ParseLevel(c.String("log-level")), c.String("log-format"), false)

			assistant := alpha.New(func(o *alpha.Options) {
				o.Logger = logger
				o.ScreenshotDir = c.String("screenshot-dir")
				o.ListenTimeout = c.Duration("listen-timeout")
				o.Greeting = !c.Bool("no-greeting")
				if path := c.String("note-file"); path != "" {
					o.Notes = memory.NewFileStore(path)
				}
			})

			logger.Info("alpha.start", "version", version)

			return assistant.Run(ctx)
		},
	}

	return cmd.Run(ctx, args)
}
