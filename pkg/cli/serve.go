package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/carewell-lab/saheli/pkg/cli/config"
	httpctrl "github.com/carewell-lab/saheli/pkg/controller/http"
	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/service/worker"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/carewell-lab/saheli/pkg/utils/errutil"
	"github.com/carewell-lab/saheli/pkg/utils/logging"
	"github.com/carewell-lab/saheli/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdServe() *cli.Command {
	var addr string
	var careCfg config.CareConfig
	var repoCfg config.Repository
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("SAHELI_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, careCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server with the proactive schedule worker",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			profile, schedule, err := careCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load care configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			notifier, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure family alerts")
			}
			if slackCfg.IsConfigured() {
				logging.Default().Info("Family episode alerts enabled (Slack webhook)")
			} else {
				logging.Default().Info("Slack webhook not configured, episode alerts will not be delivered")
			}

			uc := usecase.New(repo,
				usecase.WithProfile(profile),
				usecase.WithSchedule(schedule),
				usecase.WithNotifier(notifier),
			)

			scheduleWorker := worker.NewScheduleWorker(uc.Schedule, func(ctx context.Context, prompt *model.ScheduledPrompt, at time.Time) {
				if _, err := uc.Companion.RecordScheduledPrompt(ctx, prompt, at); err != nil {
					_ = errutil.Handle(ctx, err, "failed to record scheduled prompt")
				}
			})

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(repo, uc),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server failed")
				}
				return nil
			})
			eg.Go(func() error {
				scheduleWorker.Start(ctx)
				<-ctx.Done()
				scheduleWorker.Stop()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shut down HTTP server")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}
			logging.Default().Info("Server stopped")
			return nil
		},
	}
}
