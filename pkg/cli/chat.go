package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/carewell-lab/saheli/pkg/cli/config"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/carewell-lab/saheli/pkg/utils/errutil"
	"github.com/carewell-lab/saheli/pkg/utils/safe"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdChat() *cli.Command {
	var careCfg config.CareConfig
	var repoCfg config.Repository

	flags := append([]cli.Flag{}, careCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Interactive companion session on the console",
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

			uc := usecase.New(repo,
				usecase.WithProfile(profile),
				usecase.WithSchedule(schedule),
			)

			header := color.New(color.FgHiWhite, color.Bold)
			aiOut := color.New(color.FgGreen)
			noteOut := color.New(color.FgYellow)
			metaOut := color.New(color.FgHiBlack)

			header.Printf("Saheli companion session for %s\n", profile.FirstName())
			metaOut.Println("Type an utterance, or /summary for today's roll-up, /quit to exit.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				switch line {
				case "/quit", "/exit":
					return nil

				case "/summary":
					summary, err := uc.Insight.Daily(ctx, time.Now())
					if err != nil {
						return goerr.Wrap(err, "failed to build daily summary")
					}
					printDailySummary(summary)
					continue
				}

				now := time.Now()
				if prompt := uc.Schedule.Lookup(now); prompt != nil {
					metaOut.Printf("[scheduled:%s]\n", prompt.Purpose)
					aiOut.Printf("Saheli: %s\n", prompt.Utterance)
				}

				record, err := uc.Companion.Respond(ctx, line, now)
				if err != nil {
					// keep the session alive; a single bad turn is not fatal
					_ = errutil.Handle(ctx, err, "failed to process utterance")
					continue
				}

				aiOut.Printf("Saheli: %s\n", record.Response)
				metaOut.Printf("[state:%s triggers:%v]\n", record.State, record.Triggers)
				noteOut.Printf("note: %s\n", record.ClinicalNote)
			}

			if err := scanner.Err(); err != nil {
				return goerr.Wrap(err, "failed to read input")
			}
			return nil
		},
	}
}
