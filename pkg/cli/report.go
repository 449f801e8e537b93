package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/carewell-lab/saheli/pkg/cli/config"
	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/usecase"
	"github.com/carewell-lab/saheli/pkg/utils/safe"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var repoCfg config.Repository
	var date string
	var weekStart string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "date",
			Usage:       "Daily report date (YYYY-MM-DD, default today)",
			Destination: &date,
		},
		&cli.StringFlag{
			Name:        "week-start",
			Usage:       "Weekly report start date (YYYY-MM-DD); takes precedence over --date",
			Destination: &weekStart,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Print a daily or weekly clinical summary from the interaction log",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)

			if weekStart != "" {
				start, err := time.ParseInLocation("2006-01-02", weekStart, time.Local)
				if err != nil {
					return goerr.Wrap(err, "invalid week-start date", goerr.V("week_start", weekStart))
				}
				summary, err := uc.Insight.Weekly(ctx, start)
				if err != nil {
					return goerr.Wrap(err, "failed to build weekly summary")
				}
				printWeeklySummary(summary)
				return nil
			}

			day := time.Now()
			if date != "" {
				day, err = time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return goerr.Wrap(err, "invalid report date", goerr.V("date", date))
				}
			}
			summary, err := uc.Insight.Daily(ctx, day)
			if err != nil {
				return goerr.Wrap(err, "failed to build daily summary")
			}
			printDailySummary(summary)
			return nil
		},
	}
}

func printDailySummary(s *model.DailySummary) {
	header := color.New(color.FgHiWhite, color.Bold)
	label := color.New(color.FgCyan)

	header.Printf("Daily summary %s\n", s.Date.Format("2006-01-02"))
	label.Print("overall state: ")
	fmt.Println(s.OverallState)
	label.Print("records: ")
	fmt.Println(s.RecordCount)
	label.Print("sundowning: ")
	fmt.Printf("%s (%d records)\n", s.SundowningSeverity, s.SundowningCount)
	label.Print("episodes: ")
	fmt.Println(s.EpisodeCount)
	if len(s.DominantConcerns) > 0 {
		label.Println("dominant concerns:")
		for _, concern := range s.DominantConcerns {
			fmt.Printf("  %s (%d)\n", concern.Trigger, concern.Count)
		}
	}
	fmt.Println(s.Narrative)
	for _, insight := range s.ActionableInsights {
		fmt.Printf("- %s\n", insight)
	}
}

func printWeeklySummary(s *model.WeeklySummary) {
	header := color.New(color.FgHiWhite, color.Bold)
	label := color.New(color.FgCyan)

	header.Printf("Weekly summary from %s (%d days, %d records)\n",
		s.WeekStart.Format("2006-01-02"), s.DayCount, s.RecordCount)
	label.Print("sundowning days: ")
	fmt.Println(s.SundowningDays)
	label.Print("episode days: ")
	fmt.Println(s.EpisodeDays)
	if len(s.DominantConcerns) > 0 {
		label.Println("dominant concerns:")
		for _, concern := range s.DominantConcerns {
			fmt.Printf("  %s (%d)\n", concern.Trigger, concern.Count)
		}
	}
	if len(s.Patterns) > 0 {
		label.Println("patterns:")
		for _, pattern := range s.Patterns {
			fmt.Printf("  %s\n", pattern.Statement)
		}
	}
	if len(s.Recommendations) > 0 {
		label.Println("recommendations:")
		for _, rec := range s.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}
