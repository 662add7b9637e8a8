package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/awhite/tasktally/internal/config"
	"github.com/awhite/tasktally/internal/github"
	"github.com/awhite/tasktally/internal/ledger"
	"github.com/awhite/tasktally/internal/logger"
	"github.com/awhite/tasktally/internal/timespan"
)

var (
	// Used for flags.
	startDate string
	endDate   string
	calendar  bool
	tasksFile string
	doPost    bool
	issueNum  int
	repoFull  string

	// rangeCmd represents the range command.
	rangeCmd = &cobra.Command{
		Use:   "range",
		Short: "Total hours over a date range.",
		Long: `Computes cumulative hours for an inclusive date range. Exact totals come
from ISO-dated lines (YYYY-MM-DD) with time markers in the tasks file;
without them, totals are estimated from the configured daily-hours band.
With --post the summary is published as a GitHub issue comment, updating
any summary comment posted earlier.`,
		Run: runRangeCommand,
	}
)

func init() {
	rangeCmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD).")
	rangeCmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD).")
	rangeCmd.Flags().BoolVar(&calendar, "calendar", false, "Count all calendar days instead of workdays.")
	rangeCmd.Flags().StringVar(&tasksFile, "tasks-file", "", "Tasks file with ISO-dated lines for exact totals.")
	rangeCmd.Flags().BoolVar(&doPost, "post", false, "Post the summary as a GitHub issue comment.")
	rangeCmd.Flags().IntVar(&issueNum, "issue", 0, "GitHub issue number to post the summary to.")
	rangeCmd.Flags().StringVar(&repoFull, "repo", "", "Repository in owner/repo form (default from config or GITHUB_REPOSITORY).")

	_ = rangeCmd.MarkFlagRequired("start")
	_ = rangeCmd.MarkFlagRequired("end")
}

func runRangeCommand(cmd *cobra.Command, args []string) {
	log := logger.Global().With().Str("run_id", uuid.NewString()).Logger()

	r, err := timespan.ParseRange(startDate, endDate)
	if err != nil {
		log.Error().Err(err).Str("start", startDate).Str("end", endDate).Msg("failed to process date range")
		os.Exit(1)
	}

	workdaysOnly := !calendar
	summary := timespan.Summary{
		Range:        r,
		WorkdaysOnly: workdaysOnly,
		DaysCounted:  r.CountDays(workdaysOnly),
		Band:         cfg.DailyHours,
	}

	if tasksFile != "" {
		totals, err := ledger.LoadDaily(tasksFile)
		if err != nil {
			log.Error().Err(err).Str("path", tasksFile).Msg("failed to load tasks file")
			os.Exit(1)
		}
		// A dated log with entries yields an exact total, even if every
		// in-range day sums to zero.
		if len(totals) > 0 {
			exact := r.SumTotals(totals, workdaysOnly)
			summary.ExactTotal = &exact
		}
	}

	body := timespan.BuildComment(summary)
	cmd.Printf("Range hours summary: %s → %s\n\n", startDate, endDate)
	cmd.Println(body)

	if !doPost {
		return
	}

	repo := repoFull
	if repo == "" {
		repo = cfg.GitHub.Repo
	}
	issue := issueNum
	if issue == 0 {
		issue = cfg.GitHub.Issue
	}
	if repo == "" {
		log.Error().Msg("repository must be set via --repo, config, or GITHUB_REPOSITORY")
		os.Exit(1)
	}
	if issue == 0 {
		log.Error().Msg("issue number must be set via --issue or config")
		os.Exit(1)
	}

	token, err := config.Token()
	if err != nil {
		log.Error().Err(err).Msg("missing GitHub credentials")
		os.Exit(1)
	}

	client := github.NewClient(token)
	if err := client.PostOrUpdate(cmd.Context(), repo, issue, timespan.CommentMarker, body); err != nil {
		log.Error().Err(err).Str("repo", repo).Int("issue", issue).Msg("failed to post range summary")
		os.Exit(1)
	}
	cmd.Printf("Posted range summary to %s#%d\n", repo, issue)
}
