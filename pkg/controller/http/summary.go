package http

import (
	"net/http"
	"time"

	"github.com/carewell-lab/saheli/pkg/domain/model"
	"github.com/carewell-lab/saheli/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

type concernResponse struct {
	Trigger string `json:"trigger"`
	Count   int    `json:"count"`
}

func toConcernResponses(concerns []model.ConcernCount) []concernResponse {
	out := make([]concernResponse, 0, len(concerns))
	for _, c := range concerns {
		out = append(out, concernResponse{Trigger: c.Trigger.String(), Count: c.Count})
	}
	return out
}

type dailySummaryResponse struct {
	Date               string            `json:"date"`
	RecordCount        int               `json:"record_count"`
	OverallState       string            `json:"overall_state"`
	StateCounts        map[string]int    `json:"state_counts"`
	DominantConcerns   []concernResponse `json:"dominant_concerns"`
	EpisodeCount       int               `json:"episode_count"`
	SundowningSeverity string            `json:"sundowning_severity"`
	Narrative          string            `json:"narrative_summary"`
	ActionableInsights []string          `json:"actionable_insights"`
}

type patternResponse struct {
	Statement string         `json:"statement"`
	Evidence  map[string]int `json:"evidence"`
}

type weeklySummaryResponse struct {
	WeekStart        string            `json:"week_start"`
	DayCount         int               `json:"day_count"`
	RecordCount      int               `json:"record_count"`
	StateCounts      map[string]int    `json:"state_counts"`
	DominantConcerns []concernResponse `json:"dominant_concerns"`
	SundowningDays   int               `json:"sundowning_days"`
	EpisodeDays      int               `json:"episode_days"`
	Patterns         []patternResponse `json:"emerging_patterns"`
	Recommendations  []string          `json:"treatment_recommendations"`
}

func (s *Server) handleDailySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query().Get("date")
	if raw == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("'date' parameter is required (YYYY-MM-DD)"), http.StatusBadRequest)
		return
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid 'date' parameter", goerr.V("date", raw)), http.StatusBadRequest)
		return
	}

	summary, err := s.uc.Insight.Daily(ctx, date)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	stateCounts := make(map[string]int, len(summary.StateCounts))
	for state, count := range summary.StateCounts {
		stateCounts[state.String()] = count
	}

	writeJSON(w, http.StatusOK, dailySummaryResponse{
		Date:               summary.Date.Format("2006-01-02"),
		RecordCount:        summary.RecordCount,
		OverallState:       summary.OverallState.String(),
		StateCounts:        stateCounts,
		DominantConcerns:   toConcernResponses(summary.DominantConcerns),
		EpisodeCount:       summary.EpisodeCount,
		SundowningSeverity: summary.SundowningSeverity.String(),
		Narrative:          summary.Narrative,
		ActionableInsights: summary.ActionableInsights,
	})
}

func (s *Server) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query().Get("start")
	if raw == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("'start' parameter is required (YYYY-MM-DD)"), http.StatusBadRequest)
		return
	}
	start, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid 'start' parameter", goerr.V("start", raw)), http.StatusBadRequest)
		return
	}

	summary, err := s.uc.Insight.Weekly(ctx, start)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	stateCounts := make(map[string]int, len(summary.StateCounts))
	for state, count := range summary.StateCounts {
		stateCounts[state.String()] = count
	}

	patterns := make([]patternResponse, 0, len(summary.Patterns))
	for _, p := range summary.Patterns {
		patterns = append(patterns, patternResponse{Statement: p.Statement, Evidence: p.Evidence})
	}

	writeJSON(w, http.StatusOK, weeklySummaryResponse{
		WeekStart:        summary.WeekStart.Format("2006-01-02"),
		DayCount:         summary.DayCount,
		RecordCount:      summary.RecordCount,
		StateCounts:      stateCounts,
		DominantConcerns: toConcernResponses(summary.DominantConcerns),
		SundowningDays:   summary.SundowningDays,
		EpisodeDays:      summary.EpisodeDays,
		Patterns:         patterns,
		Recommendations:  summary.Recommendations,
	})
}
