// Package seasonevents defines the messages published when season results
// are generated.
package seasonevents

import (
	"time"

	leaderboarddomain "github.com/Black-And-White-Club/golf-league/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
)

const (
	EventResultsGeneratedTopic  = "season.event.results.generated"
	SeasonResultsGeneratedTopic = "season.results.generated"
)

// Metadata keys set on every published message.
const (
	MetadataRunID  = "run_id"
	MetadataTopic  = "topic"
	MetadataSeason = "season"
)

// PlayerEventSummary is one player's line in an event results message.
// Ranks are 0 when the player has no rank.
type PlayerEventSummary struct {
	Player         string  `json:"player"`
	Complete       bool    `json:"complete"`
	CourseHandicap int     `json:"course_handicap,omitempty"`
	Gross          int     `json:"gross,omitempty"`
	Net            int     `json:"net,omitempty"`
	Differential   float64 `json:"differential,omitempty"`
	GrossPoints    float64 `json:"gross_points"`
	NetPoints      float64 `json:"net_points"`
	EventPoints    float64 `json:"event_points"`
	GrossRank      int     `json:"gross_rank,omitempty"`
	NetRank        int     `json:"net_rank,omitempty"`
	EventRank      int     `json:"event_rank"`
}

// EventResultsGeneratedPayload is published once per processed event.
type EventResultsGeneratedPayload struct {
	RunID       string               `json:"run_id"`
	Season      string               `json:"season"`
	EventNumber int                  `json:"event_number"`
	EventName   string               `json:"event_name"`
	Course      string               `json:"course"`
	EventType   string               `json:"event_type"`
	Results     []PlayerEventSummary `json:"results"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// SeasonStanding is one player's line in a season results message.
type SeasonStanding struct {
	Rank            int     `json:"rank"`
	Player          string  `json:"player"`
	Points          float64 `json:"points"`
	EventsCompleted int     `json:"events_completed"`
	EventWins       int     `json:"event_wins"`
	SeasonHandicap  float64 `json:"season_handicap"`
}

// SeasonResultsGeneratedPayload is published after the season fold.
type SeasonResultsGeneratedPayload struct {
	RunID       string           `json:"run_id"`
	Season      string           `json:"season"`
	Events      []int            `json:"events"`
	Standings   []SeasonStanding `json:"standings"`
	GeneratedAt time.Time        `json:"generated_at"`
}

func rankValue(r leaderboarddomain.Rank) int {
	p, err := r.Position()
	if err != nil {
		return 0
	}
	return p
}

// SummarizeEvent converts event results into message lines.
func SummarizeEvent(results []leaderboarddomain.EventPlayerResult) []PlayerEventSummary {
	out := make([]PlayerEventSummary, len(results))
	for i, r := range results {
		s := PlayerEventSummary{
			Player:      r.Player,
			GrossPoints: r.Aggregate.GrossPoints,
			NetPoints:   r.Aggregate.NetPoints,
			EventPoints: r.Aggregate.EventPoints,
			GrossRank:   rankValue(r.Aggregate.GrossRank),
			NetRank:     rankValue(r.Aggregate.NetRank),
			EventRank:   rankValue(r.Aggregate.EventRank),
		}
		if c, ok := r.Individual.(scoredomain.CompleteIndividualResult); ok {
			s.Complete = true
			s.CourseHandicap = c.CourseHandicap
			s.Gross = c.TotalGross
			s.Net = c.TotalNet
			s.Differential = c.ScoreDifferential
		}
		out[i] = s
	}
	return out
}

// SummarizeSeason converts season standings into message lines, keeping
// their order.
func SummarizeSeason(standings []leaderboarddomain.SeasonOverallResult) []SeasonStanding {
	out := make([]SeasonStanding, len(standings))
	for i, s := range standings {
		out[i] = SeasonStanding{
			Rank:            rankValue(s.Rank),
			Player:          s.Player,
			Points:          s.Points,
			EventsCompleted: s.EventsCompleted,
			EventWins:       s.EventWins,
			SeasonHandicap:  s.SeasonHandicap,
		}
	}
	return out
}
