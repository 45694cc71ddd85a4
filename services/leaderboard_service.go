package services

import (
	"math"
	"sort"

	"github.com/bkirwa/engagehub/database"
	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
)

// only the top ranks per quiz are kept in the default view
const leaderboardSize = 100

// attempts that overran the quiz time limit sink to the bottom of the
// elapsed-time tie-break tier
const overrunSentinelSeconds = math.MaxInt32

type LeaderboardRow struct {
	Rank                int       `json:"rank"`
	QuizID              uuid.UUID `json:"quiz_id"`
	QuizTitle           string    `json:"quiz_title"`
	UserID              uuid.UUID `json:"user_id"`
	FullName            string    `json:"full_name"`
	Score               int       `json:"score"`
	TimeTakenSeconds    int       `json:"time_taken_seconds"`
	AvgHintsPerQuestion float64   `json:"avg_hints_per_question"`
}

// QuizLeaderboard ranks every quiz's completed attempts: score descending,
// then elapsed time ascending (overruns last), then average hints per
// question ascending. Ranks are 1-based and contiguous per quiz.
func QuizLeaderboard() ([]LeaderboardRow, error) {
	rankings, err := rankAllQuizzes()
	if err != nil {
		return nil, err
	}

	var rows []LeaderboardRow
	for _, quizRows := range rankings {
		if len(quizRows) > leaderboardSize {
			quizRows = quizRows[:leaderboardSize]
		}
		rows = append(rows, quizRows...)
	}
	return rows, nil
}

// UserQuizRank computes the full ranking for one quiz and filters it to the
// given user. ErrNoCompletedAttempt if the user never completed the quiz.
func UserQuizRank(userID, quizID uuid.UUID) (*LeaderboardRow, error) {
	rankings, err := rankAllQuizzes()
	if err != nil {
		return nil, err
	}

	for _, row := range rankings[quizID] {
		if row.UserID == userID {
			r := row
			return &r, nil
		}
	}
	return nil, ErrNoCompletedAttempt
}

func rankAllQuizzes() (map[uuid.UUID][]LeaderboardRow, error) {
	var attempts []models.QuizAttempt
	err := database.DB.Preload("Quiz").Preload("User").
		Where("completed_at IS NOT NULL AND score IS NOT NULL").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}

	questionCounts, err := questionCountsByQuiz()
	if err != nil {
		return nil, err
	}

	type scoredAttempt struct {
		row           LeaderboardRow
		effectiveSecs int
	}

	byQuiz := make(map[uuid.UUID][]scoredAttempt)
	for _, a := range attempts {
		elapsed := int(a.CompletedAt.Sub(a.StartedAt).Seconds())
		effective := elapsed
		if a.Quiz.DurationMinutes != nil && elapsed > *a.Quiz.DurationMinutes*60 {
			effective = overrunSentinelSeconds
		}

		avgHints := 0.0
		if n := questionCounts[a.QuizID]; n > 0 {
			avgHints = float64(a.TotalHintsUsed) / float64(n)
		}

		byQuiz[a.QuizID] = append(byQuiz[a.QuizID], scoredAttempt{
			row: LeaderboardRow{
				QuizID:              a.QuizID,
				QuizTitle:           a.Quiz.Title,
				UserID:              a.UserID,
				FullName:            a.User.FullName,
				Score:               *a.Score,
				TimeTakenSeconds:    elapsed,
				AvgHintsPerQuestion: avgHints,
			},
			effectiveSecs: effective,
		})
	}

	rankings := make(map[uuid.UUID][]LeaderboardRow, len(byQuiz))
	for quizID, entries := range byQuiz {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].row.Score != entries[j].row.Score {
				return entries[i].row.Score > entries[j].row.Score
			}
			if entries[i].effectiveSecs != entries[j].effectiveSecs {
				return entries[i].effectiveSecs < entries[j].effectiveSecs
			}
			return entries[i].row.AvgHintsPerQuestion < entries[j].row.AvgHintsPerQuestion
		})

		rows := make([]LeaderboardRow, len(entries))
		for i, e := range entries {
			e.row.Rank = i + 1
			rows[i] = e.row
		}
		rankings[quizID] = rows
	}
	return rankings, nil
}

func questionCountsByQuiz() (map[uuid.UUID]int, error) {
	var counts []struct {
		QuizID uuid.UUID
		Total  int
	}
	err := database.DB.Model(&models.Question{}).
		Select("quiz_id, count(*) as total").
		Group("quiz_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]int, len(counts))
	for _, c := range counts {
		result[c.QuizID] = c.Total
	}
	return result, nil
}
