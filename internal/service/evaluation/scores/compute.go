package scores

import (
	"time"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

// TrendSize is the number of most recent evaluations in the trend series.
const TrendSize = 10

// Compute aggregates the scores of evals, which must be ordered newest first.
// Windows are measured back from now on each evaluation's creation time.
func Compute(evals []domain.Evaluation, now time.Time) domain.Analytics {
	var (
		all, last7, last30 []float64
		res                domain.Analytics
	)
	cut7 := now.Add(-7 * 24 * time.Hour)
	cut30 := now.Add(-30 * 24 * time.Hour)

	perEval := make([][]float64, len(evals))
	for i, e := range evals {
		s := ParseScores(e.Data)
		perEval[i] = s

		all = append(all, s...)
		if !e.CreatedAt.Before(cut7) {
			last7 = append(last7, s...)
		}
		if !e.CreatedAt.Before(cut30) {
			last30 = append(last30, s...)
		}
		for _, v := range s {
			if b, ok := Bucket(v); ok {
				res.Distribution[b]++
			}
		}
	}

	res.AvgAll = Mean(all)
	res.Avg7 = Mean(last7)
	res.Avg30 = Mean(last30)

	n := min(len(evals), TrendSize)
	res.Trend = make([]domain.TrendPoint, n)
	for i := 0; i < n; i++ {
		e := evals[i]
		res.Trend[n-1-i] = domain.TrendPoint{
			ID:      e.ID,
			At:      e.CreatedAt,
			Value:   Mean(perEval[i]),
			Subject: e.Subject,
		}
	}

	return res
}
