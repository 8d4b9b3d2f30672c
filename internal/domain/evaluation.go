package domain

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is a folder-scoped assessment. Data is a JSON document whose shape
// is not guaranteed; analytics only assumes numbers appear somewhere in it.
type Evaluation struct {
	ID        uuid.UUID
	FolderID  uuid.UUID
	Subject   string
	Data      string
	CreatedBy Identity
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EvaluationUpdateParams holds optional fields for a partial evaluation update.
type EvaluationUpdateParams struct {
	Subject *string
	Data    *string
}

// TrendPoint is one evaluation reduced to its mean score.
type TrendPoint struct {
	ID      uuid.UUID
	At      time.Time
	Value   float64
	Subject string
}

// Analytics aggregates evaluation scores for a folder.
type Analytics struct {
	AvgAll       float64
	Avg7         float64
	Avg30        float64
	Distribution [11]int
	Trend        []TrendPoint
}
