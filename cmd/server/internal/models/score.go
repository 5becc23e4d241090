package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aquaria-id/contest-api/internal/types"
)

// Append-only judging record, never updated after insert
type Score struct {
	CreatedAt      time.Time
	Scores         datatypes.JSONMap
	TotalScore     datatypes.Null[float64]
	Comment        string
	ID             int64 `gorm:"primaryKey"`
	RegistrationID int64
	JudgeID        int64
}

func (Score) TableName() string {
	return "score"
}

func (s Score) GetID() int64 {
	return s.ID
}

func (s *Score) BeforeCreate(*gorm.DB) error {
	if s.Scores == nil {
		s.Scores = datatypes.JSONMap{}
	}

	return nil
}

func (s *Score) Response() types.ScoreResponse {
	scores := map[string]any(s.Scores)
	if scores == nil {
		scores = map[string]any{}
	}

	return types.ScoreResponse{
		ID:             s.ID,
		RegistrationID: s.RegistrationID,
		JudgeID:        s.JudgeID,
		Scores:         scores,
		TotalScore:     PtrFromNull(s.TotalScore),
		Comment:        s.Comment,
		CreatedAt:      s.CreatedAt,
	}
}
