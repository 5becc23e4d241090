package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aquaria-id/contest-api/internal/types"
)

type Registration struct {
	Answers       datatypes.JSONMap
	Ranking       datatypes.Null[int]
	FinalPosition datatypes.Null[string]
	Status        types.RegistrationStatus
	Model
	CompetitionID int64
	ParticipantID int64
}

func (Registration) TableName() string {
	return "registration"
}

func (r Registration) GetID() int64 {
	return r.ID
}

func (r *Registration) BeforeSave(*gorm.DB) error {
	if r.Answers == nil {
		r.Answers = datatypes.JSONMap{}
	}
	if r.Status == "" {
		r.Status = types.RegistrationStatusPending
	}

	return nil
}

func (r *Registration) Response() types.RegistrationResponse {
	answers := map[string]any(r.Answers)
	if answers == nil {
		answers = map[string]any{}
	}

	return types.RegistrationResponse{
		ID:            r.ID,
		CompetitionID: r.CompetitionID,
		ParticipantID: r.ParticipantID,
		Answers:       answers,
		Status:        r.Status,
		Ranking:       PtrFromNull(r.Ranking),
		FinalPosition: PtrFromNull(r.FinalPosition),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
