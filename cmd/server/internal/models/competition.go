package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aquaria-id/contest-api/internal/types"
)

type Competition struct {
	StartAt         datatypes.Null[time.Time]
	EndAt           datatypes.Null[time.Time]
	PosterImage     datatypes.Null[string]
	MaxParticipants datatypes.Null[int]
	Title           string
	Description     string
	Status          types.CompetitionStatus
	Requirements    datatypes.JSONSlice[string]
	FormFields      datatypes.JSONSlice[types.FormField]
	Model
}

func (Competition) TableName() string {
	return "competition"
}

func (c Competition) GetID() int64 {
	return c.ID
}

// jsonb columns hold [] rather than null
func (c *Competition) BeforeSave(*gorm.DB) error {
	if c.Requirements == nil {
		c.Requirements = []string{}
	}
	if c.FormFields == nil {
		c.FormFields = []types.FormField{}
	}

	return nil
}

func (c *Competition) Response() types.CompetitionResponse {
	requirements := []string(c.Requirements)
	if requirements == nil {
		requirements = []string{}
	}
	formFields := []types.FormField(c.FormFields)
	if formFields == nil {
		formFields = []types.FormField{}
	}

	return types.CompetitionResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Requirements:    requirements,
		FormFields:      formFields,
		Status:          c.Status,
		StartAt:         PtrFromNull(c.StartAt),
		EndAt:           PtrFromNull(c.EndAt),
		MaxParticipants: PtrFromNull(c.MaxParticipants),
		PosterImage:     PtrFromNull(c.PosterImage),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (c *Competition) Summary() types.CompetitionSummary {
	return types.CompetitionSummary{
		ID:          c.ID,
		Title:       c.Title,
		Status:      c.Status,
		StartAt:     PtrFromNull(c.StartAt),
		EndAt:       PtrFromNull(c.EndAt),
		PosterImage: PtrFromNull(c.PosterImage),
	}
}
