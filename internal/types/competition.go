package types

import "time"

type CompetitionStatus string

const (
	CompetitionStatusDraft  CompetitionStatus = "draft"
	CompetitionStatusOpen   CompetitionStatus = "open"
	CompetitionStatusClosed CompetitionStatus = "closed"
)

func (s CompetitionStatus) Valid() bool {
	switch s {
	case CompetitionStatusDraft, CompetitionStatusOpen, CompetitionStatusClosed:
		return true
	default:
		return false
	}
}

type FormFieldType string

const (
	FormFieldTypeText   FormFieldType = "text"
	FormFieldTypeNumber FormFieldType = "number"
)

// Describes one question asked of participants when they register
type FormField struct {
	Name     string        `json:"name"     validate:"required,notblank"`
	Label    string        `json:"label"`
	Type     FormFieldType `json:"type"     validate:"omitempty,eq=text|eq=number"`
	Required bool          `json:"required"`
}

type CompetitionCreate struct {
	StartAt         *time.Time        `json:"startAt"         validate:"omitempty"`
	EndAt           *time.Time        `json:"endAt"           validate:"omitempty"`
	MaxParticipants *int              `json:"maxParticipants" validate:"omitempty,gte=0"`
	PosterImage     *string           `json:"posterImage"     validate:"omitempty,uri"`
	Title           string            `json:"title"           validate:"required,notblank"`
	Description     string            `json:"description"`
	Status          CompetitionStatus `json:"status"          validate:"omitempty,eq=draft|eq=open|eq=closed"`
	Requirements    []string          `json:"requirements"`
	FormFields      []FormField       `json:"formFields"      validate:"omitempty,unique=Name,dive"`
}

// Omitted fields are left untouched, null clears nullable fields
type CompetitionPatch struct {
	Title           Optional[string]            `json:"title"           swaggertype:"string"`
	Description     Optional[string]            `json:"description"     swaggertype:"string"`
	Requirements    Optional[[]string]          `json:"requirements"    swaggertype:"array,string"`
	FormFields      Optional[[]FormField]       `json:"formFields"      swaggertype:"array,object"`
	Status          Optional[CompetitionStatus] `json:"status"          swaggertype:"string"`
	StartAt         Optional[time.Time]         `json:"startAt"         swaggertype:"string" format:"date-time"`
	EndAt           Optional[time.Time]         `json:"endAt"           swaggertype:"string" format:"date-time"`
	MaxParticipants Optional[int]               `json:"maxParticipants" swaggertype:"integer"`
	PosterImage     Optional[string]            `json:"posterImage"     swaggertype:"string"`
}

type CompetitionResponse struct {
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	StartAt         *time.Time        `json:"startAt"`
	EndAt           *time.Time        `json:"endAt"`
	MaxParticipants *int              `json:"maxParticipants"`
	PosterImage     *string           `json:"posterImage"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Status          CompetitionStatus `json:"status"`
	Requirements    []string          `json:"requirements"`
	FormFields      []FormField       `json:"formFields"`
	ID              int64             `json:"id"`
}

type CompetitionStats struct {
	MaxRank  *int  `json:"maxRank"`
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type CompetitionDetailResponse struct {
	CompetitionResponse
	Stats CompetitionStats `json:"stats"`
}
