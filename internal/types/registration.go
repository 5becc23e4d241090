package types

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected:
		return true
	default:
		return false
	}
}

// Values must be strings, numbers or null
type RegistrationSubmission struct {
	Answers map[string]any `json:"answers" validate:"required" swaggertype:"object"`
}

type RegistrationStatusUpdate struct {
	Status RegistrationStatus `json:"status" validate:"required,eq=pending|eq=approved|eq=rejected"`
}

// Either field may be omitted to leave it untouched, or null to clear it
type RankUpdate struct {
	Ranking       Optional[int]    `json:"ranking"       swaggertype:"integer"`
	FinalPosition Optional[string] `json:"finalPosition" swaggertype:"string"`
}

type RegistrationResponse struct {
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Answers       map[string]any     `json:"answers"       swaggertype:"object"`
	Ranking       *int               `json:"ranking"`
	FinalPosition *string            `json:"finalPosition"`
	Status        RegistrationStatus `json:"status"`
	ID            int64              `json:"id"`
	CompetitionID int64              `json:"competitionId"`
	ParticipantID int64              `json:"participantId"`
}

type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

// Row of the administrator registration listing
type RegistrationEntry struct {
	CurrentScore *ScoreResponse `json:"currentScore"`
	Participant  Participant    `json:"participant"`
	RegistrationResponse
}

type CompetitionSummary struct {
	StartAt     *time.Time        `json:"startAt"`
	EndAt       *time.Time        `json:"endAt"`
	PosterImage *string           `json:"posterImage"`
	Title       string            `json:"title"`
	Status      CompetitionStatus `json:"status"`
	ID          int64             `json:"id"`
}

// Row of a participant's own registration listing
type MyRegistrationEntry struct {
	CurrentScore *ScoreResponse     `json:"currentScore"`
	Competition  CompetitionSummary `json:"competition"`
	RegistrationResponse
}
