package audit

import (
	"github.com/aquaria-id/contest-api/internal/types"
)

var schemaVersion = "0.2.0"
var logContext = "audit"

type Disposition string

const (
	DispositionNeutral Disposition = "neutral"
	DispositionGood    Disposition = "good"
	DispositionBad     Disposition = "bad"
)

type FileArchivedEntity string

const (
	EntityScore FileArchivedEntity = "score"
)

type EventType string

const (
	EvtCompetitionCreated        EventType = "competition_created"
	EvtCompetitionUpdated        EventType = "competition_updated"
	EvtCompetitionDeleted        EventType = "competition_deleted"
	EvtRegistrationSubmitted     EventType = "registration_submitted"
	EvtRegistrationDenied        EventType = "registration_denied"
	EvtRegistrationStatusChanged EventType = "registration_status_changed"
	EvtRankAssigned              EventType = "rank_assigned"
	EvtScoreSubmitted            EventType = "score_submitted"
	EvtFileArchived              EventType = "file_archived"
)

type Message struct {
	CompetitionID *int64      `json:"competition_id"`
	ActorID       *int64      `json:"actor_id"`
	LogContext    string      `json:"log_context" validate:"required"`
	SchemaVersion string      `json:"version"     validate:"required"`
	Disposition   Disposition `json:"disposition" validate:"required"`
	Type          EventType   `json:"event_type"  validate:"required"`

	Timestamp types.UnixMilli `json:"timestamp" validate:"required"`
}

type CompetitionCreatedEvent struct {
	Title  string                  `json:"title"  validate:"required"`
	Status types.CompetitionStatus `json:"status" validate:"required"`
}

type CompetitionCreated struct {
	Event CompetitionCreatedEvent `json:"event" validate:"required"`
	Message
}

type CompetitionUpdatedEvent struct {
	// json names of the fields present in the update
	Fields []string                `json:"fields"`
	Status types.CompetitionStatus `json:"status" validate:"required"`
}

type CompetitionUpdated struct {
	Event CompetitionUpdatedEvent `json:"event" validate:"required"`
	Message
}

type CompetitionDeletedEvent struct{}

type CompetitionDeleted struct {
	Event CompetitionDeletedEvent `json:"event"`
	Message
}

type RegistrationSubmittedEvent struct {
	Status         types.RegistrationStatus `json:"status"          validate:"required"`
	RegistrationID int64                    `json:"registration_id" validate:"required"`
	Created        bool                     `json:"created"`
}

type RegistrationSubmitted struct {
	Event RegistrationSubmittedEvent `json:"event" validate:"required"`
	Message
}

type RegistrationDeniedEvent struct {
	Reason string `json:"reason" validate:"required"`
}

type RegistrationDenied struct {
	Event RegistrationDeniedEvent `json:"event" validate:"required"`
	Message
}

type RegistrationStatusChangedEvent struct {
	From           types.RegistrationStatus `json:"from"            validate:"required"`
	To             types.RegistrationStatus `json:"to"              validate:"required"`
	RegistrationID int64                    `json:"registration_id" validate:"required"`
}

type RegistrationStatusChanged struct {
	Event RegistrationStatusChangedEvent `json:"event" validate:"required"`
	Message
}

type RankAssignedEvent struct {
	Ranking        *int    `json:"ranking"`
	FinalPosition  *string `json:"final_position"`
	RegistrationID int64   `json:"registration_id" validate:"required"`
}

type RankAssigned struct {
	Event RankAssignedEvent `json:"event" validate:"required"`
	Message
}

type ScoreSubmittedEvent struct {
	TotalScore     *float64 `json:"total_score"`
	ScoreID        int64    `json:"score_id"        validate:"required"`
	RegistrationID int64    `json:"registration_id" validate:"required"`
}

type ScoreSubmitted struct {
	Event ScoreSubmittedEvent `json:"event" validate:"required"`
	Message
}

type FileArchivedEvent struct {
	BucketName   string             `json:"bucket_name"   validate:"required"`
	ObjectName   string             `json:"object_name"   validate:"required"`
	FileArchived types.ArchivedFile `json:"file_archived" validate:"required"`
	Entity       FileArchivedEntity `json:"entity"        validate:"required"`
	EntityID     string             `json:"entity_id"     validate:"required"`
}

type FileArchived struct {
	Event FileArchivedEvent `json:"event" validate:"required"`
	Message
}
