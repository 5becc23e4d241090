package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/types"
)

type Context struct {
	CompetitionID *int64
	ActorID       *int64
}

func dispForStatus(status types.RegistrationStatus) Disposition {
	switch status {
	case types.RegistrationStatusApproved:
		return DispositionGood
	case types.RegistrationStatusRejected:
		return DispositionBad
	default:
		return DispositionNeutral
	}
}

func message(c Context, evt EventType, disposition Disposition) Message {
	return Message{
		CompetitionID: c.CompetitionID,
		ActorID:       c.ActorID,
		LogContext:    logContext,
		SchemaVersion: schemaVersion,
		Disposition:   disposition,
		Type:          evt,
		Timestamp:     types.UnixMilli(time.Now().UTC().UnixMilli()),
	}
}

func emit(event any, evt EventType, attrs ...any) {
	evtStr, err := json.Marshal(event)
	if err != nil {
		logger.Logger.Error(fmt.Sprintf("could not serialize %s event", evt), attrs...)
		return
	}

	// TODO: should this go to stderr?
	fmt.Println(string(evtStr))
}

func LogCompetitionCreated(c Context, title string, status types.CompetitionStatus) {
	event := CompetitionCreated{}
	event.Message = message(c, EvtCompetitionCreated, DispositionNeutral)

	event.Event.Title = title
	event.Event.Status = status

	emit(event, event.Type, "title", title, "status", status)
}

func LogCompetitionUpdated(c Context, fields []string, status types.CompetitionStatus) {
	event := CompetitionUpdated{}
	event.Message = message(c, EvtCompetitionUpdated, DispositionNeutral)

	event.Event.Fields = fields
	event.Event.Status = status

	emit(event, event.Type, "fields", fields, "status", status)
}

func LogCompetitionDeleted(c Context) {
	event := CompetitionDeleted{}
	event.Message = message(c, EvtCompetitionDeleted, DispositionNeutral)

	emit(event, event.Type)
}

func LogRegistrationSubmitted(
	c Context,
	registrationID int64,
	status types.RegistrationStatus,
	created bool,
) {
	event := RegistrationSubmitted{}
	event.Message = message(c, EvtRegistrationSubmitted, DispositionNeutral)

	event.Event.RegistrationID = registrationID
	event.Event.Status = status
	event.Event.Created = created

	emit(event, event.Type,
		"registrationID", registrationID,
		"status", status,
		"created", created,
	)
}

func LogRegistrationDenied(c Context, reason string) {
	event := RegistrationDenied{}
	event.Message = message(c, EvtRegistrationDenied, DispositionBad)

	event.Event.Reason = reason

	emit(event, event.Type, "reason", reason)
}

func LogRegistrationStatusChanged(
	c Context,
	registrationID int64,
	from types.RegistrationStatus,
	to types.RegistrationStatus,
) {
	event := RegistrationStatusChanged{}
	event.Message = message(c, EvtRegistrationStatusChanged, dispForStatus(to))

	event.Event.RegistrationID = registrationID
	event.Event.From = from
	event.Event.To = to

	emit(event, event.Type, "registrationID", registrationID, "from", from, "to", to)
}

func LogRankAssigned(c Context, registrationID int64, ranking *int, finalPosition *string) {
	event := RankAssigned{}
	event.Message = message(c, EvtRankAssigned, DispositionNeutral)

	event.Event.RegistrationID = registrationID
	event.Event.Ranking = ranking
	event.Event.FinalPosition = finalPosition

	emit(event, event.Type,
		"registrationID", registrationID,
		"ranking", ranking,
		"finalPosition", finalPosition,
	)
}

func LogScoreSubmitted(c Context, registrationID int64, scoreID int64, totalScore *float64) {
	event := ScoreSubmitted{}
	event.Message = message(c, EvtScoreSubmitted, DispositionNeutral)

	event.Event.RegistrationID = registrationID
	event.Event.ScoreID = scoreID
	event.Event.TotalScore = totalScore

	emit(event, event.Type, "registrationID", registrationID, "scoreID", scoreID)
}

func LogFileArchived(
	c Context,
	bucketName string,
	objectName string,
	fileArchived types.ArchivedFile,
	fileArchivedEntity FileArchivedEntity,
	entityID string,
) {
	event := FileArchived{}
	event.Message = message(c, EvtFileArchived, DispositionNeutral)

	event.Event.BucketName = bucketName
	event.Event.ObjectName = objectName
	event.Event.FileArchived = fileArchived
	event.Event.Entity = fileArchivedEntity
	event.Event.EntityID = entityID

	emit(event, event.Type,
		"bucketName", bucketName,
		"objectName", objectName,
		"fileArchived", fileArchived,
		"entity", fileArchivedEntity,
		"entityID", entityID,
	)
}
