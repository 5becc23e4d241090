package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/cmd/server/internal/testdb"
	"github.com/aquaria-id/contest-api/internal/identity"
	"github.com/aquaria-id/contest-api/internal/types"
)

type ReportingTestSuite struct {
	suite.Suite
	database *testdb.Database
	tx       *gorm.DB
	client   *Client
}

func TestReportingTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingTestSuite))
}

func (s *ReportingTestSuite) SetupSuite() {
	database, err := testdb.Start(context.Background())
	s.Require().NoError(err, "failed to start database")
	s.database = database
}

func (s *ReportingTestSuite) TearDownSuite() {
	s.Require().NoError(s.database.Terminate(), "failed to terminate container")
}

func (s *ReportingTestSuite) SetupTest() {
	s.tx = s.database.DB.Begin()
	s.client = Create(s.tx)

	ctx := context.Background()
	for _, id := range []int64{1, 2} {
		_, err := testdb.SeedAccount(ctx, s.tx, id, identity.RoleParticipant)
		s.Require().NoError(err)
	}
	_, err := testdb.SeedAccount(ctx, s.tx, 10, identity.RoleAdmin)
	s.Require().NoError(err)
}

func (s *ReportingTestSuite) TearDownTest() {
	s.tx.Rollback()
}

func (s *ReportingTestSuite) competition(title string) *models.Competition {
	competition := &models.Competition{Title: title, Status: types.CompetitionStatusOpen}
	s.Require().NoError(s.tx.Create(competition).Error)
	return competition
}

func (s *ReportingTestSuite) register(competitionID, participantID int64, at time.Time) *models.Registration {
	registration := &models.Registration{
		CompetitionID: competitionID,
		ParticipantID: participantID,
		Answers:       map[string]any{"nama_ikan": "Si Merah"},
		Model:         models.Model{CreatedAt: at},
	}
	s.Require().NoError(s.tx.Create(registration).Error)
	return registration
}

func (s *ReportingTestSuite) score(registrationID int64, total float64, at time.Time) *models.Score {
	score := &models.Score{
		RegistrationID: registrationID,
		JudgeID:        10,
		Scores:         map[string]any{"warna": total},
		TotalScore:     models.NewNullFromData(total),
		CreatedAt:      at,
	}
	s.Require().NoError(s.tx.Create(score).Error)
	return score
}

func (s *ReportingTestSuite) TestListRegistrations() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	competition := s.competition("Kontes Cupang")

	older := s.register(competition.ID, 1, base)
	newer := s.register(competition.ID, 2, base.Add(time.Hour))

	s.score(older.ID, 70, base.Add(2*time.Hour))
	latest := s.score(older.ID, 88, base.Add(3*time.Hour))

	entries, err := s.client.ListRegistrations(ctx, competition.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	s.Equal(newer.ID, entries[0].ID, "newest registration first")
	s.Nil(entries[0].CurrentScore, "unscored registrations have no current score")
	s.Equal("Peserta 2", entries[0].Participant.Name)
	s.Equal("peserta2@example.com", entries[0].Participant.Email)

	s.Equal(older.ID, entries[1].ID)
	s.Require().NotNil(entries[1].CurrentScore)
	s.Equal(latest.ID, entries[1].CurrentScore.ID)
	s.Equal(88.0, *entries[1].CurrentScore.TotalScore)
	s.Equal(types.RegistrationStatusPending, entries[1].Status)
	s.Equal("Si Merah", entries[1].Answers["nama_ikan"])
}

func (s *ReportingTestSuite) TestListRegistrationsEmpty() {
	competition := s.competition("Kontes Kosong")

	entries, err := s.client.ListRegistrations(context.Background(), competition.ID)
	s.Require().NoError(err)
	s.NotNil(entries)
	s.Empty(entries)
}

func (s *ReportingTestSuite) TestListRegistrationsNotFound() {
	_, err := s.client.ListRegistrations(context.Background(), 999999)
	s.True(errors.Is(err, srverr.ErrNotFound))
}

func (s *ReportingTestSuite) TestMyRegistrations() {
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	betta := s.competition("Kontes Cupang")
	koi := s.competition("Kontes Koi")

	first := s.register(betta.ID, 1, base)
	second := s.register(koi.ID, 1, base.Add(time.Hour))
	s.register(koi.ID, 2, base.Add(2*time.Hour))
	s.score(first.ID, 91, base.Add(3*time.Hour))

	entries, err := s.client.MyRegistrations(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(entries, 2, "only the caller's registrations")

	s.Equal(second.ID, entries[0].ID)
	s.Equal("Kontes Koi", entries[0].Competition.Title)
	s.Equal(koi.ID, entries[0].Competition.ID)
	s.Nil(entries[0].CurrentScore)

	s.Equal(first.ID, entries[1].ID)
	s.Equal(types.CompetitionStatusOpen, entries[1].Competition.Status)
	s.Require().NotNil(entries[1].CurrentScore)
	s.Equal(91.0, *entries[1].CurrentScore.TotalScore)

	none, err := s.client.MyRegistrations(ctx, 10)
	s.Require().NoError(err)
	s.Empty(none)
}
