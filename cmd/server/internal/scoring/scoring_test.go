package scoring

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

func ptr[T any](v T) *T {
	return &v
}

type ScoringTestSuite struct {
	suite.Suite
	database     *testdb.Database
	tx           *gorm.DB
	client       *Client
	competition  *models.Competition
	registration *models.Registration
}

func TestScoringTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringTestSuite))
}

func (s *ScoringTestSuite) SetupSuite() {
	database, err := testdb.Start(context.Background())
	s.Require().NoError(err, "failed to start database")
	s.database = database
}

func (s *ScoringTestSuite) TearDownSuite() {
	s.Require().NoError(s.database.Terminate(), "failed to terminate container")
}

func (s *ScoringTestSuite) SetupTest() {
	ctx := context.Background()
	s.tx = s.database.DB.Begin()
	s.client = Create(s.tx)

	_, err := testdb.SeedAccount(ctx, s.tx, 1, identity.RoleParticipant)
	s.Require().NoError(err)
	for _, judge := range []int64{10, 11} {
		_, err = testdb.SeedAccount(ctx, s.tx, judge, identity.RoleAdmin)
		s.Require().NoError(err)
	}

	s.competition = &models.Competition{Title: "Kontes Cupang", Status: types.CompetitionStatusOpen}
	s.Require().NoError(s.tx.Create(s.competition).Error)

	s.registration = &models.Registration{
		CompetitionID: s.competition.ID,
		ParticipantID: 1,
		Status:        types.RegistrationStatusApproved,
	}
	s.Require().NoError(s.tx.Create(s.registration).Error)
}

func (s *ScoringTestSuite) TearDownTest() {
	s.tx.Rollback()
}

func (s *ScoringTestSuite) submit(judge int64, total float64, at time.Time) *models.Score {
	score, err := s.client.Submit(
		context.Background(),
		s.competition.ID,
		s.registration.ID,
		judge,
		types.ScoreSubmission{
			Scores:     map[string]any{"warna": total / 2, "sirip": total / 2},
			TotalScore: ptr(total),
			Comment:    "sirip simetris",
		},
		at,
	)
	s.Require().NoError(err)
	return score
}

func (s *ScoringTestSuite) TestCurrentUnscored() {
	score, err := s.client.Current(context.Background(), s.registration.ID)
	s.Require().NoError(err)
	s.Nil(score)
}

func (s *ScoringTestSuite) TestLatestWins() {
	ctx := context.Background()
	start := time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)

	s.submit(10, 80, start)
	s.submit(11, 95, start.Add(time.Minute))
	latest := s.submit(10, 70, start.Add(2*time.Minute))

	current, err := s.client.Current(ctx, s.registration.ID)
	s.Require().NoError(err)
	s.Require().NotNil(current)
	s.Equal(latest.ID, current.ID)
	s.Equal(70.0, current.TotalScore.V, "latest wins regardless of judge or value")

	history, err := s.client.History(ctx, s.competition.ID, s.registration.ID)
	s.Require().NoError(err)
	s.Len(history, 3, "scores are never overwritten")
	s.Equal(70.0, history[0].TotalScore.V)
	s.Equal(95.0, history[1].TotalScore.V)
	s.Equal(80.0, history[2].TotalScore.V)
}

func (s *ScoringTestSuite) TestSameTimestampLaterInsertWins() {
	at := time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)

	s.submit(10, 60, at)
	second := s.submit(11, 65, at)

	current, err := s.client.Current(context.Background(), s.registration.ID)
	s.Require().NoError(err)
	s.Equal(second.ID, current.ID)
}

func (s *ScoringTestSuite) TestSubmitWrongCompetition() {
	other := &models.Competition{Title: "Kontes Koi", Status: types.CompetitionStatusOpen}
	s.Require().NoError(s.tx.Create(other).Error)

	_, err := s.client.Submit(
		context.Background(),
		other.ID,
		s.registration.ID,
		10,
		types.ScoreSubmission{Scores: map[string]any{"warna": 8.0}},
		time.Now(),
	)
	s.True(errors.Is(err, srverr.ErrNotFound))

	_, err = s.client.History(context.Background(), other.ID, s.registration.ID)
	s.True(errors.Is(err, srverr.ErrNotFound))
}

func (s *ScoringTestSuite) TestSubmitOpaqueSheets() {
	tests := []struct {
		name       string
		submission types.ScoreSubmission
		stored     map[string]any
	}{
		{
			name:       "total only",
			submission: types.ScoreSubmission{TotalScore: ptr(42.0), Comment: "tanpa rincian"},
			stored:     map[string]any{},
		},
		{
			name:       "empty sheet",
			submission: types.ScoreSubmission{Scores: map[string]any{}},
			stored:     map[string]any{},
		},
		{
			name: "nested criteria",
			submission: types.ScoreSubmission{Scores: map[string]any{
				"warna": map[string]any{"nilai": 8.0, "catatan": "cerah"},
			}},
			stored: map[string]any{"warna": map[string]any{"nilai": 8.0, "catatan": "cerah"}},
		},
		{
			name:       "boolean criteria",
			submission: types.ScoreSubmission{Scores: map[string]any{"lolos": true}},
			stored:     map[string]any{"lolos": true},
		},
		{
			name:       "list criteria",
			submission: types.ScoreSubmission{Scores: map[string]any{"warna": []any{1.0, 2.0}}},
			stored:     map[string]any{"warna": []any{1.0, 2.0}},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			score, err := s.client.Submit(
				context.Background(),
				s.competition.ID,
				s.registration.ID,
				10,
				tt.submission,
				time.Now(),
			)
			s.Require().NoError(err)

			current, err := s.client.Current(context.Background(), s.registration.ID)
			s.Require().NoError(err)
			s.Equal(score.ID, current.ID)
			s.Equal(tt.stored, map[string]any(current.Scores))
		})
	}
}

func (s *ScoringTestSuite) TestScoresDeletedWithCompetition() {
	ctx := context.Background()
	s.submit(10, 80, time.Now())

	s.Require().NoError(s.tx.Delete(&models.Competition{}, s.competition.ID).Error)

	exists, err := models.Exists[models.Score](ctx, s.tx, "registration_id = ?", s.registration.ID)
	s.Require().NoError(err)
	s.False(exists)
}
