package main

import (
	"net/http"

	"github.com/aquaria-id/contest-api/internal/types"
)

func (s *ServerTestSuite) Test_Scores() {
	competition := s.createCompetition(map[string]any{"title": "Kontes Cupang Plakat", "status": "open"})

	r := s.register(competition.ID, participantA, map[string]any{})
	s.Require().Equal(http.StatusCreated, r.code, string(r.body))
	registration := decode[types.RegistrationResponse](s.T(), r)

	scoresPath := registrationPath(competition.ID, registration.ID, "scores/")

	s.Run("history starts empty", func() {
		r := s.do(http.MethodGet, scoresPath, s.token(admin), nil)
		s.Require().Equal(http.StatusOK, r.code, string(r.body))
		s.Empty(decode[[]types.ScoreResponse](s.T(), r))
	})

	s.Run("participant cannot score", func() {
		r := s.do(http.MethodPost, scoresPath, s.token(participantA), map[string]any{"scores": map[string]any{"warna": 8}})
		s.Equal(http.StatusForbidden, r.code)
	})


	s.Run("unknown registration", func() {
		r := s.do(http.MethodPost, registrationPath(competition.ID, 999999, "scores/"), s.token(admin),
			map[string]any{"scores": map[string]any{"warna": 8}})
		s.Equal(http.StatusNotFound, r.code, string(r.body))
	})

	s.Run("sheets are opaque", func() {
		for name, body := range map[string]map[string]any{
			"total only": {"totalScore": 12, "comment": "tanpa rincian"},
			"nested":     {"scores": map[string]any{"warna": map[string]any{"nilai": 8, "catatan": "cerah"}}},
			"boolean":    {"scores": map[string]any{"lolos": true}},
		} {
			r := s.do(http.MethodPost, scoresPath, s.token(admin), body)
			s.Equal(http.StatusCreated, r.code, "%s: %s", name, string(r.body))
		}
	})

	s.Run("latest submission wins", func() {
		r := s.do(http.MethodPost, scoresPath, s.token(admin), map[string]any{
			"scores":     map[string]any{"warna": 7, "sirip": 8},
			"totalScore": 15,
			"comment":    "bagus",
		})
		s.Require().Equal(http.StatusCreated, r.code, string(r.body))
		first := decode[types.ScoreResponse](s.T(), r)
		s.Equal(registration.ID, first.RegistrationID)
		s.Equal(admin.ID, first.JudgeID)
		s.Require().NotNil(first.TotalScore)
		s.InDelta(15.0, *first.TotalScore, 0.0001)

		r = s.do(http.MethodPost, scoresPath, s.token(admin), map[string]any{
			"scores":  map[string]any{"warna": 9, "sirip": 9},
			"comment": "revisi",
		})
		s.Require().Equal(http.StatusCreated, r.code, string(r.body))
		second := decode[types.ScoreResponse](s.T(), r)
		s.Nil(second.TotalScore, "total is optional")

		r = s.do(http.MethodGet, scoresPath, s.token(admin), nil)
		s.Require().Equal(http.StatusOK, r.code, string(r.body))
		history := decode[[]types.ScoreResponse](s.T(), r)
		s.Require().Len(history, 5, "earlier opaque sheets stay in history")
		s.Equal(second.ID, history[0].ID, "history is newest first")
		s.Equal(first.ID, history[1].ID)

		r = s.do(http.MethodGet, competitionPath(competition.ID, "registrations/"), s.token(admin), nil)
		s.Require().Equal(http.StatusOK, r.code)
		entries := decode[[]types.RegistrationEntry](s.T(), r)
		s.Require().Len(entries, 1)
		s.Require().NotNil(entries[0].CurrentScore)
		s.Equal(second.ID, entries[0].CurrentScore.ID)
		s.Equal("revisi", entries[0].CurrentScore.Comment)

		r = s.do(http.MethodGet, "/competitions/me/", s.token(participantA), nil)
		s.Require().Equal(http.StatusOK, r.code)
		mine := decode[[]types.MyRegistrationEntry](s.T(), r)
		s.Require().Len(mine, 1)
		s.Require().NotNil(mine[0].CurrentScore)
		s.Equal(second.ID, mine[0].CurrentScore.ID)
	})

	s.Run("registration from another competition", func() {
		other := s.createCompetition(map[string]any{"title": "Kontes Rainbow"})
		r := s.do(http.MethodGet, registrationPath(other.ID, registration.ID, "scores/"), s.token(admin), nil)
		s.Equal(http.StatusNotFound, r.code)
	})
}
