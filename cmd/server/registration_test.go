package main

import (
	"net/http"

	"github.com/aquaria-id/contest-api/internal/identity"
	"github.com/aquaria-id/contest-api/internal/types"
)

func (s *ServerTestSuite) register(competitionID int64, who identity.Identity, answers map[string]any) resp {
	return s.do(
		http.MethodPost,
		competitionPath(competitionID, "register/"),
		s.token(who),
		map[string]any{"answers": answers},
	)
}

func (s *ServerTestSuite) Test_RegisterUntilFull() {
	competition := s.createCompetition(map[string]any{
		"title":           "Lomba Cupang Halfmoon",
		"status":          "open",
		"maxParticipants": 2,
		"formFields":      []map[string]any{{"name": "x", "required": true}},
	})

	r := s.register(competition.ID, participantA, map[string]any{"x": "1"})
	s.Require().Equal(http.StatusCreated, r.code, string(r.body))
	first := decode[types.RegistrationResponse](s.T(), r)
	s.Equal(types.RegistrationStatusPending, first.Status)
	s.Equal(participantA.ID, first.ParticipantID)

	r = s.register(competition.ID, participantB, map[string]any{"x": "2"})
	s.Require().Equal(http.StatusCreated, r.code, string(r.body))
	s.Equal(types.RegistrationStatusPending, decode[types.RegistrationResponse](s.T(), r).Status)

	r = s.register(competition.ID, participantC, map[string]any{"x": "3"})
	s.Require().Equal(http.StatusBadRequest, r.code, string(r.body))
	s.Equal("competition is full", decode[types.Error](s.T(), r).Message)

	r = s.register(competition.ID, participantA, map[string]any{"x": "1b"})
	s.Require().Equal(http.StatusOK, r.code, string(r.body))
	again := decode[types.RegistrationResponse](s.T(), r)
	s.Equal(first.ID, again.ID, "re-registering keeps the same registration")
	s.Equal(map[string]any{"x": "1b"}, again.Answers)

	r = s.do(http.MethodGet, competitionPath(competition.ID, ""), "", nil)
	s.Require().Equal(http.StatusOK, r.code)
	stats := decode[types.CompetitionDetailResponse](s.T(), r).Stats
	s.Equal(int64(2), stats.Total)
	s.Equal(int64(2), stats.Pending)

	r = s.do(http.MethodGet, competitionPath(competition.ID, "registrations/"), s.token(admin), nil)
	s.Require().Equal(http.StatusOK, r.code)
	entries := decode[[]types.RegistrationEntry](s.T(), r)
	s.Require().Len(entries, 2)
	for _, e := range entries {
		if e.ParticipantID == participantA.ID {
			s.Equal(map[string]any{"x": "1b"}, e.Answers)
			s.Equal(participantA.Name, e.Participant.Name)
			s.Equal(participantA.Email, e.Participant.Email)
		}
		s.Nil(e.CurrentScore)
	}
}

func (s *ServerTestSuite) Test_RegisterRefused() {
	open := s.createCompetition(map[string]any{
		"title":  "Kontes Guppy",
		"status": "open",
		"formFields": []map[string]any{
			{"name": "nama_ikan", "required": true},
			{"name": "catatan"},
		},
	})
	draft := s.createCompetition(map[string]any{"title": "Kontes Molly"})

	s.Run("missing required answer", func() {
		r := s.register(open.ID, participantA, map[string]any{"catatan": "x"})
		s.Require().Equal(http.StatusBadRequest, r.code, string(r.body))

		e := decode[types.Error](s.T(), r)
		s.Require().NotNil(e.Fields)
		s.Equal(map[string]string{"nama_ikan": "required"}, *e.Fields)
	})

	s.Run("blank required answer", func() {
		r := s.register(open.ID, participantA, map[string]any{"nama_ikan": "  "})
		s.Equal(http.StatusBadRequest, r.code, string(r.body))
	})

	s.Run("missing answers", func() {
		r := s.do(http.MethodPost, competitionPath(open.ID, "register/"), s.token(participantA), map[string]any{})
		s.Equal(http.StatusBadRequest, r.code, string(r.body))
	})

	s.Run("not open", func() {
		r := s.register(draft.ID, participantA, map[string]any{})
		s.Require().Equal(http.StatusBadRequest, r.code, string(r.body))
		s.Equal("competition is not open for registration", decode[types.Error](s.T(), r).Message)
	})

	s.Run("unknown competition", func() {
		r := s.register(999999, participantA, map[string]any{})
		s.Equal(http.StatusNotFound, r.code, string(r.body))
	})

	s.Run("unauthenticated", func() {
		r := s.do(http.MethodPost, competitionPath(open.ID, "register/"), "",
			map[string]any{"answers": map[string]any{"nama_ikan": "Ryu"}})
		s.Equal(http.StatusUnauthorized, r.code)
	})

	s.Run("unknown answer keys are kept", func() {
		r := s.register(open.ID, participantB, map[string]any{"nama_ikan": "Ryu", "warna": "merah"})
		s.Require().Equal(http.StatusCreated, r.code, string(r.body))
		s.Equal("merah", decode[types.RegistrationResponse](s.T(), r).Answers["warna"])
	})
}

func (s *ServerTestSuite) Test_RegistrationStatus() {
	competition := s.createCompetition(map[string]any{"title": "Kontes Discus", "status": "open"})

	r := s.register(competition.ID, participantA, map[string]any{})
	s.Require().Equal(http.StatusCreated, r.code, string(r.body))
	registration := decode[types.RegistrationResponse](s.T(), r)

	statusPath := registrationPath(competition.ID, registration.ID, "status/")

	tests := []struct {
		name   string
		token  string
		body   any
		code   int
		status types.RegistrationStatus
	}{
		{name: "participant", token: s.token(participantA), body: map[string]any{"status": "approved"}, code: http.StatusForbidden},
		{name: "unknown status", token: s.token(admin), body: map[string]any{"status": "winner"}, code: http.StatusBadRequest},
		{name: "approve", token: s.token(admin), body: map[string]any{"status": "approved"}, code: http.StatusOK, status: types.RegistrationStatusApproved},
		{name: "reject", token: s.token(admin), body: map[string]any{"status": "rejected"}, code: http.StatusOK, status: types.RegistrationStatusRejected},
		{name: "back to pending", token: s.token(admin), body: map[string]any{"status": "pending"}, code: http.StatusOK, status: types.RegistrationStatusPending},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			r := s.do(http.MethodPut, statusPath, tt.token, tt.body)
			s.Require().Equal(tt.code, r.code, string(r.body))
			if tt.code == http.StatusOK {
				s.Equal(tt.status, decode[types.RegistrationResponse](s.T(), r).Status)
			}
		})
	}

	s.Run("registration from another competition", func() {
		other := s.createCompetition(map[string]any{"title": "Kontes Oscar"})
		r := s.do(http.MethodPut, registrationPath(other.ID, registration.ID, "status/"), s.token(admin),
			map[string]any{"status": "approved"})
		s.Equal(http.StatusNotFound, r.code)
	})

	s.Run("unknown competition", func() {
		r := s.do(http.MethodPut, registrationPath(999999, registration.ID, "status/"), s.token(admin),
			map[string]any{"status": "approved"})
		s.Equal(http.StatusNotFound, r.code)
	})
}

func (s *ServerTestSuite) Test_RegistrationRank() {
	competition := s.createCompetition(map[string]any{"title": "Kontes Channa", "status": "open"})

	r := s.register(competition.ID, participantA, map[string]any{})
	s.Require().Equal(http.StatusCreated, r.code, string(r.body))
	registration := decode[types.RegistrationResponse](s.T(), r)

	rankPath := registrationPath(competition.ID, registration.ID, "rank/")

	s.Run("set", func() {
		r := s.do(http.MethodPut, rankPath, s.token(admin), map[string]any{"ranking": 1, "finalPosition": "Juara 1"})
		s.Require().Equal(http.StatusOK, r.code, string(r.body))

		ranked := decode[types.RegistrationResponse](s.T(), r)
		s.Require().NotNil(ranked.Ranking)
		s.Equal(1, *ranked.Ranking)
		s.Require().NotNil(ranked.FinalPosition)
		s.Equal("Juara 1", *ranked.FinalPosition)

		r = s.do(http.MethodGet, competitionPath(competition.ID, ""), "", nil)
		s.Require().Equal(http.StatusOK, r.code)
		stats := decode[types.CompetitionDetailResponse](s.T(), r).Stats
		s.Require().NotNil(stats.MaxRank)
		s.Equal(1, *stats.MaxRank)
	})

	s.Run("partial keeps final position", func() {
		r := s.do(http.MethodPut, rankPath, s.token(admin), map[string]any{"ranking": 3})
		s.Require().Equal(http.StatusOK, r.code, string(r.body))

		ranked := decode[types.RegistrationResponse](s.T(), r)
		s.Equal(3, *ranked.Ranking)
		s.Require().NotNil(ranked.FinalPosition)
		s.Equal("Juara 1", *ranked.FinalPosition)
	})

	s.Run("zero rejected", func() {
		r := s.do(http.MethodPut, rankPath, s.token(admin), map[string]any{"ranking": 0})
		s.Equal(http.StatusBadRequest, r.code, string(r.body))
	})

	s.Run("clear", func() {
		r := s.do(http.MethodPut, rankPath, s.token(admin), map[string]any{"ranking": nil, "finalPosition": nil})
		s.Require().Equal(http.StatusOK, r.code, string(r.body))

		ranked := decode[types.RegistrationResponse](s.T(), r)
		s.Nil(ranked.Ranking)
		s.Nil(ranked.FinalPosition)
	})
}

func (s *ServerTestSuite) Test_MyRegistrations() {
	first := s.createCompetition(map[string]any{"title": "Kontes Koki", "status": "open"})
	second := s.createCompetition(map[string]any{"title": "Kontes Manfish", "status": "open"})

	s.Require().Equal(http.StatusCreated, s.register(first.ID, participantA, map[string]any{}).code)
	s.Require().Equal(http.StatusCreated, s.register(second.ID, participantA, map[string]any{}).code)
	s.Require().Equal(http.StatusCreated, s.register(second.ID, participantB, map[string]any{}).code)

	r := s.do(http.MethodGet, "/competitions/me/", s.token(participantA), nil)
	s.Require().Equal(http.StatusOK, r.code, string(r.body))

	entries := decode[[]types.MyRegistrationEntry](s.T(), r)
	s.Require().Len(entries, 2)

	titles := []string{}
	for _, e := range entries {
		s.Equal(participantA.ID, e.ParticipantID)
		titles = append(titles, e.Competition.Title)
	}
	s.ElementsMatch([]string{"Kontes Koki", "Kontes Manfish"}, titles)

	r = s.do(http.MethodGet, "/competitions/me/", s.token(participantC), nil)
	s.Require().Equal(http.StatusOK, r.code)
	s.Empty(decode[[]types.MyRegistrationEntry](s.T(), r))

	r = s.do(http.MethodGet, "/competitions/me/", "", nil)
	s.Equal(http.StatusUnauthorized, r.code)
}
