package main

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquaria-id/contest-api/internal/types"
)

func (s *ServerTestSuite) createCompetition(body map[string]any) types.CompetitionResponse {
	r := s.do(http.MethodPost, "/competitions/", s.token(admin), body)
	s.Require().Equal(http.StatusCreated, r.code, string(r.body))
	return decode[types.CompetitionResponse](s.T(), r)
}

func (s *ServerTestSuite) Test_Health() {
	r := s.do(http.MethodGet, "/health/", "", nil)
	s.Equal(http.StatusOK, r.code)
}

func (s *ServerTestSuite) Test_CreateCompetitionAuth() {
	body := map[string]any{"title": "Lomba Cupang"}

	tests := []struct {
		name  string
		token string
		code  int
	}{
		{name: "missing token", token: "", code: http.StatusUnauthorized},
		{name: "garbage token", token: "not-a-jwt", code: http.StatusUnauthorized},
		{name: "participant", token: s.token(participantA), code: http.StatusForbidden},
		{name: "admin", token: s.token(admin), code: http.StatusCreated},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			r := s.do(http.MethodPost, "/competitions/", tt.token, body)
			s.Equal(tt.code, r.code, string(r.body))
		})
	}
}

func (s *ServerTestSuite) Test_CreateCompetitionValidation() {
	tests := []struct {
		name  string
		body  any
		field string
	}{
		{name: "missing title", body: map[string]any{"description": "x"}, field: "title"},
		{name: "blank title", body: map[string]any{"title": "   "}, field: "title"},
		{name: "negative capacity", body: map[string]any{"title": "t", "maxParticipants": -1}, field: "maxParticipants"},
		{name: "unknown status", body: map[string]any{"title": "t", "status": "archived"}, field: "status"},
		{
			name: "duplicate form fields",
			body: map[string]any{
				"title":      "t",
				"formFields": []map[string]any{{"name": "x"}, {"name": "x"}},
			},
			field: "formFields",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			r := s.do(http.MethodPost, "/competitions/", s.token(admin), tt.body)
			s.Require().Equal(http.StatusBadRequest, r.code, string(r.body))

			e := decode[types.Error](s.T(), r)
			s.Require().NotNil(e.Fields, "expected field errors")
			s.Contains(*e.Fields, tt.field)
		})
	}

	s.Run("malformed json", func() {
		r := s.do(http.MethodPost, "/competitions/", s.token(admin), `{"title":`)
		s.Equal(http.StatusBadRequest, r.code)
	})
}

func (s *ServerTestSuite) Test_CompetitionLifecycle() {
	draft := s.createCompetition(map[string]any{"title": "Kontes Koi"})
	s.Equal(types.CompetitionStatusDraft, draft.Status, "status defaults to draft")
	s.Empty(draft.Requirements)
	s.Empty(draft.FormFields)

	open := s.createCompetition(map[string]any{
		"title":           "Lomba Arwana",
		"status":          "open",
		"maxParticipants": 10,
		"requirements":    []string{"ikan sehat"},
	})

	s.Run("list all", func() {
		r := s.do(http.MethodGet, "/competitions/", "", nil)
		s.Require().Equal(http.StatusOK, r.code)

		list := decode[[]types.CompetitionResponse](s.T(), r)
		ids := []int64{}
		for _, c := range list {
			ids = append(ids, c.ID)
		}
		s.ElementsMatch([]int64{draft.ID, open.ID}, ids)
	})

	s.Run("list open", func() {
		r := s.do(http.MethodGet, "/competitions/open/", "", nil)
		s.Require().Equal(http.StatusOK, r.code)

		list := decode[[]types.CompetitionResponse](s.T(), r)
		s.Require().Len(list, 1)
		s.Equal(open.ID, list[0].ID)
	})

	s.Run("detail", func() {
		r := s.do(http.MethodGet, competitionPath(open.ID, ""), "", nil)
		s.Require().Equal(http.StatusOK, r.code)

		detail := decode[types.CompetitionDetailResponse](s.T(), r)
		s.Equal("Lomba Arwana", detail.Title)
		s.Equal([]string{"ikan sehat"}, detail.Requirements)
		s.Equal(types.CompetitionStats{}, detail.Stats)
	})

	s.Run("detail unknown", func() {
		r := s.do(http.MethodGet, competitionPath(999999, ""), "", nil)
		s.Equal(http.StatusNotFound, r.code)
	})

	s.Run("detail bad id", func() {
		r := s.do(http.MethodGet, "/competitions/abc/", "", nil)
		s.Equal(http.StatusBadRequest, r.code)
	})

	s.Run("partial update", func() {
		r := s.do(http.MethodPut, competitionPath(open.ID, ""), s.token(admin), map[string]any{
			"description":     "ukuran bebas",
			"maxParticipants": nil,
		})
		s.Require().Equal(http.StatusOK, r.code, string(r.body))

		updated := decode[types.CompetitionResponse](s.T(), r)
		s.Equal("Lomba Arwana", updated.Title, "untouched fields are kept")
		s.Equal("ukuran bebas", updated.Description)
		s.Nil(updated.MaxParticipants, "explicit null clears capacity")
		s.Equal(types.CompetitionStatusOpen, updated.Status)
	})

	s.Run("update rejects blank title", func() {
		r := s.do(http.MethodPut, competitionPath(open.ID, ""), s.token(admin), map[string]any{"title": ""})
		s.Equal(http.StatusBadRequest, r.code, string(r.body))
	})

	s.Run("update unknown", func() {
		r := s.do(http.MethodPut, competitionPath(999999, ""), s.token(admin), map[string]any{"title": "x"})
		s.Equal(http.StatusNotFound, r.code)
	})

	s.Run("update as participant", func() {
		r := s.do(http.MethodPut, competitionPath(open.ID, ""), s.token(participantA), map[string]any{"title": "x"})
		s.Equal(http.StatusForbidden, r.code)
	})

	s.Run("delete", func() {
		r := s.do(http.MethodDelete, competitionPath(draft.ID, ""), s.token(admin), nil)
		s.Require().Equal(http.StatusNoContent, r.code, string(r.body))

		r = s.do(http.MethodGet, competitionPath(draft.ID, ""), "", nil)
		s.Equal(http.StatusNotFound, r.code)

		r = s.do(http.MethodDelete, competitionPath(draft.ID, ""), s.token(admin), nil)
		s.Equal(http.StatusNotFound, r.code)
	})
}

func (s *ServerTestSuite) Test_DeleteCascades() {
	competition := s.createCompetition(map[string]any{"title": "Kontes Louhan", "status": "open"})

	r := s.do(http.MethodPost, competitionPath(competition.ID, "register/"), s.token(participantA),
		map[string]any{"answers": map[string]any{}})
	s.Require().Equal(http.StatusCreated, r.code, string(r.body))

	r = s.do(http.MethodDelete, competitionPath(competition.ID, ""), s.token(admin), nil)
	s.Require().Equal(http.StatusNoContent, r.code)

	r = s.do(http.MethodGet, "/competitions/me/", s.token(participantA), nil)
	require.Equal(s.T(), http.StatusOK, r.code)
	assert.Empty(s.T(), decode[[]types.MyRegistrationEntry](s.T(), r))
}
