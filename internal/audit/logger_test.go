package audit

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquaria-id/contest-api/internal/types"
)

func ptr[T any](v T) *T {
	return &v
}

func captureStdout(fn func()) (string, error) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	os.Stdout = w

	fn()

	if err := w.Close(); err != nil {
		return "", err
	}
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, r); err != nil {
		return "", err
	}

	if err := r.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

var ctx = Context{
	CompetitionID: ptr(int64(7)),
	ActorID:       ptr(int64(42)),
}

const tail = `"competition_id":7,"actor_id":42,"log_context":"audit","version":"\d\.\d\.\d",`

func TestLogFileArchived(t *testing.T) {
	got, err := captureStdout(func() {
		LogFileArchived(ctx, "bucket", "object", types.FileScoreSheet, EntityScore, "9")
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		`{"event":{"bucket_name":"bucket","object_name":"object","file_archived":"score_sheet","entity":"score","entity_id":"9"},` + tail + `"disposition":"neutral","event_type":"file_archived","timestamp":\d+}`,
	)
	assert.Regexp(t, expect, got)
}

func TestLogCompetitionCreated(t *testing.T) {
	got, err := captureStdout(func() {
		LogCompetitionCreated(ctx, "Kontes Cupang", types.CompetitionStatusDraft)
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		`{"event":{"title":"Kontes Cupang","status":"draft"},` + tail + `"disposition":"neutral","event_type":"competition_created","timestamp":\d+}`,
	)
	assert.Regexp(t, expect, got)
}

func TestLogCompetitionUpdated(t *testing.T) {
	got, err := captureStdout(func() {
		LogCompetitionUpdated(ctx, []string{"status", "maxParticipants"}, types.CompetitionStatusOpen)
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		`{"event":{"fields":\["status","maxParticipants"\],"status":"open"},` + tail + `"disposition":"neutral","event_type":"competition_updated","timestamp":\d+}`,
	)
	assert.Regexp(t, expect, got)
}

func TestLogCompetitionDeleted(t *testing.T) {
	got, err := captureStdout(func() {
		LogCompetitionDeleted(ctx)
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		`{"event":{},` + tail + `"disposition":"neutral","event_type":"competition_deleted","timestamp":\d+}`,
	)
	assert.Regexp(t, expect, got)
}

func TestLogRegistrationSubmitted(t *testing.T) {
	got, err := captureStdout(func() {
		LogRegistrationSubmitted(ctx, 3, types.RegistrationStatusPending, true)
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		`{"event":{"status":"pending","registration_id":3,"created":true},` + tail + `"disposition":"neutral","event_type":"registration_submitted","timestamp":\d+}`,
	)
	assert.Regexp(t, expect, got)
}

func TestLogRegistrationDenied(t *testing.T) {
	got, err := captureStdout(func() {
		LogRegistrationDenied(ctx, "competition is full")
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		`{"event":{"reason":"competition is full"},` + tail + `"disposition":"bad","event_type":"registration_denied","timestamp":\d+}`,
	)
	assert.Regexp(t, expect, got)
}

func TestLogRegistrationStatusChanged(t *testing.T) {
	tests := []struct {
		to          types.RegistrationStatus
		disposition Disposition
	}{
		{types.RegistrationStatusApproved, DispositionGood},
		{types.RegistrationStatusRejected, DispositionBad},
		{types.RegistrationStatusPending, DispositionNeutral},
	}

	for _, tt := range tests {
		t.Run(string(tt.to), func(t *testing.T) {
			got, err := captureStdout(func() {
				LogRegistrationStatusChanged(ctx, 3, types.RegistrationStatusPending, tt.to)
			})
			require.NoError(t, err)

			expect := regexp.MustCompile(
				`{"event":{"from":"pending","to":"` + string(tt.to) + `","registration_id":3},` + tail + `"disposition":"` + string(tt.disposition) + `","event_type":"registration_status_changed","timestamp":\d+}`,
			)
			assert.Regexp(t, expect, got)
		})
	}
}

func TestLogRankAssigned(t *testing.T) {
	got, err := captureStdout(func() {
		LogRankAssigned(ctx, 3, ptr(1), nil)
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		`{"event":{"ranking":1,"final_position":null,"registration_id":3},` + tail + `"disposition":"neutral","event_type":"rank_assigned","timestamp":\d+}`,
	)
	assert.Regexp(t, expect, got)
}

func TestLogScoreSubmitted(t *testing.T) {
	got, err := captureStdout(func() {
		LogScoreSubmitted(ctx, 3, 11, ptr(87.5))
	})
	require.NoError(t, err)

	expect := regexp.MustCompile(
		`{"event":{"total_score":87.5,"score_id":11,"registration_id":3},` + tail + `"disposition":"neutral","event_type":"score_submitted","timestamp":\d+}`,
	)
	assert.Regexp(t, expect, got)
}

func TestNullContext(t *testing.T) {
	got, err := captureStdout(func() {
		LogCompetitionCreated(Context{}, "Kontes", types.CompetitionStatusOpen)
	})
	require.NoError(t, err)

	assert.Contains(t, got, `"competition_id":null,"actor_id":null`)
}
