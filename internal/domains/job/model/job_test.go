package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/i18n"
)

func TestDeadlineNormalization(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		present   bool
		wantValue bool
		wantErr   bool
	}{
		{name: "absent", payload: `{}`, present: false},
		{name: "explicit null", payload: `{"applicationDeadline": null}`, present: true},
		{name: "empty string normalizes to null", payload: `{"applicationDeadline": ""}`, present: true},
		{name: "iso datetime", payload: `{"applicationDeadline": "2026-10-01T00:00:00Z"}`, present: true, wantValue: true},
		{name: "garbage", payload: `{"applicationDeadline": "next friday"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateJobRequest
			err := json.Unmarshal([]byte(tt.payload), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.present, req.ApplicationDeadline.Present)
			if tt.wantValue {
				require.NotNil(t, req.ApplicationDeadline.Value)
				assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *req.ApplicationDeadline.Value)
			} else {
				assert.Nil(t, req.ApplicationDeadline.Value)
			}
		})
	}
}

func TestDeadlinePatchSemantics(t *testing.T) {
	deadline := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	job := Job{Title: "Backend Engineer", ApplicationDeadline: &deadline}

	// absent field leaves the deadline untouched
	var req UpdateJobRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Senior Backend Engineer"}`), &req))
	req.ApplyToEntity(&job)
	assert.NotNil(t, job.ApplicationDeadline)

	// explicit null clears it
	req = UpdateJobRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"applicationDeadline": null}`), &req))
	req.ApplyToEntity(&job)
	assert.Nil(t, job.ApplicationDeadline)
}

func TestJobWholeListFallback(t *testing.T) {
	job := Job{
		Title:          "Backend Engineer",
		Department:     "Engineering",
		Location:       "Amman",
		Type:           "full-time",
		Description:    "Build backend services.",
		Requirements:   []string{"A", "B"},
		RequirementsAr: []string{"ألف"},
		Benefits:       []string{"Health", "Remote"},
	}

	ar := job.Localize(i18n.Arabic)
	// the whole alternate list wins, never a per-element merge
	assert.Equal(t, []string{"ألف"}, ar.Requirements)
	// empty Arabic list falls back to the whole base list
	assert.Equal(t, []string{"Health", "Remote"}, ar.Benefits)

	en := job.Localize(i18n.English)
	assert.Equal(t, []string{"A", "B"}, en.Requirements)
}
