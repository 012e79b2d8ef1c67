//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullFlow drives the happy path end to end over real PostgreSQL.
func (s *E2ETestSuite) TestFullFlow() {
	s.seedEvent("e1", 2, 4, "project_name")

	teamID, code := s.createTeam("leader-1", "rocket crew")

	status, body := s.do("u1", "POST", "/join", map[string]string{"code": code})
	require.Equal(s.T(), http.StatusCreated, status, string(body))

	status, body = s.do("leader-1", "POST", "/teams/"+teamID+"/members/u1/approve", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	status, body = s.do("u1", "GET", "/me/team?event_id=e1", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var myStatus struct {
		Status      string `json:"status"`
		Eligibility *struct {
			Eligible      bool `json:"eligible"`
			AcceptedCount int  `json:"accepted_count"`
		} `json:"eligibility"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &myStatus))
	assert.Equal(s.T(), "accepted", myStatus.Status)
	require.NotNil(s.T(), myStatus.Eligibility)
	assert.True(s.T(), myStatus.Eligibility.Eligible)
	assert.Equal(s.T(), 2, myStatus.Eligibility.AcceptedCount)

	status, body = s.do("u1", "POST", "/events/e1/registrations", map[string]interface{}{
		"team_id": teamID,
		"fields":  map[string]string{"project_name": "orbit"},
	})
	require.Equal(s.T(), http.StatusCreated, status, string(body))

	var reg struct {
		Registration struct {
			EventID     string            `json:"event_id"`
			SubmittedBy string            `json:"submitted_by"`
			Fields      map[string]string `json:"fields"`
		} `json:"registration"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &reg))
	assert.Equal(s.T(), "e1", reg.Registration.EventID)
	assert.Equal(s.T(), "u1", reg.Registration.SubmittedBy)
	assert.Equal(s.T(), "orbit", reg.Registration.Fields["project_name"])

	// Submission fields survive the round trip through the store.
	status, body = s.do("leader-1", "GET", "/teams/"+teamID+"/registrations", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))
	assert.Contains(s.T(), string(body), `"project_name":"orbit"`)
}

// TestRequiredFieldsRejection verifies the registration gate reports every
// missing submission field.
func (s *E2ETestSuite) TestRequiredFieldsRejection() {
	s.seedEvent("e1", 1, 4, "project_name", "contact_email")

	teamID, _ := s.createTeam("leader-1", "rocket crew")

	status, body := s.do("leader-1", "POST", "/events/e1/registrations", map[string]interface{}{
		"team_id": teamID,
		"fields":  map[string]string{"project_name": "orbit"},
	})
	assert.Equal(s.T(), http.StatusBadRequest, status)
	assert.Contains(s.T(), string(body), "MISSING_REQUIRED_FIELD")
	assert.Contains(s.T(), string(body), "contact_email")
}
