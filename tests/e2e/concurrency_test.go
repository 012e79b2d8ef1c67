//go:build e2e
// +build e2e

package e2e

import (
	"net/http"
	"strings"
	"sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentApprovalsAtCapacity fires two approvals for the last open
// slot in parallel; exactly one may land.
func (s *E2ETestSuite) TestConcurrentApprovalsAtCapacity() {
	teamID, code := s.createTeam("leader-1", "rocket crew")

	// Fill to one slot below the maximum of four.
	for _, userID := range []string{"u1", "u2"} {
		status, body := s.do(userID, "POST", "/join", map[string]string{"code": code})
		require.Equal(s.T(), http.StatusCreated, status, string(body))
		status, body = s.do("leader-1", "POST", "/teams/"+teamID+"/members/"+userID+"/approve", nil)
		require.Equal(s.T(), http.StatusOK, status, string(body))
	}

	for _, userID := range []string{"u3", "u4"} {
		status, body := s.do(userID, "POST", "/join", map[string]string{"code": code})
		require.Equal(s.T(), http.StatusCreated, status, string(body))
	}

	results := make([]int, 2)
	var wg sync.WaitGroup
	for i, userID := range []string{"u3", "u4"} {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			status, _ := s.do("leader-1", "POST", "/teams/"+teamID+"/members/"+userID+"/approve", nil)
			results[i] = status
		}(i, userID)
	}
	wg.Wait()

	wins := 0
	for _, status := range results {
		if status == http.StatusOK {
			wins++
		} else {
			assert.Equal(s.T(), http.StatusConflict, status)
		}
	}
	assert.Equal(s.T(), 1, wins, "exactly one approval may take the last slot")

	var accepted int64
	require.NoError(s.T(), s.db.Table("memberships").
		Where("team_id = ? AND status = ?", teamID, "accepted").
		Count(&accepted).Error)
	assert.Equal(s.T(), int64(4), accepted)
}

// TestConcurrentJoinRequests has one user race join requests against two
// teams; the unique index on memberships.user_id allows only one row.
func (s *E2ETestSuite) TestConcurrentJoinRequests() {
	_, codeA := s.createTeam("leader-1", "first")
	_, codeB := s.createTeam("leader-2", "second")

	results := make([]int, 2)
	var wg sync.WaitGroup
	for i, code := range []string{codeA, codeB} {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			status, _ := s.do("u1", "POST", "/join", map[string]string{"code": code})
			results[i] = status
		}(i, code)
	}
	wg.Wait()

	wins := 0
	for _, status := range results {
		if status == http.StatusCreated {
			wins++
		}
	}
	assert.Equal(s.T(), 1, wins, "a user holds at most one membership row")

	var rows int64
	require.NoError(s.T(), s.db.Table("memberships").
		Where("user_id = ?", "u1").
		Count(&rows).Error)
	assert.Equal(s.T(), int64(1), rows)
}

// TestConcurrentRegistrations races two members registering the same team
// for the same event; the (event_id, team_id) unique index picks one winner.
func (s *E2ETestSuite) TestConcurrentRegistrations() {
	s.seedEvent("e1", 2, 4)
	teamID, code := s.createTeam("leader-1", "rocket crew")

	status, body := s.do("u1", "POST", "/join", map[string]string{"code": code})
	require.Equal(s.T(), http.StatusCreated, status, string(body))
	status, body = s.do("leader-1", "POST", "/teams/"+teamID+"/members/u1/approve", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	type result struct {
		status int
		body   string
	}
	results := make([]result, 2)
	var wg sync.WaitGroup
	for i, userID := range []string{"leader-1", "u1"} {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			status, body := s.do(userID, "POST", "/events/e1/registrations", map[string]interface{}{
				"team_id": teamID,
			})
			results[i] = result{status: status, body: string(body)}
		}(i, userID)
	}
	wg.Wait()

	wins := 0
	for _, r := range results {
		if r.status == http.StatusCreated {
			wins++
		} else {
			assert.Equal(s.T(), http.StatusConflict, r.status)
			assert.True(s.T(), strings.Contains(r.body, "ALREADY_REGISTERED"), r.body)
		}
	}
	assert.Equal(s.T(), 1, wins, "a team registers for an event exactly once")

	var rows int64
	require.NoError(s.T(), s.db.Table("event_registrations").
		Where("event_id = ? AND team_id = ?", "e1", teamID).
		Count(&rows).Error)
	assert.Equal(s.T(), int64(1), rows)
}

// TestRegistrationSerializesWithLeave races a member leaving against a
// registration for an event whose minimum the leave would break.
func (s *E2ETestSuite) TestRegistrationSerializesWithLeave() {
	s.seedEvent("e1", 2, 4)
	teamID, code := s.createTeam("leader-1", "rocket crew")

	status, body := s.do("u1", "POST", "/join", map[string]string{"code": code})
	require.Equal(s.T(), http.StatusCreated, status, string(body))
	status, body = s.do("leader-1", "POST", "/teams/"+teamID+"/members/u1/approve", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var wg sync.WaitGroup
	var leaveStatus, registerStatus int
	wg.Add(2)
	go func() {
		defer wg.Done()
		leaveStatus, _ = s.do("u1", "POST", "/leave", nil)
	}()
	go func() {
		defer wg.Done()
		registerStatus, _ = s.do("leader-1", "POST", "/events/e1/registrations", map[string]interface{}{
			"team_id": teamID,
		})
	}()
	wg.Wait()

	require.Equal(s.T(), http.StatusOK, leaveStatus)

	var accepted int64
	require.NoError(s.T(), s.db.Table("memberships").
		Where("team_id = ? AND status = ?", teamID, "accepted").
		Count(&accepted).Error)

	var registrations int64
	require.NoError(s.T(), s.db.Table("event_registrations").
		Where("team_id = ?", teamID).
		Count(&registrations).Error)

	// Whichever transaction won the team-row lock decided the outcome; a
	// registration may only exist if it observed the member still present.
	if registerStatus == http.StatusCreated {
		assert.Equal(s.T(), int64(1), registrations)
	} else {
		assert.Equal(s.T(), http.StatusConflict, registerStatus)
		assert.Equal(s.T(), int64(0), registrations)
		assert.Equal(s.T(), int64(1), accepted)
	}
}
