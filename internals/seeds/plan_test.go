package seeds

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internals/constants"
)

func buildTestPlan(t *testing.T) *DemoPlan {
	t.Helper()
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	return BuildDemoPlan(now, "$2a$12$notarealhashnotarealhashnotarealhash")
}

func TestBuildDemoPlanReferencesResolve(t *testing.T) {
	plan := buildTestPlan(t)

	users := make(map[uuid.UUID]bool)
	for _, u := range plan.Users {
		users[u.ID] = true
	}
	sessions := make(map[uuid.UUID]bool)
	for _, s := range plan.Sessions {
		sessions[s.SessionID] = true
		assert.True(t, users[s.SessionMentorID], "session mentor must be a seeded user")
	}
	groups := make(map[uuid.UUID]bool)
	for _, g := range plan.ChatGroups {
		groups[g.ChatGroupID] = true
		if g.ChatGroupCreatedBy != nil {
			assert.True(t, users[*g.ChatGroupCreatedBy], "group creator must be a seeded user")
		}
	}

	for _, sm := range plan.SessionMentees {
		assert.True(t, sessions[sm.SessionID])
		assert.True(t, users[sm.MenteeID])
	}
	for _, a := range plan.Announcements {
		assert.True(t, users[a.AnnouncementCreatedBy])
	}
	for _, r := range plan.Resources {
		assert.True(t, users[r.ResourceUploadedBy])
	}
	for _, gm := range plan.GroupMembers {
		assert.True(t, groups[gm.GroupID])
		assert.True(t, users[gm.UserID])
	}
	for _, m := range plan.Messages {
		assert.True(t, users[m.MessageSenderID])
		if m.MessageGroupID != nil {
			assert.True(t, groups[*m.MessageGroupID])
		}
		if m.MessageReceiverID != nil {
			assert.True(t, users[*m.MessageReceiverID])
		}
	}
	for _, r := range plan.Ratings {
		assert.True(t, users[r.RatingMentorID])
		assert.True(t, users[r.RatingMenteeID])
	}
	for _, s := range plan.SalesData {
		assert.True(t, users[s.SalesUserID])
	}
	for _, n := range plan.Notifications {
		assert.True(t, users[n.NotificationUserID])
	}
}

func TestBuildDemoPlanUniquePairs(t *testing.T) {
	plan := buildTestPlan(t)

	enrollments := make(map[string]bool)
	for _, sm := range plan.SessionMentees {
		key := sm.SessionID.String() + "/" + sm.MenteeID.String()
		assert.False(t, enrollments[key], "duplicate enrollment %s", key)
		enrollments[key] = true
	}

	memberships := make(map[string]bool)
	for _, gm := range plan.GroupMembers {
		key := gm.GroupID.String() + "/" + gm.UserID.String()
		assert.False(t, memberships[key], "duplicate membership %s", key)
		memberships[key] = true
	}

	salesPeriods := make(map[string]bool)
	for _, s := range plan.SalesData {
		key := fmt.Sprintf("%s/%d/%d", s.SalesUserID, s.SalesMonth, s.SalesYear)
		assert.False(t, salesPeriods[key], "duplicate sales period %s", key)
		salesPeriods[key] = true
	}
}

func TestBuildDemoPlanGeneralGroup(t *testing.T) {
	plan := buildTestPlan(t)

	var generalCount int
	for _, g := range plan.ChatGroups {
		if g.ChatGroupIsGeneral {
			generalCount++
			assert.Nil(t, g.ChatGroupCreatedBy, "the general group has no creator")

			members := 0
			for _, gm := range plan.GroupMembers {
				if gm.GroupID == g.ChatGroupID {
					members++
				}
			}
			assert.Equal(t, len(plan.Users), members, "every user joins the general group")
		} else {
			assert.NotNil(t, g.ChatGroupCreatedBy, "non-general groups need a creator")
		}
	}
	assert.Equal(t, 1, generalCount)
}

func TestBuildDemoPlanMessagesTargetExactlyOne(t *testing.T) {
	plan := buildTestPlan(t)

	require.NotEmpty(t, plan.Messages)
	for i := range plan.Messages {
		assert.NoError(t, plan.Messages[i].ValidateTarget(), "message %d", i)
	}
}

func TestBuildDemoPlanAccounts(t *testing.T) {
	plan := buildTestPlan(t)

	byEmail := make(map[string]string)
	for _, u := range plan.Users {
		byEmail[u.Email] = u.Role
		assert.Equal(t, constants.StatusActive, u.Status)
		assert.True(t, u.Verified)
		assert.NotEmpty(t, u.PasswordHash)
	}
	assert.Equal(t, constants.RoleAdmin, byEmail[AdminEmail])
	assert.Equal(t, constants.RoleMentor, byEmail[MentorEmail])
	assert.Equal(t, constants.RoleMentee, byEmail[MenteeEmail])
}

func TestBuildDemoPlanSalesUseLastThreePeriods(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	plan := BuildDemoPlan(now, "hash")

	want := map[SalesPeriod]bool{
		{Month: 11, Year: 2023}: true,
		{Month: 12, Year: 2023}: true,
		{Month: 1, Year: 2024}:  true,
	}
	for _, s := range plan.SalesData {
		assert.True(t, want[SalesPeriod{Month: s.SalesMonth, Year: s.SalesYear}],
			"unexpected sales period %d/%d", s.SalesMonth, s.SalesYear)
	}
}

func TestResetOrderIsReverseOfSeedOrder(t *testing.T) {
	insert := SeedTableOrder()
	reset := ResetTableOrder()

	require.Equal(t, len(insert), len(reset))
	for i, table := range insert {
		assert.Equal(t, table, reset[len(reset)-1-i])
	}
	assert.Equal(t, "users", insert[0], "users must be seeded first")
	assert.Equal(t, "users", reset[len(reset)-1], "users must be cleared last")
}
