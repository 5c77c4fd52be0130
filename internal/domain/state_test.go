package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateJSONRoundTripKeepsTimestamps(t *testing.T) {
	sent := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	granted := time.Date(2026, 1, 2, 18, 0, 0, 250_000_000, time.UTC)

	state := SeedState()
	state.Conversations["1-2"] = []ChatMessage{
		{ID: 10, UserID: 1, UserName: "Admin Captain", Text: "hi", Timestamp: sent},
	}
	state.GrantedAwards = []GrantedAward{
		{ID: 11, Award: Award{ID: 4, Title: "Milestone Breaker", Icon: IconTrophy, Points: 100}, UserID: 2, GrantedByUserID: 1, GrantedByName: "Admin Captain", Timestamp: granted, Reason: "pb"},
	}
	state.UnreadCounts[2] = 3

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var restored State
	require.NoError(t, json.Unmarshal(data, &restored))

	require.Len(t, restored.Conversations["1-2"], 1)
	assert.True(t, restored.Conversations["1-2"][0].Timestamp.Equal(sent))
	require.Len(t, restored.GrantedAwards, 1)
	assert.True(t, restored.GrantedAwards[0].Timestamp.Equal(granted))
	assert.Equal(t, 3, restored.UnreadCounts[2])
	assert.Equal(t, state.Users[0].Name, restored.Users[0].Name)
}

func TestCloneIsDeep(t *testing.T) {
	state := SeedState()
	state.Conversations["1-2"] = []ChatMessage{{ID: 1, UserID: 1, Text: "hi", Timestamp: time.Now()}}
	state.TrainingPlans = []TrainingPlan{{ID: 2, Title: "Sprints", Focus: []string{"Sprint"}}}
	state.Challenges = []Challenge{{ID: 3, Title: "100x100", Points: 200, CompletedByUserIDs: []int64{1}}}
	u := state.Users[0]
	state.CurrentUser = &u

	clone := state.Clone()
	clone.Users[0].Name = "Changed"
	clone.Conversations["1-2"][0].Text = "changed"
	clone.Conversations["3-4"] = []ChatMessage{}
	clone.TrainingPlans[0].Focus[0] = "Changed"
	clone.Challenges[0].CompletedByUserIDs[0] = 99
	clone.UnreadCounts[5] = 1
	clone.CurrentUser.Name = "Changed"

	assert.Equal(t, "Admin Captain", state.Users[0].Name)
	assert.Equal(t, "hi", state.Conversations["1-2"][0].Text)
	assert.NotContains(t, state.Conversations, "3-4")
	assert.Equal(t, "Sprint", state.TrainingPlans[0].Focus[0])
	assert.Equal(t, int64(1), state.Challenges[0].CompletedByUserIDs[0])
	assert.NotContains(t, state.UnreadCounts, int64(5))
	assert.Equal(t, "Admin Captain", state.CurrentUser.Name)
}

func TestSanitizedStripsSession(t *testing.T) {
	state := SeedState()
	u := state.Users[0]
	state.CurrentUser = &u

	clean := state.Sanitized()
	assert.Nil(t, clean.CurrentUser)
	assert.NotNil(t, state.CurrentUser, "original untouched")
	assert.Len(t, clean.Users, 1)
}

func TestConversationIDIgnoresPairOrder(t *testing.T) {
	assert.Equal(t, "3-7", ConversationID(3, 7))
	assert.Equal(t, "3-7", ConversationID(7, 3))
	assert.Equal(t, "5-5", ConversationID(5, 5))
}

func TestParseFocusList(t *testing.T) {
	assert.Equal(t, []string{"Sprint", "Endurance", "Starts"}, ParseFocusList("Sprint, Endurance ,Starts"))
	assert.Empty(t, ParseFocusList("  ,, "))
	assert.Equal(t, []string{"Sprint"}, ParseFocusList("Sprint"))
}

func TestScheduleEventOrdering(t *testing.T) {
	early := ScheduleEvent{DayOfWeek: 1, Time: "08:00"}
	late := ScheduleEvent{DayOfWeek: 1, Time: "14:00"}
	wed := ScheduleEvent{DayOfWeek: 3, Time: "09:00"}

	assert.True(t, early.Before(late))
	assert.True(t, late.Before(wed))
	assert.False(t, wed.Before(early))
}

func TestRoleAndEventTypeValidation(t *testing.T) {
	assert.True(t, RoleCaptain.Valid())
	assert.True(t, RolePlayer.Valid())
	assert.False(t, Role("Coach").Valid())

	assert.True(t, EventTraining.Valid())
	assert.False(t, EventType("Party").Valid())
}
