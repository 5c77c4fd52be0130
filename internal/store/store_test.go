package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stormfins/club-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	seedCaptainName     = "Admin Captain"
	seedCaptainPIN      = "1234"
	seedCaptainPassword = "password123"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(nil, nil, nil)
}

func loginSeedCaptain(t *testing.T, s *Store) {
	t.Helper()
	require.True(t, s.Login(seedCaptainName, seedCaptainPIN, domain.RoleCaptain, seedCaptainPassword))
}

func TestCreateCaptainRejectsDuplicateNames(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.CreateCaptain(seedCaptainName, "9999", "secret99"), "exact duplicate")
	assert.False(t, s.CreateCaptain("admin captain", "9999", "secret99"), "case-insensitive duplicate")
	assert.Len(t, s.Users(), 1)

	assert.True(t, s.CreateCaptain("Coach Riley", "4321", "secret99"))
	assert.Len(t, s.Users(), 2)
}

func TestAddSwimmerSilentlyIgnoresDuplicates(t *testing.T) {
	s := newTestStore(t)

	s.AddSwimmer("Dana")
	require.Len(t, s.Users(), 2)

	s.AddSwimmer("  dana  ")
	assert.Len(t, s.Users(), 2)

	var dana domain.User
	for _, u := range s.Users() {
		if u.Name == "Dana" {
			dana = u
		}
	}
	assert.Equal(t, domain.RolePlayer, dana.Role)
	assert.False(t, dana.IsActive)
	assert.Zero(t, dana.Points)
	assert.Empty(t, dana.Password)
}

func TestLogin(t *testing.T) {
	s := newTestStore(t)
	s.AddSwimmer("Dana")
	require.True(t, s.ActivateSwimmer("Dana", "swimfast"))

	tests := []struct {
		name            string
		loginName       string
		pinOrPassword   string
		role            domain.Role
		captainPassword string
		want            bool
	}{
		{"captain with pin and password", seedCaptainName, seedCaptainPIN, domain.RoleCaptain, seedCaptainPassword, true},
		{"captain name is case-insensitive", "ADMIN CAPTAIN", seedCaptainPIN, domain.RoleCaptain, seedCaptainPassword, true},
		{"captain wrong pin", seedCaptainName, "0000", domain.RoleCaptain, seedCaptainPassword, false},
		{"captain wrong password", seedCaptainName, seedCaptainPIN, domain.RoleCaptain, "nope", false},
		{"captain as player role", seedCaptainName, seedCaptainPassword, domain.RolePlayer, "", false},
		{"player with password", "Dana", "swimfast", domain.RolePlayer, "", true},
		{"player wrong password", "Dana", "nope", domain.RolePlayer, "", false},
		{"unknown name", "Nobody", "x", domain.RolePlayer, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Logout()
			got := s.Login(tt.loginName, tt.pinOrPassword, tt.role, tt.captainPassword)
			assert.Equal(t, tt.want, got)
			if tt.want {
				require.NotNil(t, s.CurrentUser())
			} else {
				assert.Nil(t, s.CurrentUser())
			}
		})
	}
}

func TestInactivePlayerCannotLogIn(t *testing.T) {
	s := newTestStore(t)
	s.AddSwimmer("Dana")

	assert.False(t, s.Login("Dana", "", domain.RolePlayer, ""))
	assert.False(t, s.Login("Dana", "swimfast", domain.RolePlayer, ""))
}

func TestActivateSwimmerIsOneTime(t *testing.T) {
	s := newTestStore(t)
	s.AddSwimmer("Dana")

	assert.True(t, s.ActivateSwimmer("dana", "swimfast"))
	assert.False(t, s.ActivateSwimmer("Dana", "again"), "no inactive match remains")
	assert.True(t, s.Login("Dana", "swimfast", domain.RolePlayer, ""))
}

func TestActivateSwimmerRequiresInactivePlayer(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.ActivateSwimmer("Nobody", "pw"))
	assert.False(t, s.ActivateSwimmer(seedCaptainName, "pw"), "captains are not activatable")
}

func TestGrantAward(t *testing.T) {
	s := newTestStore(t)
	s.AddSwimmer("Dana")
	require.True(t, s.ActivateSwimmer("Dana", "swimfast"))
	dana := findByName(t, s, "Dana")

	// No session at all.
	assert.False(t, s.GrantAward(dana.ID, 4, "new record"))

	// Player session is refused and leaves state unchanged.
	require.True(t, s.Login("Dana", "swimfast", domain.RolePlayer, ""))
	assert.False(t, s.GrantAward(dana.ID, 4, "new record"))
	assert.Empty(t, s.GrantedAwards())
	assert.Zero(t, findByName(t, s, "Dana").Points)

	// Captain session with a valid award id.
	loginSeedCaptain(t, s)
	require.True(t, s.GrantAward(dana.ID, 4, "new record"))

	granted := s.GrantedAwards()
	require.Len(t, granted, 1)
	assert.Equal(t, "Milestone Breaker", granted[0].Award.Title)
	assert.Equal(t, dana.ID, granted[0].UserID)
	assert.Equal(t, "new record", granted[0].Reason)
	assert.Equal(t, seedCaptainName, granted[0].GrantedByName)
	assert.False(t, granted[0].Timestamp.IsZero())
	assert.Equal(t, 100, findByName(t, s, "Dana").Points)

	// Unknown award id.
	assert.False(t, s.GrantAward(dana.ID, 999, "bogus"))
	assert.Len(t, s.GrantedAwards(), 1)
}

func TestSendDirectMessageSharesOneThreadPerPair(t *testing.T) {
	s := newTestStore(t)
	s.AddSwimmer("Dana")
	dana := findByName(t, s, "Dana")
	captain := findByName(t, s, seedCaptainName)

	s.SendDirectMessage(captain.ID, dana.ID, "welcome to the team")
	s.SendDirectMessage(dana.ID, captain.ID, "thanks coach")

	convos := s.Conversations()
	require.Len(t, convos, 1, "both directions land in the same thread")

	thread := s.Conversation(dana.ID, captain.ID)
	require.Len(t, thread, 2)
	assert.Equal(t, "welcome to the team", thread[0].Text)
	assert.Equal(t, captain.Name, thread[0].UserName)
	assert.Equal(t, "thanks coach", thread[1].Text)

	counts := s.UnreadCounts()
	assert.Equal(t, 1, counts[dana.ID], "first message pending for dana")
	assert.Equal(t, 1, counts[captain.ID], "reply pending for captain")

	s.ClearChatNotifications(dana.ID)
	counts = s.UnreadCounts()
	_, exists := counts[dana.ID]
	assert.False(t, exists, "viewing the list removes the counter entirely")
	assert.Equal(t, 1, counts[captain.ID])
}

func TestSendDirectMessageUnknownSenderIsIgnored(t *testing.T) {
	s := newTestStore(t)
	s.SendDirectMessage(42, 1, "ghost message")
	assert.Empty(t, s.Conversations())
	assert.Empty(t, s.UnreadCounts())
}

func TestScheduleStaysSorted(t *testing.T) {
	s := newTestStore(t)

	s.AddScheduleEvent(domain.ScheduleEvent{Title: "Wed practice", Type: domain.EventTraining, DayOfWeek: 3, Time: "09:00"})
	s.AddScheduleEvent(domain.ScheduleEvent{Title: "Mon meet", Type: domain.EventCompetition, DayOfWeek: 1, Time: "14:00"})
	s.AddScheduleEvent(domain.ScheduleEvent{Title: "Mon early", Type: domain.EventTraining, DayOfWeek: 1, Time: "08:00"})

	schedule := s.Schedule()
	require.Len(t, schedule, 3)
	assert.Equal(t, "Mon early", schedule[0].Title)
	assert.Equal(t, "Mon meet", schedule[1].Title)
	assert.Equal(t, "Wed practice", schedule[2].Title)
	for _, e := range schedule {
		assert.False(t, e.RemindersSent)
		assert.NotZero(t, e.ID)
	}
}

func TestDeleteScheduleEventRequiresCaptain(t *testing.T) {
	s := newTestStore(t)
	s.AddScheduleEvent(domain.ScheduleEvent{Title: "Practice", Type: domain.EventTraining, DayOfWeek: 2, Time: "10:00"})
	eventID := s.Schedule()[0].ID

	s.DeleteScheduleEvent(eventID)
	assert.Len(t, s.Schedule(), 1, "no session: silent no-op")

	loginSeedCaptain(t, s)
	s.DeleteScheduleEvent(eventID)
	assert.Empty(t, s.Schedule())
}

func TestDeleteUserChecksCallersOwnPIN(t *testing.T) {
	s := newTestStore(t)
	s.AddSwimmer("Dana")
	dana := findByName(t, s, "Dana")

	assert.False(t, s.DeleteUser(dana.ID, seedCaptainPIN), "no session")

	loginSeedCaptain(t, s)
	assert.False(t, s.DeleteUser(dana.ID, "0000"), "wrong pin")
	assert.Len(t, s.Users(), 2)

	require.True(t, s.DeleteUser(dana.ID, seedCaptainPIN))
	assert.Len(t, s.Users(), 1)
}

func TestAwardBonusPointsChecksCallersOwnPIN(t *testing.T) {
	s := newTestStore(t)
	s.AddSwimmer("Dana")
	dana := findByName(t, s, "Dana")

	// Second captain with a different PIN: the check is against the
	// caller's own PIN, not anyone else's.
	require.True(t, s.CreateCaptain("Coach Riley", "8888", "rileypw"))
	require.True(t, s.Login("Coach Riley", "8888", domain.RoleCaptain, "rileypw"))

	assert.False(t, s.AwardBonusPoints(dana.ID, 50, seedCaptainPIN), "someone else's pin")
	assert.Zero(t, findByName(t, s, "Dana").Points)

	require.True(t, s.AwardBonusPoints(dana.ID, 50, "8888"))
	assert.Equal(t, 50, findByName(t, s, "Dana").Points)
}

func TestChallengeCompletionIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	loginSeedCaptain(t, s)
	s.AddChallenge("100x100", "The classic set.", 200)

	challenges := s.Challenges()
	require.Len(t, challenges, 1)
	id := challenges[0].ID
	captain := findByName(t, s, seedCaptainName)
	basePoints := captain.Points

	require.True(t, s.CompleteChallenge(id))
	assert.Equal(t, basePoints+200, findByName(t, s, seedCaptainName).Points)

	require.True(t, s.CompleteChallenge(id), "repeat completion is accepted")
	assert.Equal(t, basePoints+200, findByName(t, s, seedCaptainName).Points, "but points are awarded once")
	assert.Len(t, s.Challenges()[0].CompletedByUserIDs, 1)

	assert.False(t, s.CompleteChallenge(9999), "unknown challenge")
}

func TestAddChallengeRequiresCaptain(t *testing.T) {
	s := newTestStore(t)
	s.AddChallenge("100x100", "The classic set.", 200)
	assert.Empty(t, s.Challenges(), "no session: silent no-op")
}

func TestUpdateUserAvatarAlsoUpdatesSession(t *testing.T) {
	s := newTestStore(t)
	loginSeedCaptain(t, s)
	captain := findByName(t, s, seedCaptainName)

	s.UpdateUserAvatar(captain.ID, "data:image/png;base64,xyz")

	assert.Equal(t, "data:image/png;base64,xyz", findByName(t, s, seedCaptainName).Avatar)
	assert.Equal(t, "data:image/png;base64,xyz", s.CurrentUser().Avatar)
}

func TestAlertLifecycle(t *testing.T) {
	s := newTestStore(t)

	_, active := s.Alert()
	assert.False(t, active)

	s.SendAlert("Pool closed today")
	msg, active := s.Alert()
	assert.True(t, active)
	assert.Equal(t, "Pool closed today", msg)

	s.DismissAlert()
	_, active = s.Alert()
	assert.False(t, active)
}

func TestSnapshotIsDetachedFromStoreState(t *testing.T) {
	s := newTestStore(t)
	snap := s.Snapshot()

	s.AddSwimmer("Dana")
	assert.Len(t, snap.Users, 1, "earlier snapshot does not see later mutations")
	assert.Len(t, s.Snapshot().Users, 2)
}

func TestGeneratedIDsAreUniqueUnderRapidCreation(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 50; i++ {
		s.AddScheduleEvent(domain.ScheduleEvent{Title: "e", Type: domain.EventTraining, DayOfWeek: 0, Time: "06:00"})
	}
	seen := map[int64]bool{}
	for _, e := range s.Schedule() {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}

// --- Initialization / persistence ---

type fakeRemote struct {
	doc      json.RawMessage
	fetchErr error
	saved    chan *domain.State
}

func (f *fakeRemote) Fetch(ctx context.Context) (json.RawMessage, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.doc, nil
}

func (f *fakeRemote) Save(ctx context.Context, state *domain.State) error {
	if f.saved != nil {
		f.saved <- state
	}
	return nil
}

func TestLoadMergesRemoteDocumentOverDefaults(t *testing.T) {
	remote := &fakeRemote{doc: json.RawMessage(`{
		"users": [{"id": 7, "name": "Remote Captain", "pin": "7777", "password": "pw", "role": "Captain", "isActive": true, "age": 40, "avatar": "", "stats": {"attendance": 0, "topSpeed": 0, "endurance": 0}, "points": 10}],
		"schedule": [{"id": 8, "title": "Practice", "type": "Training", "dayOfWeek": 2, "time": "07:30", "remindersSent": false}],
		"currentUser": {"id": 7, "name": "Remote Captain", "role": "Captain", "isActive": true, "age": 40, "avatar": "", "stats": {"attendance": 0, "topSpeed": 0, "endurance": 0}, "points": 10}
	}`)}
	s := New(remote, nil, nil)
	s.Load(context.Background())

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "Remote Captain", users[0].Name)
	assert.Len(t, s.Schedule(), 1)
	// Fields missing from the document keep their defaults.
	assert.NotNil(t, s.Conversations())
	assert.Empty(t, s.TrainingPlans())
	// The session never survives a full load.
	assert.Nil(t, s.CurrentUser())
}

func TestLoadKeepsRemoteUsersFreeOfSeedCredentials(t *testing.T) {
	// An un-activated swimmer round-trips through a save with pin and
	// password omitted (both marshal with omitempty). Loading that document
	// must not fill the gaps with the seed captain's credentials.
	remote := &fakeRemote{doc: json.RawMessage(`{
		"users": [{"id": 7, "name": "Dana", "role": "Player", "isActive": false, "age": 18, "avatar": "", "stats": {"attendance": 0, "topSpeed": 0, "endurance": 0}, "points": 0}]
	}`)}
	s := New(remote, nil, nil)
	s.Load(context.Background())

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "Dana", users[0].Name)
	assert.Empty(t, users[0].PIN)
	assert.Empty(t, users[0].Password)
	assert.False(t, users[0].IsActive)
}

func TestLoadFallsBackToSeedOnFetchFailure(t *testing.T) {
	remote := &fakeRemote{fetchErr: errors.New("connection refused")}
	s := New(remote, nil, nil)
	s.Load(context.Background())

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, seedCaptainName, users[0].Name)
}

func TestLoadRestoresSeedCaptainWhenRemoteHasNoUsers(t *testing.T) {
	remote := &fakeRemote{doc: json.RawMessage(`{"users": []}`)}
	s := New(remote, nil, nil)
	s.Load(context.Background())

	users := s.Users()
	require.Len(t, users, 1, "recovery login path must always exist")
	assert.Equal(t, seedCaptainName, users[0].Name)
}

func TestMutationsPushSanitizedStateToRemote(t *testing.T) {
	remote := &fakeRemote{doc: json.RawMessage(`{}`), saved: make(chan *domain.State, 1)}
	s := New(remote, nil, nil)
	loginSeedCaptain(t, s)

	s.AddSwimmer("Dana")

	select {
	case pushed := <-remote.saved:
		assert.Len(t, pushed.Users, 2)
		assert.Nil(t, pushed.CurrentUser, "session is stripped before persisting")
	case <-time.After(2 * time.Second):
		t.Fatal("no remote push after mutation")
	}
}

func TestLoginDoesNotTriggerRemotePush(t *testing.T) {
	remote := &fakeRemote{doc: json.RawMessage(`{}`), saved: make(chan *domain.State, 1)}
	s := New(remote, nil, nil)

	loginSeedCaptain(t, s)
	s.Logout()

	select {
	case <-remote.saved:
		t.Fatal("session changes must not be pushed")
	case <-time.After(100 * time.Millisecond):
	}
}

func findByName(t *testing.T, s *Store, name string) domain.User {
	t.Helper()
	for _, u := range s.Users() {
		if u.Name == name {
			return u
		}
	}
	t.Fatalf("user %q not found", name)
	return domain.User{}
}
