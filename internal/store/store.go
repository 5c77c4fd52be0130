package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"stormfins/club-app/internal/domain"
	"stormfins/club-app/pkg/logger"

	"go.uber.org/zap"
)

// How long a background persistence push may take before it is abandoned.
const persistTimeout = 10 * time.Second

// RemoteAdapter is the hosted JSON document endpoint. Fetch returns the raw
// document (an empty object for a not-yet-created document); Save replaces
// it wholesale.
type RemoteAdapter interface {
	Fetch(ctx context.Context) (json.RawMessage, error)
	Save(ctx context.Context, state *domain.State) error
}

// SnapshotStore persists the state blob locally (file, database, ...).
// Load returns (nil, nil) when no snapshot exists yet.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.State, error)
	Save(ctx context.Context, state *domain.State) error
}

// Store owns the canonical application state. Every mutation builds a new
// deep-copied state and installs it wholesale, so snapshots handed out to
// callers are never modified behind their back. After each mutation the new
// state is pushed to the configured persistence backends on a detached
// goroutine; those pushes are fire-and-forget and their outcome is only
// logged, never surfaced to the caller.
type Store struct {
	mu    sync.RWMutex
	state *domain.State
	alert string // transient banner, session-local, never persisted

	idMu   sync.Mutex
	lastID int64

	remote RemoteAdapter
	snap   SnapshotStore
	log    *zap.Logger
}

// New creates a Store seeded with first-run defaults. Either persistence
// backend may be nil; with both nil the store is purely in-memory.
func New(remote RemoteAdapter, snap SnapshotStore, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		state:  domain.SeedState(),
		remote: remote,
		snap:   snap,
		log:    log,
	}
}

// Load initializes the state from the configured backends. With a remote
// adapter it fetches the document once and shallow-merges its top-level keys
// over the seed defaults, so keys missing from the remote document keep
// their default values.
// Without a remote it restores the local snapshot if one exists. Every
// failure degrades to the seed state; Load never fails the caller.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := domain.SeedState()
	switch {
	case s.remote != nil:
		raw, err := s.remote.Fetch(ctx)
		if err != nil {
			s.log.Warn("remote fetch failed, using local defaults", zap.Error(err))
			break
		}
		merged, err := mergeRemoteDocument(raw)
		if err != nil {
			s.log.Warn("remote document is malformed, using local defaults", zap.Error(err))
			break
		}
		loaded = merged
	case s.snap != nil:
		st, err := s.snap.Load(ctx)
		if err != nil {
			s.log.Warn("snapshot load failed, using local defaults", zap.Error(err))
			break
		}
		if st != nil {
			loaded = st
		}
	}

	// A document with no users would lock everyone out; fall back to the
	// seed captain so a recovery login path always exists.
	if len(loaded.Users) == 0 {
		loaded.Users = domain.SeedState().Users
	}
	// The session is never persisted and never survives a full load.
	loaded.CurrentUser = nil
	s.state = loaded
}

// remoteDocument is the overlay form of a fetched state document. Pointer
// fields distinguish a key that is absent (keep the seed default) from one
// that is present (replace the default wholesale). Decoding the document
// straight over a seeded State is not equivalent: encoding/json merges array
// elements field-by-field into the existing backing array, so a remote user
// whose JSON omits pin or password would inherit the seed captain's
// credentials. The currentUser key is intentionally missing here; the
// session never survives a load.
type remoteDocument struct {
	Users         *[]domain.User                   `json:"users"`
	Schedule      *[]domain.ScheduleEvent          `json:"schedule"`
	TrainingPlans *[]domain.TrainingPlan           `json:"trainingPlans"`
	Conversations *map[string][]domain.ChatMessage `json:"conversations"`
	GrantedAwards *[]domain.GrantedAward           `json:"grantedAwards"`
	Challenges    *[]domain.Challenge              `json:"challenges"`
	UnreadCounts  *map[int64]int                   `json:"unreadCounts"`
}

// mergeRemoteDocument overlays the document's top-level keys on the seed
// defaults, one whole key at a time.
func mergeRemoteDocument(raw json.RawMessage) (*domain.State, error) {
	var doc remoteDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	merged := domain.SeedState()
	if doc.Users != nil {
		merged.Users = *doc.Users
	}
	if doc.Schedule != nil {
		merged.Schedule = *doc.Schedule
	}
	if doc.TrainingPlans != nil {
		merged.TrainingPlans = *doc.TrainingPlans
	}
	if doc.Conversations != nil {
		merged.Conversations = *doc.Conversations
	}
	if doc.GrantedAwards != nil {
		merged.GrantedAwards = *doc.GrantedAwards
	}
	if doc.Challenges != nil {
		merged.Challenges = *doc.Challenges
	}
	if doc.UnreadCounts != nil {
		merged.UnreadCounts = *doc.UnreadCounts
	}
	return merged, nil
}

// commit installs next as the current state and fires the background
// persistence push. Callers must hold s.mu.
func (s *Store) commit(op string, next *domain.State) {
	s.state = next
	if s.remote == nil && s.snap == nil {
		return
	}
	persistable := next.Sanitized()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if s.remote != nil {
			if err := s.remote.Save(ctx, persistable); err != nil {
				s.log.Warn("remote sync failed",
					zap.String(logger.FieldOperation, op), zap.Error(err))
			}
		}
		if s.snap != nil {
			if err := s.snap.Save(ctx, persistable); err != nil {
				s.log.Warn("snapshot save failed",
					zap.String(logger.FieldOperation, op), zap.Error(err))
			}
		}
	}()
}

// nextID issues entity ids derived from the wall clock, bumped to stay
// strictly increasing when several entities are created within the same
// millisecond.
func (s *Store) nextID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func findUserByName(users []domain.User, name string) int {
	for i := range users {
		if strings.EqualFold(users[i].Name, name) {
			return i
		}
	}
	return -1
}
