package bot

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/swagateam/swagabot/internal/domain"
)

// memStore is an in-memory implementation of all four repositories with the
// same semantics as the postgres layer: pair-unique ledgers, atomic
// increment-or-insert with pre-increment snapshots, deterministic ranking.
type memStore struct {
	mu         sync.Mutex
	profiles   map[uuid.UUID]*domain.Profile
	byUsername map[string]uuid.UUID
	activities map[uuid.UUID]*domain.ProfileActivity
	seq        map[uuid.UUID]int
	nextSeq    int
	views      map[[2]uuid.UUID]bool
	likes      map[[2]uuid.UUID]*domain.ProfileLike
}

func newMemStore() *memStore {
	return &memStore{
		profiles:   make(map[uuid.UUID]*domain.Profile),
		byUsername: make(map[string]uuid.UUID),
		activities: make(map[uuid.UUID]*domain.ProfileActivity),
		seq:        make(map[uuid.UUID]int),
		views:      make(map[[2]uuid.UUID]bool),
		likes:      make(map[[2]uuid.UUID]*domain.ProfileLike),
	}
}

func (s *memStore) Create(_ context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byUsername[profile.Username]; ok {
		return domain.ErrProfileAlreadyExists
	}
	profile.CreatedAt = time.Now()
	cp := *profile
	s.profiles[profile.ID] = &cp
	s.byUsername[profile.Username] = profile.ID
	return nil
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) GetByUsername(_ context.Context, username string) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *s.profiles[id]
	return &cp, nil
}

func (s *memStore) update(username string, fn func(p *domain.Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byUsername[username]
	if !ok {
		return domain.ErrProfileNotFound
	}
	fn(s.profiles[id])
	return nil
}

func (s *memStore) UpdateAge(_ context.Context, username string, age int) error {
	return s.update(username, func(p *domain.Profile) { p.Age = age })
}

func (s *memStore) UpdateGender(_ context.Context, username string, gender domain.Gender) error {
	return s.update(username, func(p *domain.Profile) { p.Gender = gender.String() })
}

func (s *memStore) UpdateDisplayedName(_ context.Context, username string, name string) error {
	return s.update(username, func(p *domain.Profile) { p.DisplayedName = name })
}

func (s *memStore) UpdateLocation(_ context.Context, username string, location string) error {
	return s.update(username, func(p *domain.Profile) { p.Location = location })
}

func (s *memStore) UpdateDescription(_ context.Context, username string, description string) error {
	return s.update(username, func(p *domain.Profile) { p.Description = description })
}

func (s *memStore) IncrementOrInsert(_ context.Context, profileID uuid.UUID) (*domain.ProfileActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.activities[profileID]
	if !ok {
		a = &domain.ProfileActivity{ProfileID: profileID, ActivityCount: 1, CreatedAt: time.Now()}
		s.activities[profileID] = a
		s.seq[profileID] = s.nextSeq
		s.nextSeq++
		cp := *a
		return &cp, nil
	}
	snapshot := *a
	a.ActivityCount++
	return &snapshot, nil
}

func (s *memStore) ranked() []*domain.ProfileActivity {
	out := make([]*domain.ProfileActivity, 0, len(s.activities))
	for _, a := range s.activities {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ActivityCount != out[j].ActivityCount {
			return out[i].ActivityCount > out[j].ActivityCount
		}
		return s.seq[out[i].ProfileID] < s.seq[out[j].ProfileID]
	})
	return out
}

func (s *memStore) MostActive(_ context.Context) (*domain.ProfileActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ranked := s.ranked()
	if len(ranked) == 0 {
		return nil, domain.ErrActivityNotFound
	}
	return ranked[0], nil
}

func (s *memStore) ListMostActive(_ context.Context, limit, offset int) ([]*domain.ProfileActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ranked := s.ranked()
	if offset >= len(ranked) {
		return nil, nil
	}
	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[offset:end], nil
}

func (s *memStore) Record(_ context.Context, viewerID, profileID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[[2]uuid.UUID{viewerID, profileID}] = true
	return nil
}

func (s *memStore) Exists(_ context.Context, viewerID, profileID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views[[2]uuid.UUID{viewerID, profileID}], nil
}

func (s *memStore) CreateLike(_ context.Context, like *domain.ProfileLike) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]uuid.UUID{like.ViewerID, like.ProfileID}
	if _, ok := s.likes[key]; ok {
		return nil
	}
	cp := *like
	s.likes[key] = &cp
	return nil
}

func (s *memStore) LikeExists(_ context.Context, viewerID, profileID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.likes[[2]uuid.UUID{viewerID, profileID}]
	return ok, nil
}

// likeLedger adapts memStore to repository.LikeRepository, whose method names
// collide with the exposure ledger.
type likeLedger struct {
	store *memStore
}

func (l *likeLedger) Create(ctx context.Context, like *domain.ProfileLike) error {
	return l.store.CreateLike(ctx, like)
}

func (l *likeLedger) Exists(ctx context.Context, viewerID, profileID uuid.UUID) (bool, error) {
	return l.store.LikeExists(ctx, viewerID, profileID)
}

// collector buffers outbound messages for assertions.
type collector struct {
	texts []string
}

func (c *collector) SendText(_ context.Context, _ int64, text string) error {
	c.texts = append(c.texts, text)
	return nil
}

func (c *collector) SendTextWithOptions(_ context.Context, _ int64, text string, _ []string) error {
	c.texts = append(c.texts, text)
	return nil
}
