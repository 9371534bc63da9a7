package bot

import "sync"

// SessionStore holds per-chat sessions in process memory. Each chat has its
// own lock, so updates for the same chat are serialized while distinct chats
// proceed in parallel. Sessions do not expire and do not survive a restart;
// after a restart every chat is back at StateStart.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*chatSession
}

type chatSession struct {
	mu      sync.Mutex
	session Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*chatSession),
	}
}

// Do runs fn under the chat's lock. The session pointer is only valid inside
// fn; mutations made by fn are retained.
func (s *SessionStore) Do(chatID int64, fn func(sess *Session) error) error {
	s.mu.Lock()
	cs, ok := s.sessions[chatID]
	if !ok {
		cs = &chatSession{}
		s.sessions[chatID] = cs
	}
	s.mu.Unlock()

	cs.mu.Lock()
	defer cs.mu.Unlock()
	return fn(&cs.session)
}

// Peek returns a copy of the chat's session, for tests and introspection.
func (s *SessionStore) Peek(chatID int64) (Session, bool) {
	s.mu.Lock()
	cs, ok := s.sessions[chatID]
	s.mu.Unlock()
	if !ok {
		return Session{}, false
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.session, true
}
