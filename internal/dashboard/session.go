package dashboard

import (
	"sync"
	"sync/atomic"
	"time"

	"loandash/internal/charts"
	"loandash/internal/errors"

	"github.com/google/uuid"
)

// DefaultMaxSessions bounds how many client sessions are kept in memory.
const DefaultMaxSessions = 1024

// Session is one client's control state. Callbacks for a session run one at a time.
type Session struct {
	ID string

	dash     *Dashboard
	mu       sync.Mutex
	state    State
	lastSeen atomic.Int64
}

// Update is the result of a control change.
type Update struct {
	Control ControlID
	State   State
	Figures []*charts.Figure
	Summary *Summary // set when the area selection changed
}

// View is everything needed to draw the full page.
type View struct {
	State   State
	Figures []*charts.Figure
	Summary Summary
}

func newSession(d *Dashboard) *Session {
	s := &Session{
		ID:    uuid.NewString(),
		dash:  d,
		state: d.DefaultState(),
	}
	s.touch()
	return s
}

func (s *Session) touch() {
	s.lastSeen.Store(time.Now().UnixNano())
}

// State returns a copy of the current control values.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Render builds the full page view at the current state.
func (s *Session) Render() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	return View{
		State:   s.state.Clone(),
		Figures: s.dash.Render(s.state),
		Summary: s.dash.Summary(s.state),
	}
}

// Build builds one chart at the current state.
func (s *Session) Build(id charts.ChartID) (*charts.Figure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	return s.dash.Build(s.state, id)
}

// Apply sets a control's value and rebuilds the charts that depend on it.
// Invalid values leave the state unchanged.
func (s *Session) Apply(control ControlID, values []string) (*Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	next := s.state.Clone()
	switch control {
	case ControlArea:
		next.Areas = parseAreas(values, s.dash.vm.AreaOptions())
	case ControlDependents:
		n, err := parseDependents(values)
		if err != nil {
			return nil, err
		}
		next.Dependents = n
	default:
		return nil, errors.NotFound("control " + string(control))
	}
	s.state = next

	update := &Update{
		Control: control,
		State:   next.Clone(),
		Figures: s.dash.Recompute(next, control),
	}
	if control == ControlArea {
		summary := s.dash.Summary(next)
		update.Summary = &summary
	}
	return update, nil
}

// SessionStore keeps sessions by id, evicting the least recently used when full.
type SessionStore struct {
	dash  *Dashboard
	limit int

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates a store; limit <= 0 uses DefaultMaxSessions.
func NewSessionStore(d *Dashboard, limit int) *SessionStore {
	if limit <= 0 {
		limit = DefaultMaxSessions
	}
	return &SessionStore{
		dash:     d,
		limit:    limit,
		sessions: make(map[string]*Session),
	}
}

// Get looks a session up by id.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Create starts a session at the default state.
func (st *SessionStore) Create() *Session {
	s := newSession(st.dash)

	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.sessions) >= st.limit {
		st.evictOldest()
	}
	st.sessions[s.ID] = s
	return s
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
func (st *SessionStore) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if s, ok := st.Get(id); ok {
			return s, false
		}
	}
	return st.Create(), true
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// evictOldest must be called with st.mu held.
func (st *SessionStore) evictOldest() {
	var (
		oldestID string
		oldest   int64
	)
	for id, s := range st.sessions {
		seen := s.lastSeen.Load()
		if oldestID == "" || seen < oldest {
			oldestID, oldest = id, seen
		}
	}
	delete(st.sessions, oldestID)
}
