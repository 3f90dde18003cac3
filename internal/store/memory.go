package store

import (
	"sort"
	"sync"
	"time"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
)

// MemoryStore is an in-memory Store used by tests. It mirrors the
// conditional-logout semantics of the database implementation.
type MemoryStore struct {
	mu        sync.Mutex
	nextID    uint
	users     map[uint]*models.User
	sessions  map[string]*models.Session
	questions map[uint]*models.Question
	answers   map[uint]*models.Answer
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[uint]*models.User),
		sessions:  make(map[string]*models.Session),
		questions: make(map[uint]*models.Question),
		answers:   make(map[uint]*models.Answer),
	}
}

func (m *MemoryStore) id() uint {
	m.nextID++
	return m.nextID
}

// ---------- users ----------

func (m *MemoryStore) CreateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == 0 {
		u.ID = m.id()
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *MemoryStore) findUser(match func(*models.User) bool) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UserByID(id uint) (*models.User, error) {
	return m.findUser(func(u *models.User) bool { return u.ID == id })
}

func (m *MemoryStore) UserByUsername(username string) (*models.User, error) {
	return m.findUser(func(u *models.User) bool { return u.Username == username })
}

func (m *MemoryStore) UserByEmail(email string) (*models.User, error) {
	return m.findUser(func(u *models.User) bool { return u.Email == email })
}

func (m *MemoryStore) UserByUUID(uuid string) (*models.User, error) {
	return m.findUser(func(u *models.User) bool { return u.UUID == uuid })
}

func (m *MemoryStore) DeleteUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	delete(m.users, u.ID)
	return nil
}

// ---------- sessions ----------

func (m *MemoryStore) CreateSession(s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.AccessToken]; ok {
		return ErrDuplicate
	}
	if s.ID == 0 {
		s.ID = m.id()
	}
	cp := *s
	m.sessions[s.AccessToken] = &cp
	return nil
}

func (m *MemoryStore) SessionByToken(token string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryStore) LogoutSession(token string, at time.Time) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok || s.LogoutAt != nil {
		return nil, ErrNotFound
	}
	logout := at
	s.LogoutAt = &logout
	s.ExpiresAt = at
	cp := *s
	return &cp, nil
}

// ---------- questions ----------

func (m *MemoryStore) CreateQuestion(q *models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if q.ID == 0 {
		q.ID = m.id()
	}
	cp := *q
	m.questions[q.ID] = &cp
	return nil
}

func (m *MemoryStore) QuestionByUUID(uuid string) (*models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.questions {
		if q.UUID == uuid {
			cp := *q
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) QuestionByContent(content string) (*models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.questions {
		if q.Content == content {
			cp := *q
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) AllQuestions() ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var qs []models.Question
	for _, q := range m.questions {
		qs = append(qs, *q)
	}
	sortQuestions(qs)
	return qs, nil
}

func (m *MemoryStore) QuestionsByUser(userID uint) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var qs []models.Question
	for _, q := range m.questions {
		if q.UserID == userID {
			qs = append(qs, *q)
		}
	}
	sortQuestions(qs)
	return qs, nil
}

func sortQuestions(qs []models.Question) {
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
}

func (m *MemoryStore) UpdateQuestion(q *models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.questions[q.ID]; !ok {
		return ErrNotFound
	}
	cp := *q
	m.questions[q.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteQuestion(q *models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.questions[q.ID]; !ok {
		return ErrNotFound
	}
	delete(m.questions, q.ID)
	return nil
}

// ---------- answers ----------

func (m *MemoryStore) CreateAnswer(a *models.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == 0 {
		a.ID = m.id()
	}
	cp := *a
	m.answers[a.ID] = &cp
	return nil
}

func (m *MemoryStore) AnswerByUUID(uuid string) (*models.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.answers {
		if a.UUID == uuid {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) AnswersByQuestion(questionID uint) ([]models.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var as []models.Answer
	for _, a := range m.answers {
		if a.QuestionID == questionID {
			as = append(as, *a)
		}
	}
	sort.Slice(as, func(i, j int) bool { return as[i].ID < as[j].ID })
	return as, nil
}

func (m *MemoryStore) UpdateAnswer(a *models.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.answers[a.ID]; !ok {
		return ErrNotFound
	}
	cp := *a
	m.answers[a.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteAnswer(a *models.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.answers[a.ID]; !ok {
		return ErrNotFound
	}
	delete(m.answers, a.ID)
	return nil
}
