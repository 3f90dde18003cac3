package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vamshidhar-gudlanarva/quora-stud-project/internal/models"
)

// GormStore implements Store on top of a gorm database handle.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an initialized gorm handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------- users ----------

func (s *GormStore) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *GormStore) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) UserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) UserByUUID(uuid string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("uuid = ?", uuid).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormStore) DeleteUser(u *models.User) error {
	return s.db.Delete(u).Error
}

// ---------- sessions ----------

func (s *GormStore) CreateSession(sess *models.Session) error {
	if err := s.db.Create(sess).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormStore) SessionByToken(token string) (*models.Session, error) {
	var sess models.Session
	if err := s.db.Where("access_token = ?", token).First(&sess).Error; err != nil {
		return nil, translate(err)
	}
	return &sess, nil
}

func (s *GormStore) LogoutSession(token string, at time.Time) (*models.Session, error) {
	// Conditional update keyed on logout_at being null serializes
	// concurrent signouts on the same token.
	res := s.db.Model(&models.Session{}).
		Where("access_token = ? AND logout_at IS NULL", token).
		Updates(map[string]interface{}{"logout_at": at, "expires_at": at})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.SessionByToken(token)
}

// ---------- questions ----------

func (s *GormStore) CreateQuestion(q *models.Question) error {
	return s.db.Create(q).Error
}

func (s *GormStore) QuestionByUUID(uuid string) (*models.Question, error) {
	var q models.Question
	if err := s.db.Where("uuid = ?", uuid).First(&q).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (s *GormStore) QuestionByContent(content string) (*models.Question, error) {
	var q models.Question
	if err := s.db.Where("content = ?", content).First(&q).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (s *GormStore) AllQuestions() ([]models.Question, error) {
	var qs []models.Question
	if err := s.db.Order("id").Find(&qs).Error; err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *GormStore) QuestionsByUser(userID uint) ([]models.Question, error) {
	var qs []models.Question
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&qs).Error; err != nil {
		return nil, err
	}
	return qs, nil
}

func (s *GormStore) UpdateQuestion(q *models.Question) error {
	return s.db.Save(q).Error
}

func (s *GormStore) DeleteQuestion(q *models.Question) error {
	return s.db.Delete(q).Error
}

// ---------- answers ----------

func (s *GormStore) CreateAnswer(a *models.Answer) error {
	return s.db.Create(a).Error
}

func (s *GormStore) AnswerByUUID(uuid string) (*models.Answer, error) {
	var a models.Answer
	if err := s.db.Where("uuid = ?", uuid).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *GormStore) AnswersByQuestion(questionID uint) ([]models.Answer, error) {
	var as []models.Answer
	if err := s.db.Where("question_id = ?", questionID).Order("id").Find(&as).Error; err != nil {
		return nil, err
	}
	return as, nil
}

func (s *GormStore) UpdateAnswer(a *models.Answer) error {
	return s.db.Save(a).Error
}

func (s *GormStore) DeleteAnswer(a *models.Answer) error {
	return s.db.Delete(a).Error
}
