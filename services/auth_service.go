package services

import (
	"errors"

	"github.com/TaniaW777/zenfit/models"
	"github.com/TaniaW777/zenfit/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db     *gorm.DB
	hasher *utils.PasswordHasher
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, hasher *utils.PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{db: db, hasher: hasher, tokens: tokens}
}

// Register creates the user and logs them straight in, returning the
// stored record plus a fresh token. Email uniqueness rides on the
// unique index, so two concurrent registrations cannot both get in.
func (s *AuthService) Register(email, password, firstName, lastName string) (*models.User, string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login checks the password against the stored hash. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Check(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
