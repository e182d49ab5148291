package services

import (
	"errors"

	"github.com/yeremiapane/food-order-api/models"
	"github.com/yeremiapane/food-order-api/repository"
	"github.com/yeremiapane/food-order-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the strength the registration path has always used.
const bcryptCost = 12

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

// Register is the canonical user write path: it hashes the credential and
// defaults the role to CUSTOMER.
func (s *UserService) Register(username, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Message: "username and password are required"}
	}

	if _, err := s.Repo.FindByUsername(username); err == nil {
		return nil, &BadRequestError{Message: "username already taken"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = models.RoleCustomer
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.Repo.Save(user); err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Username, user.Role)
	return user, nil
}

// SaveUser is the second write path kept alongside Register. It stores the
// record as given, without hashing; seeding uses it with a pre-hashed
// credential.
func (s *UserService) SaveUser(user *models.User) (*models.User, error) {
	if user == nil {
		return nil, &ValidationError{Message: "User cannot be null"}
	}
	if err := s.Repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Verify checks the credential and returns a signed token on success.
func (s *UserService) Verify(username, password string) (string, error) {
	user, err := s.Repo.FindByUsername(username)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return utils.GenerateToken(user.ID, user.Role)
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.FindAll()
}
