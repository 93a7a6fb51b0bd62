package user

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type ServiceImpl struct {
	repo Repository
}

func NewServiceImpl(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetUser(req GetUserRequest) (*GetUserResponse, error) {
	user, err := s.repo.GetById(req.ID)
	if user == (User{}) {
		user, err = s.repo.GetByUsername(req.Username)
	}
	if err != nil {
		return nil, ErrNotFound
	}
	return &GetUserResponse{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

func (s *ServiceImpl) GetUserPassword(req GetUserRequest) (*GetUserPasswordResponse, error) {
	user, err := s.repo.GetById(req.ID)
	if user == (User{}) {
		user, err = s.repo.GetByUsername(req.Username)
	}
	if err != nil {
		return nil, ErrNotFound
	}
	return &GetUserPasswordResponse{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
		Role:     user.Role,
	}, nil
}

func (s *ServiceImpl) CreateUser(req *CreateUserRequest) error {
	existing, err := s.repo.GetByUsername(req.Username)
	if existing != (User{}) {
		return errors.New("user already exists")
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return errors.New("failed to check if user exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	if err := s.repo.Create(&User{
		Username: req.Username,
		Password: string(hashedPassword),
		Role:     Seeker,
	}); err != nil {
		return errors.New("failed to create user")
	}
	return nil
}
