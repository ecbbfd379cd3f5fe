package service

import (
	"errors"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/pkg/validator"
)

var ErrUsernameExists = errors.New("username already exists")

type CreateUserRequest struct {
	Username    string             `json:"username" validate:"required"`
	Password    string             `json:"password" validate:"required,min=6"`
	Name        string             `json:"name" validate:"required"`
	Role        model.UserRole     `json:"role" validate:"required,oneof=admin warehouse_staff viewer"`
	Permissions *model.Permissions `json:"permissions"`
}

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.UserResponse, error)
	GetUsers() ([]model.UserResponse, error)
	GetUser(id int64) (*model.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.UserResponse, error) {
	if verr := validator.FirstError(req); verr != nil {
		return nil, verr
	}

	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUsernameExists
	}

	user := &model.User{
		Username: req.Username,
		Name:     req.Name,
		Role:     req.Role,
	}
	if req.Permissions != nil {
		user.Permissions = *req.Permissions
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) GetUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]model.UserResponse, len(users))
	for i, u := range users {
		out[i] = u.ToResponse()
	}
	return out, nil
}

func (s *userService) GetUser(id int64) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}
