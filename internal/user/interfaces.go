package user

import "errors"

var ErrNotFound = errors.New("user not found")

type Service interface {
	GetUser(req GetUserRequest) (*GetUserResponse, error)
	GetUserPassword(req GetUserRequest) (*GetUserPasswordResponse, error)
	CreateUser(req *CreateUserRequest) error
}

type Repository interface {
	GetById(id int) (User, error)
	GetByUsername(username string) (User, error)
	Create(user *User) error
}

type GetUserRequest struct {
	ID       int    `json:"id" form:"id" uri:"id"`
	Username string `json:"username" form:"username" uri:"username"`
}

type GetUserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type GetUserPasswordResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Role string

const (
	Seeker Role = "seeker"
	Admin  Role = "admin"
)
