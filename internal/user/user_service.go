package user

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"gomessenger/internal/common"
	"gomessenger/internal/dbmysql"
)

// UserView is the externally visible projection of a user; the password hash
// never leaves this package.
type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult pairs a username with a freshly issued session token. Returned
// by registration and login.
type LoginResult struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type UserService interface {
	GetUser(ctx context.Context, id uint) (*UserView, error)
	GetUsers(ctx context.Context) ([]*UserView, error)
	CreateUser(ctx context.Context, username, password string) (*LoginResult, error)
}

type userService struct {
	userRepo UserRepository
	issuer   *common.TokenIssuer
}

func NewUserService(userRepo UserRepository, issuer *common.TokenIssuer) UserService {
	return &userService{userRepo: userRepo, issuer: issuer}
}

func (s *userService) GetUser(ctx context.Context, id uint) (*UserView, error) {
	log.Printf("GetUser, (id: %d)", id)

	user, err := s.userRepo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NotFound("User with id: %d not found", id)
		}
		return nil, err
	}

	return toView(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]*UserView, error) {
	log.Printf("GetUsers")

	users, err := s.userRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toView(u))
	}
	return views, nil
}

func (s *userService) CreateUser(ctx context.Context, username, password string) (*LoginResult, error) {
	log.Printf("CreateUser, (username: %s)", username)

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Printf("Username %s is taken", username)
		return nil, common.Conflict("Username is taken")
	}

	if err := common.ValidatePassword(password); err != nil {
		return nil, common.Conflict("%s", err.Error())
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, common.Conflict("%s", err.Error())
	}

	user := &dbmysql.User{
		Username:     username,
		PasswordHash: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, common.Conflict("%s", err.Error())
	}

	token, err := s.issuer.CreateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Username: user.Username, Token: token}, nil
}

func toView(u *dbmysql.User) *UserView {
	return &UserView{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
