package auth

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"gomessenger/internal/common"
	"gomessenger/internal/user"
)

// AuthService verifies login credentials and brokers registration. The login
// failure kind is uniformly Unauthorized so callers cannot probe which half
// of the credential was wrong.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*user.LoginResult, error)
	Register(ctx context.Context, username, password string) (*user.LoginResult, error)
}

type authService struct {
	userRepo    user.UserRepository
	userService user.UserService
	issuer      *common.TokenIssuer
}

func NewAuthService(userRepo user.UserRepository, userService user.UserService, issuer *common.TokenIssuer) AuthService {
	return &authService{userRepo: userRepo, userService: userService, issuer: issuer}
}

func (s *authService) Login(ctx context.Context, username, password string) (*user.LoginResult, error) {
	log.Printf("Login, (username: %s)", username)

	u, err := s.userRepo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Login failed for username %s: no such user", username)
			return nil, common.Unauthorized("Invalid username")
		}
		return nil, err
	}

	if err := common.CheckPassword(password, u.PasswordHash); err != nil {
		log.Printf("Login failed for username %s: password mismatch", username)
		return nil, common.Unauthorized("Invalid password")
	}

	token, err := s.issuer.CreateToken(u.ID, u.Username)
	if err != nil {
		return nil, err
	}

	return &user.LoginResult{Username: u.Username, Token: token}, nil
}

// Register forwards to the user service unchanged; registration logic lives
// there.
func (s *authService) Register(ctx context.Context, username, password string) (*user.LoginResult, error) {
	log.Printf("Register, (username: %s)", username)

	return s.userService.CreateUser(ctx, username, password)
}
