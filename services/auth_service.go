package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ColdCodePlay/FoodFusion/entity"
	"github.com/ColdCodePlay/FoodFusion/repository"
	"github.com/ColdCodePlay/FoodFusion/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login. Identity is deliberately minimal: it
// exists so order history can demand a real user instead of the guest
// sentinel.
type AuthService struct {
	Store     repository.Store
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(store repository.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Store: store, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Register creates a user and returns it with a fresh token.
func (s *AuthService) Register(in *RegisterIn) (string, *entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" {
		return "", nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	_, err := s.Store.GetUserByUsername(username)
	if err == nil {
		return "", nil, fmt.Errorf("%w: username already taken", ErrValidation)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
	}
	if err := s.Store.CreateUser(user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(UserIDString(user.ID), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies credentials and issues a token. Wrong username and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.Store.GetUserByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := utils.GenerateToken(UserIDString(user.ID), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me resolves the token identity back to the stored user.
func (s *AuthService) Me(userID string) (*entity.User, error) {
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return nil, ErrUnauthorized
	}
	u, err := s.Store.GetUser(uint(id))
	if err != nil {
		return nil, storeErr(err)
	}
	return u, nil
}

// UserIDString is the string identity carts and orders key on; it matches the
// guest sentinel's type.
func UserIDString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
