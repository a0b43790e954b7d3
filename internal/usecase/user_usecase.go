package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pltp-shift-backend/config"
	"pltp-shift-backend/internal/model"
	"pltp-shift-backend/internal/repository"
)

var ErrInvalidCredentials = errors.New("username atau password salah")

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(nama, username, password, role string) error {
	// Hash password sebelum disimpan
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if role != "admin" {
		role = "operator"
	}

	user := model.User{
		Nama:     nama,
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	return u.repo.Create(&user)
}

func (u *UserUsecase) Login(username, password string) (string, *model.User, error) {
	user, err := u.repo.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// Token expired dalam 24 jam
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.JWTSecret()))
	if err != nil {
		return "", nil, err
	}

	return t, user, nil
}
