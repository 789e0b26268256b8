package auth

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 8 * time.Hour

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrBadCredential = errors.New("authentication failed")
)

type Service struct {
	store  AccountStore
	secret []byte
}

func NewService(db *sql.DB, secret []byte) *Service {
	return &Service{store: NewStore(db), secret: secret}
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, name string, err error)
	Register(ctx context.Context, name, email, password string) error
	ChangePassword(ctx context.Context, accountID int64, current, next string) error
}

func (s *Service) Login(ctx context.Context, email, password string) (string, string, error) {
	acct, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", "", err
	}
	if acct == nil {
		return "", "", ErrBadCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrBadCredential
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatInt(acct.ID, 10),
		"email": acct.Email,
		"name":  acct.Name,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return tokenString, acct.Name, nil
}

func (s *Service) Register(ctx context.Context, name, email, password string) error {
	email = normalizeEmail(email)
	exists, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists != nil {
		return ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.store.Create(ctx, &Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	return err
}

func (s *Service) ChangePassword(ctx context.Context, accountID int64, current, next string) error {
	acct, err := s.store.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acct == nil {
		return ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(current)); err != nil {
		return ErrBadCredential
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	n, err := s.store.UpdatePasswordHash(ctx, accountID, string(hash))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
