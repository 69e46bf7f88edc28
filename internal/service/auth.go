package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/innovelous/agency/internal/model"
	"github.com/innovelous/agency/internal/repository"
	"github.com/innovelous/agency/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName holds the signed admin session token.
const SessionCookieName = "admin_session"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService is the session/auth gate for the admin dashboard. The singular
// credential record lives in the settings store under a well-known key; the
// password is bcrypt-hashed on every path, login and change alike.
type AuthService struct {
	settingsRepository repository.SettingsRepository
	jwtSecret          string
	isProduction       bool
	sessionExpiry      time.Duration
}

func NewAuthService(settingsRepository repository.SettingsRepository, jwtSecret string, isProduction bool, sessionExpiry time.Duration) *AuthService {
	return &AuthService{
		settingsRepository: settingsRepository,
		jwtSecret:          jwtSecret,
		isProduction:       isProduction,
		sessionExpiry:      sessionExpiry,
	}
}

// credentials loads the stored admin credential record.
func (s *AuthService) credentials() (*model.AdminCredentials, error) {
	setting, err := s.settingsRepository.Get(model.SettingAdminCredentials)
	if err != nil {
		return nil, err
	}

	creds := &model.AdminCredentials{}
	err = json.Unmarshal([]byte(setting.Value), creds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode admin credentials: %w", err)
	}

	return creds, nil
}

func (s *AuthService) saveCredentials(creds *model.AdminCredentials) error {
	value, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	return s.settingsRepository.Upsert(&model.Setting{
		Name:  model.SettingAdminCredentials,
		Value: string(value),
	})
}

// Login checks the supplied credentials against the stored record. It fails
// closed: a missing record or any repository error yields false, never an
// error to the caller.
func (s *AuthService) Login(email, password string) bool {
	email = strings.TrimSpace(strings.ToLower(email))

	creds, err := s.credentials()
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			slog.Warn("login attempted with no admin credentials on record")
		} else {
			slog.Error("failed to load admin credentials", "error", err)
		}
		return false
	}

	if email != strings.ToLower(creds.Email) {
		return false
	}

	err = bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password))
	return err == nil
}

// ChangePassword verifies the current password and stores a bcrypt hash of
// the new one via settings upsert.
func (s *AuthService) ChangePassword(currentPassword, newPassword string) error {
	creds, err := s.credentials()
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to load admin credentials: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(currentPassword))
	if err != nil {
		return ErrInvalidCredentials
	}

	err = validation.ValidatePassword(newPassword)
	if err != nil {
		return validationError(err.Error())
	}

	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	creds.PasswordHash = hash
	return s.saveCredentials(creds)
}

// SetCredentials writes the admin credential record, hashing the password.
// Used by cmd/seed and first-run setup.
func (s *AuthService) SetCredentials(email, password string) error {
	err := validation.ValidateEmail(email)
	if err != nil {
		return validationError(err.Error())
	}
	err = validation.ValidatePassword(password)
	if err != nil {
		return validationError(err.Error())
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.saveCredentials(&model.AdminCredentials{
		Email:        strings.TrimSpace(strings.ToLower(email)),
		PasswordHash: hash,
	})
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) GenerateSessionToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(s.sessionExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifySession validates a session token and returns the decoded session.
func (s *AuthService) VerifySession(tokenString string) (*model.AdminSession, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	session := &model.AdminSession{Email: email}
	if iat, ok := claims["iat"].(float64); ok {
		session.IssuedAt = time.Unix(int64(iat), 0)
	}

	return session, nil
}

func (s *AuthService) SessionExpiry() time.Duration {
	return s.sessionExpiry
}

func (s *AuthService) SetSessionCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
