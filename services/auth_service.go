package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"property-manager/config"
	"property-manager/models"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// AuthService exchanges Google credentials for a local session. The rest of
// the application only ever sees the resulting opaque user ID.
type AuthService struct {
	repo         AuthRepository
	sessionStore SessionStore
}

func NewAuthService(repo AuthRepository, sessionStore SessionStore) *AuthService {
	return &AuthService{repo: repo, sessionStore: sessionStore}
}

// UserInfo represents user information from the identity provider
type UserInfo struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// LoginWithIDToken validates a Google ID token and creates a session keyed
// by the token subject.
func (as *AuthService) LoginWithIDToken(rawToken string) (*models.Session, error) {
	payload, err := idtoken.Validate(context.Background(), rawToken, config.AppConfig.GoogleClientID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	info := UserInfo{
		Subject: payload.Subject,
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
		Picture: claimString(payload.Claims, "picture"),
	}
	if info.Subject == "" {
		return nil, ErrInvalidUserInfo
	}

	return as.establishSession(info)
}

// LoginWithAccessToken resolves an OAuth access token to the user's profile
// via the userinfo endpoint. Kept for clients that only hold an access
// token.
func (as *AuthService) LoginWithAccessToken(accessToken string) (*models.Session, error) {
	info, err := as.fetchUserInfo(accessToken)
	if err != nil {
		return nil, err
	}

	return as.establishSession(info)
}

func (as *AuthService) Logout(sessionID string) {
	_ = as.sessionStore.Delete(sessionID)
}

func (as *AuthService) GetSessionInfo(sessionID string) (*models.Session, error) {
	sess, err := as.sessionStore.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (as *AuthService) establishSession(info UserInfo) (*models.Session, error) {
	user := &models.User{
		ID:          info.Subject,
		Email:       info.Email,
		Name:        info.Name,
		Picture:     info.Picture,
		CreatedAt:   time.Now(),
		LastLoginAt: time.Now(),
	}
	if err := as.repo.UpsertUser(user); err != nil {
		return nil, err
	}

	return as.sessionStore.Create(user.ID, user.Email, user.Name, user.Picture)
}

func (as *AuthService) fetchUserInfo(accessToken string) (UserInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		return UserInfo{}, ErrInvalidToken
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, ErrInvalidToken
	}

	var body struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return UserInfo{}, ErrInvalidUserInfo
	}
	if body.Sub == "" {
		return UserInfo{}, ErrInvalidUserInfo
	}

	return UserInfo{Subject: body.Sub, Email: body.Email, Name: body.Name, Picture: body.Picture}, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
