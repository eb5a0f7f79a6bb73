package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/config"
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/repository/unitofwork"
	"swadesh-ai-be/pkg/events"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	DevUserID = "dev-user-001"
)

type IAuthService interface {
	GoogleEnabled() bool
	LoginURL(state string) string
	HandleGoogleCallback(ctx context.Context, code string) (*dto.LoginResult, error)
	// DevLogin signs in a fixed local user when Google is not configured.
	DevLogin(ctx context.Context) (*dto.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessions    ISessionService
	publisher   events.Publisher
	logger      logger.ILogger
	googleConf  *oauth2.Config // nil when Google sign-in is off
	userInfoURL string
}

func NewAuthService(cfg *config.Config, uowFactory unitofwork.RepositoryFactory, sessions ISessionService, publisher events.Publisher, log logger.ILogger) IAuthService {
	s := &authService{
		uowFactory:  uowFactory,
		sessions:    sessions,
		publisher:   publisher,
		logger:      log,
		userInfoURL: googleUserInfoURL,
	}

	if cfg.HasGoogleOAuth() {
		s.googleConf = &oauth2.Config{
			ClientID:     cfg.OAuth.GoogleClientID,
			ClientSecret: cfg.OAuth.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL(),
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
		log.Info("AUTH", "Google sign-in enabled", map[string]interface{}{"redirect_url": s.googleConf.RedirectURL})
	}

	return s
}

func (s *authService) GoogleEnabled() bool {
	return s.googleConf != nil
}

func (s *authService) LoginURL(state string) string {
	if s.googleConf == nil {
		return ""
	}
	return s.googleConf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *authService) HandleGoogleCallback(ctx context.Context, code string) (*dto.LoginResult, error) {
	if s.googleConf == nil {
		return nil, apperror.Unavailable("Google sign-in is not configured")
	}
	if code == "" {
		return nil, apperror.Validation("Missing authorization code")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("AUTH", "Code exchange failed", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Unauthorized()
	}

	profile, err := s.fetchGoogleProfile(ctx, s.googleConf.Client(ctx, token))
	if err != nil {
		s.logger.Error("AUTH", "Failed to fetch Google profile", map[string]interface{}{"error": err.Error()})
		return nil, apperror.Unauthorized()
	}

	user := &entity.User{
		Id:        profile.ID,
		FirstName: profile.GivenName,
		LastName:  profile.FamilyName,
	}
	if profile.Email != "" {
		user.Email = &profile.Email
	}
	if profile.Picture != "" {
		user.ProfileImageURL = &profile.Picture
	}

	return s.signIn(ctx, user, "google")
}

func (s *authService) fetchGoogleProfile(ctx context.Context, client *http.Client) (*dto.GoogleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var profile dto.GoogleProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, err
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("userinfo response has no id")
	}
	return &profile, nil
}

func (s *authService) DevLogin(ctx context.Context) (*dto.LoginResult, error) {
	email := "dev@swadesh.local"
	return s.signIn(ctx, &entity.User{
		Id:        DevUserID,
		Email:     &email,
		FirstName: "Dev",
		LastName:  "User",
	}, "dev")
}

// signIn upserts the user row and opens a session for it.
func (s *authService) signIn(ctx context.Context, user *entity.User, method string) (*dto.LoginResult, error) {
	if s.uowFactory == nil {
		return nil, apperror.Unavailable("Sign-in requires a database")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().Upsert(ctx, user); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	token, expiresAt, err := s.sessions.Issue(ctx, user.Id)
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	event := events.NewUserEvent(events.UserSignedIn, user.Id, map[string]interface{}{"method": method})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("AUTH", "Failed to publish activity event", map[string]interface{}{
			"event": events.UserSignedIn,
			"error": err.Error(),
		})
	}

	s.logger.Info("AUTH", "User signed in", map[string]interface{}{"user_id": user.Id, "method": method})
	return &dto.LoginResult{User: toUserResponse(user), Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	session, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		return apperror.StorageUnavailable(err)
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return apperror.StorageUnavailable(err)
	}

	if session != nil {
		if err := s.publisher.Publish(ctx, events.NewUserEvent(events.UserSignedOut, session.UserId, nil)); err != nil {
			s.logger.Warn("AUTH", "Failed to publish activity event", map[string]interface{}{
				"event": events.UserSignedOut,
				"error": err.Error(),
			})
		}
	}
	return nil
}
