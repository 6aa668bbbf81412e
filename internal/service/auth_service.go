package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/isrcorgin/ISRC-Backend/internal/auth"
	"github.com/isrcorgin/ISRC-Backend/internal/identity"
	"github.com/isrcorgin/ISRC-Backend/internal/mailer"
	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"

	"go.uber.org/zap"
)

// Session is what a successful registration or login hands back to the
// HTTP layer.
type Session struct {
	Token         string
	UID           string
	EmailVerified bool
}

// AuthService drives registration, login and the email verification /
// password reset flows for both credential namespaces.
type AuthService interface {
	Register(ctx context.Context, namespace, email, password string) (*Session, error)
	Login(ctx context.Context, namespace, email, password string) (*Session, error)
	ForgotPassword(ctx context.Context, namespace, email string) error
	ResendVerification(ctx context.Context, namespace, email string) error
	CheckVerification(ctx context.Context, namespace, email, password string) (bool, error)
	ConfirmEmail(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	provider identity.Provider
	users    repo.UserRepository
	admins   repo.AdminRepository
	mail     mailer.Mailer
	tokens   *auth.TokenIssuer
	baseURL  string
	logger   *zap.Logger
}

func NewAuthService(provider identity.Provider, users repo.UserRepository, admins repo.AdminRepository, mail mailer.Mailer, tokens *auth.TokenIssuer, baseURL string, logger *zap.Logger) AuthService {
	return &authService{
		provider: provider,
		users:    users,
		admins:   admins,
		mail:     mail,
		tokens:   tokens,
		baseURL:  baseURL,
		logger:   logger,
	}
}

func (s *authService) Register(ctx context.Context, namespace, email, password string) (*Session, error) {
	account, err := s.provider.Register(ctx, namespace, email, password)
	if err != nil {
		return nil, err
	}

	// Mirror {uid, email} into the matching profile collection.
	switch namespace {
	case model.NamespaceAdmin:
		err = s.admins.CreateMirror(ctx, account.UID, account.Email)
	default:
		err = s.users.CreateMirror(ctx, account.UID, account.Email)
	}
	if err != nil && !errors.Is(err, repo.ErrAlreadyExists) {
		return nil, fmt.Errorf("mirroring account: %w", err)
	}

	if err := s.sendVerification(ctx, account.UID, account.Email); err != nil {
		// Registration already happened; a mail failure should not undo it.
		s.logger.Warn("verification email not sent",
			zap.String("uid", account.UID), zap.Error(err))
	}

	token, err := s.tokens.Sign(account.UID, namespace)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, UID: account.UID, EmailVerified: account.EmailVerified}, nil
}

func (s *authService) Login(ctx context.Context, namespace, email, password string) (*Session, error) {
	account, err := s.provider.Authenticate(ctx, namespace, email, password)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.Sign(account.UID, namespace)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, UID: account.UID, EmailVerified: account.EmailVerified}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, namespace, email string) error {
	account, token, err := s.provider.StartPasswordReset(ctx, namespace, email)
	if err != nil {
		return err
	}
	link := s.baseURL + "/reset-password?token=" + token
	return s.mail.SendPasswordReset(ctx, account.Email, link)
}

func (s *authService) ResendVerification(ctx context.Context, namespace, email string) error {
	account, err := s.provider.FindByEmail(ctx, namespace, email)
	if err != nil {
		return err
	}
	return s.sendVerification(ctx, account.UID, account.Email)
}

func (s *authService) CheckVerification(ctx context.Context, namespace, email, password string) (bool, error) {
	account, err := s.provider.Authenticate(ctx, namespace, email, password)
	if err != nil {
		return false, err
	}
	return account.EmailVerified, nil
}

func (s *authService) ConfirmEmail(ctx context.Context, token string) error {
	return s.provider.ConfirmVerification(ctx, token)
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.provider.ResetPassword(ctx, token, newPassword)
}

func (s *authService) sendVerification(ctx context.Context, uid, email string) error {
	token, err := s.provider.StartVerification(ctx, uid)
	if err != nil {
		return err
	}
	link := s.baseURL + "/api/confirm-email?token=" + token
	return s.mail.SendVerification(ctx, email, link)
}
