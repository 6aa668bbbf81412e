// Package identity implements the email/password identity provider backing
// both participant and admin credential namespaces.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/isrcorgin/ISRC-Backend/internal/auth"
	"github.com/isrcorgin/ISRC-Backend/internal/db"
	"github.com/isrcorgin/ISRC-Backend/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrEmailInUse         = errors.New("identity: email is already in use")
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
	ErrAccountNotFound    = errors.New("identity: account not found")
	ErrAlreadyVerified    = errors.New("identity: email is already verified")
	ErrTokenInvalid       = errors.New("identity: unknown or expired token")
)

// Provider manages accounts, password checks and the verification/reset
// token lifecycle. All methods are namespace-scoped; the same email may hold
// independent participant and admin accounts.
type Provider interface {
	Register(ctx context.Context, namespace, email, password string) (*model.Account, error)
	Authenticate(ctx context.Context, namespace, email, password string) (*model.Account, error)
	FindByEmail(ctx context.Context, namespace, email string) (*model.Account, error)
	StartVerification(ctx context.Context, uid string) (string, error)
	ConfirmVerification(ctx context.Context, token string) error
	StartPasswordReset(ctx context.Context, namespace, email string) (*model.Account, string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type provider struct {
	accounts *db.Repository[model.Account]
}

func NewProvider(accounts *db.Repository[model.Account]) Provider {
	return &provider{accounts: accounts}
}

func (p *provider) Register(ctx context.Context, namespace, email, password string) (*model.Account, error) {
	taken, err := p.accounts.Exists(ctx, db.NewFilter().Eq("namespace", namespace).Eq("email", email).Build())
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if taken {
		return nil, ErrEmailInUse
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := model.Account{
		UID:          uuid.NewString(),
		Namespace:    namespace,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := p.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}
	return &account, nil
}

func (p *provider) Authenticate(ctx context.Context, namespace, email, password string) (*model.Account, error) {
	account, err := p.FindByEmail(ctx, namespace, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (p *provider) FindByEmail(ctx context.Context, namespace, email string) (*model.Account, error) {
	account, err := p.accounts.FindOne(ctx, db.NewFilter().Eq("namespace", namespace).Eq("email", email).Build())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (p *provider) StartVerification(ctx context.Context, uid string) (string, error) {
	account, err := p.accounts.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrAccountNotFound
		}
		return "", err
	}
	if account.EmailVerified {
		return "", ErrAlreadyVerified
	}

	token := uuid.NewString()
	if _, err := p.accounts.SetFields(ctx, uid, map[string]interface{}{"verifyToken": token}); err != nil {
		return "", err
	}
	return token, nil
}

func (p *provider) ConfirmVerification(ctx context.Context, token string) error {
	if token == "" {
		return ErrTokenInvalid
	}
	account, err := p.accounts.FindOne(ctx, db.NewFilter().Eq("verifyToken", token).Build())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTokenInvalid
		}
		return err
	}
	_, err = p.accounts.SetFields(ctx, account.UID, map[string]interface{}{
		"emailVerified": true,
		"verifyToken":   "",
	})
	return err
}

func (p *provider) StartPasswordReset(ctx context.Context, namespace, email string) (*model.Account, string, error) {
	account, err := p.FindByEmail(ctx, namespace, email)
	if err != nil {
		return nil, "", err
	}
	token := uuid.NewString()
	if _, err := p.accounts.SetFields(ctx, account.UID, map[string]interface{}{"resetToken": token}); err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (p *provider) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrTokenInvalid
	}
	account, err := p.accounts.FindOne(ctx, db.NewFilter().Eq("resetToken", token).Build())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTokenInvalid
		}
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	_, err = p.accounts.SetFields(ctx, account.UID, map[string]interface{}{
		"passwordHash": hash,
		"resetToken":   "",
	})
	return err
}
