package admin

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	adminRepo "tourtravels/database/repository/admin"
	"tourtravels/models"
	"tourtravels/utils"
)

// TokenTTL is the admin session lifetime; the JWT expiry and the redis
// session TTL are kept equal.
const TokenTTL = 24 * time.Hour

var (
	ErrAdminExists        = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DefaultAdminService is the production AdminService.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}

func (s *DefaultAdminService) Signup(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return "", ErrAdminExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}

	acct := &models.Admin{Email: email, Password: string(hashed)}
	if err := s.Repo.Create(ctx, acct); err != nil {
		return "", err
	}
	return s.issueToken(acct)
}

func (s *DefaultAdminService) Login(ctx context.Context, email, password string) (string, error) {
	acct, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(acct)
}

func (s *DefaultAdminService) Logout(ctx context.Context, token string) error {
	return utils.DeleteAdminSession(utils.GetAuthCacheClient(), utils.HashToken(token))
}

// issueToken signs a JWT and registers its hash in the session cache so
// logout can revoke it before expiry.
func (s *DefaultAdminService) issueToken(acct *models.Admin) (string, error) {
	token, err := utils.GenerateToken(acct.ID, acct.Email, TokenTTL)
	if err != nil {
		return "", err
	}
	if err := utils.SaveAdminSession(utils.GetAuthCacheClient(), utils.HashToken(token), acct.ID, TokenTTL); err != nil {
		return "", err
	}
	return token, nil
}
