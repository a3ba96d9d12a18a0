package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/robobooks/robobooks-api/internal/application/dto"
	"github.com/robobooks/robobooks-api/internal/domain"
	"github.com/robobooks/robobooks-api/internal/domain/entity"
	"github.com/robobooks/robobooks-api/internal/domain/repository"
	"github.com/robobooks/robobooks-api/pkg/config"
	"github.com/robobooks/robobooks-api/pkg/jwt"
)

// UseCase registration and login.
type UseCase struct {
	users  repository.UserRepository
	orgs   repository.OrganizationRepository
	jwtCfg config.JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, orgs repository.OrganizationRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, orgs: orgs, jwtCfg: jwtCfg}
}

// Register creates a user in an existing organization. Email must be unique
// within the org.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.OrgID == "" {
		return nil, domain.ErrInvalidInput
	}
	org, err := uc.orgs.GetByID(in.OrgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.users.GetByEmailAndOrg(in.Email, in.OrgID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	switch role {
	case "":
		role = entity.RoleViewer
	case entity.RoleAdmin, entity.RoleAccountant, entity.RoleViewer:
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		OrgID:        in.OrgID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies credentials and issues a signed token. Suspended users
// cannot log in.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrgID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		OrgID:     u.OrgID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
