package repository

import "github.com/robobooks/robobooks-api/internal/domain/entity"

// UserRepository defines the persistence port for users.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndOrg(email, orgID string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
