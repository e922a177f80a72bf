package repository

import "github.com/inventrack/inventrack-api/internal/domain/entity"

// UserRepository persistence port for operator accounts (auth partition).
type UserRepository interface {
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	Save(u *entity.User) error
}
