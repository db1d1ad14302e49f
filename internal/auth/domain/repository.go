package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateUser(ctx context.Context, db *gorm.DB, user *User) error
	FindUserByID(ctx context.Context, db *gorm.DB, id int64) (*User, error)
	FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*User, error)
	TouchLastLogin(ctx context.Context, db *gorm.DB, userID int64) error
	UpdatePasswordHash(ctx context.Context, db *gorm.DB, userID int64, hash string) error
	CountUsers(ctx context.Context, db *gorm.DB) (int64, error)

	CreateSession(ctx context.Context, db *gorm.DB, session *Session) error
	FindSession(ctx context.Context, db *gorm.DB, id string) (*Session, error)
	DeleteSession(ctx context.Context, db *gorm.DB, id string) error
	DeleteExpiredSessions(ctx context.Context, db *gorm.DB) error
}
