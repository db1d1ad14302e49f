// Package domain contains authentication types.
package domain

import "time"

// Roles, in increasing privilege order.
const (
	RoleCustomer = "customer"
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string     `json:"email" gorm:"type:varchar(120);not null"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255);not null"`
	Role         string     `json:"role" gorm:"type:varchar(20);not null;default:'customer'"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (User) TableName() string { return "users" }

// CanOperate reports whether the role may manage reference and tariff data.
func (u *User) CanOperate() bool {
	return u.Role == RoleAdmin || u.Role == RoleOperator
}

type Session struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Session) TableName() string { return "sessions" }
