package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	AdminRole Role = "admin"
	UserRole  Role = "user"
)

type User struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id" validate:"omitempty"`
	Username    string    `json:"username" db:"username" validate:"required,lte=30"`
	Email       string    `json:"email" db:"email" validate:"required,email,lte=60"`
	Password    string    `json:"password,omitempty" db:"password" validate:"required,min=8"`
	DisplayName string    `json:"display_name" db:"display_name" validate:"omitempty,lte=50"`
	AvatarURL   string    `json:"avatar_url,omitempty" db:"avatar_url" validate:"omitempty,lte=500"`
	Role        Role      `json:"role" db:"role" validate:"omitempty,oneof=admin user,lte=10"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type UserWithToken struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (u *User) SanitizePassword() {
	u.Password = ""
}

func (u *User) HashPassword() error {
	hashedPass, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %v", err)
	}
	u.Password = string(hashedPass)
	return nil
}

func (u *User) ComparePassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return fmt.Errorf("error comparing password: %v", err)
	}
	return nil
}

func (u *User) PrepareCreate() error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if !isValidEmail(u.Email) {
		return fmt.Errorf("invalid email format")
	}

	u.Password = strings.TrimSpace(u.Password)
	if err := u.HashPassword(); err != nil {
		return err
	}

	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}

	if u.Role != "" {
		switch u.Role {
		case UserRole, AdminRole:

		default:
			return fmt.Errorf("invalid role: %s", u.Role)
		}
	} else {
		u.Role = UserRole
	}
	return nil
}

func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	match, err := regexp.MatchString(pattern, email)
	return err == nil && match
}
