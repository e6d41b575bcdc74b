// Package seed provides helpers to create default and demo data for the
// application database. Demo helpers are intended for development and
// testing only.
package seed

import (
	"context"
	"errors"

	"blogapi/internal/auth"
	"blogapi/internal/middleware"
	"blogapi/internal/models"

	"gorm.io/gorm"
)

// Default user credentials available out of the box in development.
const (
	DefaultUserName     = "Test User"
	DefaultUserEmail    = "user@test.com"
	DefaultUserPassword = "password"
)

// EnsureDefaultUser creates the default login user if it does not exist
// yet. Safe to call on every startup.
func EnsureDefaultUser(ctx context.Context, db *gorm.DB) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).Where("email = ?", DefaultUserEmail).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(DefaultUserPassword)
	if err != nil {
		return nil, err
	}
	user = models.User{
		Name:     DefaultUserName,
		Email:    DefaultUserEmail,
		Password: hash,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	middleware.Logger.Info("Default user created", "email", DefaultUserEmail)
	return &user, nil
}
