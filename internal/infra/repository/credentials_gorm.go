package repository

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/restoservice/repair-admin/internal/models"
	"github.com/restoservice/repair-admin/internal/store"
)

// GormCredentialChecker validates logins against stored bcrypt hashes.
type GormCredentialChecker struct {
	db *gorm.DB
}

func NewGormCredentialChecker(db *gorm.DB) *GormCredentialChecker {
	return &GormCredentialChecker{db: db}
}

func (c *GormCredentialChecker) Check(
	ctx context.Context,
	email, password string,
) (*models.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := c.db.WithContext(ctx).
		Preload("Branch").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, store.ErrInvalidCredentials
	}

	return &user, nil
}

var _ store.CredentialChecker = (*GormCredentialChecker)(nil)
