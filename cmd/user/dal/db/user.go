package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserDao struct {
	db *gorm.DB
}

func NewUserDao(db *gorm.DB) *UserDao {
	return &UserDao{db: db}
}

// CreateUser inserts the user. Duplicate username/email surfaces as gorm.ErrDuplicatedKey.
func (d *UserDao) CreateUser(ctx context.Context, user *model.User) error {
	if err := d.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "create user %s failed", user.Username)
	}
	return nil
}

// GetUserById returns nil when the user does not exist.
func (d *UserDao) GetUserById(ctx context.Context, userId string) (*model.User, error) {
	var user model.User
	err := d.db.WithContext(ctx).Where("id = ?", userId).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get user %s failed", userId)
	}
	return &user, nil
}

// GetUserByLogin looks a user up by username or email, whichever is set.
func (d *UserDao) GetUserByLogin(ctx context.Context, username, email string) (*model.User, error) {
	var user model.User
	tx := d.db.WithContext(ctx)
	if username != "" {
		tx = tx.Where("username = ?", username)
	} else {
		tx = tx.Where("email = ?", email)
	}
	err := tx.First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "get user by login failed")
	}
	return &user, nil
}

func (d *UserDao) UserExists(ctx context.Context, userId string) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "check user %s failed", userId)
	}
	return count > 0, nil
}
