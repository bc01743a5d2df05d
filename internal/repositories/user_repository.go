package repositories

import (
	"github.com/anonto42/notifly/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user directory operations.
// The dispatch pipeline only ever reads; ReplaceAll exists solely for the
// startup seed.
type UserRepository interface {
	GetUserByUserID(userID string) (*models.User, error)
	GetUsers() ([]models.User, error)
	ReplaceAll(users []models.User) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// GetUserByUserID retrieves a user by its external user ID from PostgreSQL.
// Returns gorm.ErrRecordNotFound when no such user exists.
func (r *PostgresUserRepository) GetUserByUserID(userID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers retrieves all users from PostgreSQL
func (r *PostgresUserRepository) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ReplaceAll replaces the entire directory contents with the given users.
// Runs in a transaction so the directory is never observed half-seeded.
func (r *PostgresUserRepository) ReplaceAll(users []models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.User{}).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.Create(&users).Error
	})
}
