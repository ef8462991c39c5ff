package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID                string    `gorm:"primaryKey;size:36"`
	UserName          string    `gorm:"size:255"`
	Phone             string    `gorm:"uniqueIndex;size:32"`
	Email             string    `gorm:"uniqueIndex;size:255"`
	PasswordHash      string    `gorm:"column:password"`
	ProfilePictureURL string    `gorm:"size:512"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. The id is generated here, at
// creation, and never changes afterwards. Uniqueness violations surface as a
// Conflict as a second line of defense behind the use-case checks.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Conflict("Email or phone already in use by another user.")
		}
		return err
	}
	return nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository. Only profile fields are written;
// the password column is owned by UpdatePassword.
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"user_name":           user.UserName,
		"email":               user.Email,
		"profile_picture_url": user.ProfilePictureURL,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, domain.Conflict("Email already in use by another user.")
		}
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Update("password", passwordHash)
	return result.RowsAffected, result.Error
}

// Delete implements domain.UserRepository. Deleting a missing row reports
// zero affected records with no error.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBUser{})
	return result.RowsAffected, result.Error
}

// EmailInUse implements domain.UserRepository
func (r *UserRepositoryImpl) EmailInUse(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

// PhoneInUse implements domain.UserRepository
func (r *UserRepositoryImpl) PhoneInUse(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, "phone = ?", phone)
}

func (r *UserRepositoryImpl) exists(ctx context.Context, query string, arg string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where(query, arg).Count(&count).Error
	return count > 0, err
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                user.ID,
		UserName:          user.UserName,
		Phone:             user.Phone,
		Email:             user.Email,
		PasswordHash:      user.PasswordHash,
		ProfilePictureURL: user.ProfilePictureURL,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                dbUser.ID,
		UserName:          dbUser.UserName,
		Phone:             dbUser.Phone,
		Email:             dbUser.Email,
		PasswordHash:      dbUser.PasswordHash,
		ProfilePictureURL: dbUser.ProfilePictureURL,
		CreatedAt:         dbUser.CreatedAt,
		UpdatedAt:         dbUser.UpdatedAt,
	}
}
