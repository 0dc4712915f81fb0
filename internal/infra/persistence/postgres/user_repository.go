package postgres

import (
	"context"

	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/errors"
	"account/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user entity and copies the generated ID and timestamps back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID.String()
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their UUID. Anything that is not a UUID
// cannot match a row and is reported as not found.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.first(ctx, "failed to find user by id", "id = ?", uid)
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by email", "email = ?", email)
}

func (repo *userRepository) first(ctx context.Context, details string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every user ordered by creation time.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&userMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// Update applies the patch in a single UPDATE ... RETURNING statement.
func (repo *userRepository) Update(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error) {
	if patch.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	result := repo.db.WithContext(ctx).
		Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ?", uid).
		Updates(buildUpdateColumns(patch))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

// Delete removes the user row. Deleting an absent user reports not found.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	result := repo.db.WithContext(ctx).Where("id = ?", uid).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// buildUpdateColumns maps the set fields of a patch to column names.
// updated_at is added by GORM because the model declares UpdatedAt.
func buildUpdateColumns(patch *entity.UserPatch) map[string]any {
	columns := make(map[string]any, 3)
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Email != nil {
		columns["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		columns["password_hash"] = *patch.PasswordHash
	}

	return columns
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID.String(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain leaves ID unset for users that have not been stored yet so
// the database default generates one.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if uid, err := uuid.Parse(data.ID); err == nil {
		userM.ID = uid
	}

	return userM
}
