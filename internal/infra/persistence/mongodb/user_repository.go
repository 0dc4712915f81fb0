package mongodb

import (
	"context"
	"time"

	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const emailIndexName = "email_unique"

// userDocument mirrors one document of the users collection. The digest lives
// under "password" to stay readable by records written before this service.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// userRepository implements the domain.UserRepository interface on a MongoDB collection.
type userRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(coll *mongo.Collection) repository.UserRepository {
	return &userRepository{
		coll: coll,
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// EnsureIndexes creates the unique email index the store relies on for
// one-account-per-email.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create users email index")
	}

	return nil
}

// Create inserts a new user document and copies the generated ID and timestamps back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := repo.now()
	doc := fromUserDomain(user)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt

	return nil
}

// FindByID retrieves a single user by its hex ObjectID. A malformed ID cannot
// match any document and is reported as not found.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, details string) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	return toUserDomain(&doc), nil
}

// FindAll retrieves every user ordered by creation time.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, toUserDomain(&docs[i]))
	}

	return users, nil
}

// Update applies the patch with $set and returns the document as it is after the write.
func (repo *userRepository) Update(ctx context.Context, id string, patch *entity.UserPatch) (*entity.User, error) {
	if patch.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	update := bson.M{"$set": buildSetDocument(patch, repo.now())}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	if err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return toUserDomain(&doc), nil
}

// Delete removes the user document. Deleting an absent user reports not found.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if res.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func buildSetDocument(patch *entity.UserPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		set["password"] = *patch.PasswordHash
	}

	return set
}

// --- Mapper Functions ---

func toUserDomain(doc *userDocument) *entity.User {
	if doc == nil {
		return nil
	}

	return &entity.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *userDocument {
	if user == nil {
		return nil
	}

	return &userDocument{
		Name:     user.Name,
		Email:    user.Email,
		Password: user.PasswordHash,
	}
}
