package mongodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserDb struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Role         string             `json:"role" bson:"role"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (db *DB) GetUserById(ctx context.Context, id primitive.ObjectID) (UserDb, error) {
	return findById[UserDb](ctx, db.Collection(UsersCollection), id)
}

// GetUserByEmail matches the email case-insensitively, the same way the
// unique email index compares values.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (UserDb, error) {
	coll := db.Collection(UsersCollection)
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	var userDb UserDb
	err := coll.FindOne(ctx, bson.M{"email": strings.TrimSpace(email)}, opts).Decode(&userDb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}
	return userDb, nil
}

func (db *DB) GetAllUsers(ctx context.Context) ([]UserDb, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return findAll[UserDb](ctx, db.Collection(UsersCollection), opts)
}

func (db *DB) AddUser(ctx context.Context, user UserDb) (UserDb, error) {
	now := time.Now().UTC()
	user.Id = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := db.Collection(UsersCollection).InsertOne(ctx, user); err != nil {
		return UserDb{}, err
	}
	return user, nil
}

func (db *DB) UpdateUserRole(ctx context.Context, id primitive.ObjectID, role string) (UserDb, error) {
	set := bson.M{"role": role, "updatedAt": time.Now().UTC()}
	if err := updateById(ctx, db.Collection(UsersCollection), id, set); err != nil {
		return UserDb{}, err
	}
	return db.GetUserById(ctx, id)
}

func (db *DB) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return deleteById(ctx, db.Collection(UsersCollection), id)
}

func (db *DB) UserEmailExists(ctx context.Context, email string) (bool, error) {
	_, err := db.GetUserByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
