package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/showsapi/showsapi/internal/model"
)

const usersCollection = "users"

// userDocument is the BSON shape of a user in the users collection.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Age       int                `bson:"age"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *userDocument) toModel() *model.User {
	return &model.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Age:       d.Age,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// newUserDocument assigns a fresh ObjectID and truncates timestamps to the
// millisecond precision BSON dates can hold.
func newUserDocument(u *model.User) *userDocument {
	return &userDocument{
		ID:        primitive.NewObjectID(),
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt.UTC().Truncate(time.Millisecond),
		UpdatedAt: u.UpdatedAt.UTC().Truncate(time.Millisecond),
	}
}

// MongoRepository stores users in a MongoDB collection.
type MongoRepository struct {
	client *mongo.Client
	users  *mongo.Collection
}

// NewMongo connects to MongoDB and verifies the connection.
func NewMongo(ctx context.Context, uri, database string) (*MongoRepository, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetMinPoolSize(2).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoRepository{
		client: client,
		users:  client.Database(database).Collection(usersCollection),
	}, nil
}

// EnsureSchema creates the unique index on email.
func (r *MongoRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// FindAll returns every user in natural collection order.
func (r *MongoRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	cursor, err := r.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, storeError("find users", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeError("decode users", err)
	}

	users := make([]*model.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toModel())
	}
	return users, nil
}

// InsertOne persists a user and sets its ID.
func (r *MongoRepository) InsertOne(ctx context.Context, user *model.User) error {
	doc := newUserDocument(user)

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return storeError("insert user", err)
	}

	*user = *doc.toModel()
	return nil
}

// InsertMany persists users in order and stops at the first failure.
// Users inserted before the failure stay persisted.
func (r *MongoRepository) InsertMany(ctx context.Context, users []*model.User) error {
	if len(users) == 0 {
		return nil
	}

	docs := make([]*userDocument, len(users))
	batch := make([]interface{}, len(users))
	for i, u := range users {
		docs[i] = newUserDocument(u)
		batch[i] = docs[i]
	}

	if _, err := r.users.InsertMany(ctx, batch, options.InsertMany().SetOrdered(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return storeError("insert users", err)
	}

	for i, doc := range docs {
		*users[i] = *doc.toModel()
	}
	return nil
}

// DeleteAll removes every user and returns how many were deleted.
func (r *MongoRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.users.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, storeError("delete users", err)
	}
	return res.DeletedCount, nil
}

// Ping checks MongoDB connectivity.
func (r *MongoRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// Collection returns the underlying users collection.
// Use sparingly - prefer adding methods to MongoRepository.
func (r *MongoRepository) Collection() *mongo.Collection {
	return r.users
}
