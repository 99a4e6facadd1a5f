package repository

import (
	"context"
	"time"

	"github.com/mirkashi/Grazieoutfits/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository defines data-access operations for admin accounts.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}

// MongoAdminRepository implements AdminRepository on a mongo collection.
type MongoAdminRepository struct {
	collection *mongo.Collection
}

// NewMongoAdminRepository creates a new MongoAdminRepository.
func NewMongoAdminRepository(db *mongo.Database) AdminRepository {
	return &MongoAdminRepository{collection: db.Collection("admins")}
}

func (r *MongoAdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *MongoAdminRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.Admin, error) {
	filter := bson.M{"$or": []bson.M{{"username": username}, {"email": email}}}

	var admin models.Admin
	err := r.collection.FindOne(ctx, filter).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *MongoAdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *MongoAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	now := time.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	admin.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoAdminRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	update := bson.M{"$set": bson.M{"password": passwordHash, "updated_at": time.Now().UTC()}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *MongoAdminRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
