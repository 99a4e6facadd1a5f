package repository

import (
	"context"
	"time"

	"github.com/mirkashi/Grazieoutfits/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsKey is the well-known key of the singleton settings document.
const settingsKey = "global"

// SettingsRepository defines data-access operations for the settings singleton.
type SettingsRepository interface {
	// Get returns the settings document, or mongo.ErrNoDocuments when it has
	// not been created yet. It never writes.
	Get(ctx context.Context) (*models.Settings, error)
	// GetOrCreate returns the settings document, seeding the defaults with an
	// idempotent upsert if it does not exist. Concurrent first access is safe:
	// both callers upsert the same key and one insert wins.
	GetOrCreate(ctx context.Context) (*models.Settings, error)
	// Update applies a partial update of top-level sections; sections absent
	// from updates keep their stored values.
	Update(ctx context.Context, updates bson.M) (*models.Settings, error)
}

// MongoSettingsRepository implements SettingsRepository on a mongo collection.
type MongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new MongoSettingsRepository.
func NewMongoSettingsRepository(db *mongo.Database) SettingsRepository {
	return &MongoSettingsRepository{collection: db.Collection("settings")}
}

func (r *MongoSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := r.collection.FindOne(ctx, bson.M{"key": settingsKey}).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *MongoSettingsRepository) GetOrCreate(ctx context.Context) (*models.Settings, error) {
	defaults := models.DefaultSettings()
	now := time.Now().UTC()

	// The upsert inserts "key" from the filter; $setOnInsert carries only the
	// default payload so the two never touch the same path.
	seed := bson.M{
		"email_config":    defaults.EmailConfig,
		"shipping_rates":  defaults.ShippingRates,
		"payment_methods": defaults.PaymentMethods,
		"business_info":   defaults.BusinessInfo,
		"created_at":      now,
		"updated_at":      now,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var settings models.Settings
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"key": settingsKey},
		bson.M{"$setOnInsert": seed},
		opts,
	).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *MongoSettingsRepository) Update(ctx context.Context, updates bson.M) (*models.Settings, error) {
	updates["updated_at"] = time.Now().UTC()

	update := bson.M{
		"$set": updates,
		"$setOnInsert": bson.M{
			"created_at": time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated models.Settings
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"key": settingsKey}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
