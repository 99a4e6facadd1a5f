package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product prices are whole rupees. Keeping them as int64 means order totals
// are computed with integer arithmetic only.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       int64              `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	Images      []string           `json:"images" bson:"images"`
	Sizes       []string           `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Colors      []string           `json:"colors,omitempty" bson:"colors,omitempty"`
	Category    string             `json:"category" bson:"category"`
	Featured    bool               `json:"featured" bson:"featured"`
	Rating      int                `json:"rating" bson:"rating"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}
