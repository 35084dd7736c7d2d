package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is immutable once created.
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InputDate time.Time          `bson:"input_date" json:"input_date"`
	InputUser string             `bson:"input_user" json:"input_user"`
	Body      string             `bson:"note" json:"note"`
}
