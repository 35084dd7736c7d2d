package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the minimal login gate record. There is deliberately no password
// field; authentication is a username lookup only.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
}
