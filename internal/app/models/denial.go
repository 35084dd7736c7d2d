package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Denial is keyed by (patient_id, dos): at most one denial exists per patient
// per date of service. NoteIDs holds weak references in append order; display
// order is resolved at read time.
type Denial struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	PatientID     primitive.ObjectID   `bson:"patient_id" json:"patient_id"`
	DateOfService time.Time            `bson:"dos" json:"dos"`
	BillAmount    float64              `bson:"bill_amt" json:"bill_amt"`
	PaidAmount    float64              `bson:"paid_amt" json:"paid_amt"`
	Status        string               `bson:"status" json:"status"`
	NoteIDs       []primitive.ObjectID `bson:"notes" json:"notes"`
}
