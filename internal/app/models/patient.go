package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is stored with uppercase names. No two patients may share the same
// (last name, first name, date of birth) triple.
type Patient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LastName    string             `bson:"last_name" json:"last_name"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	DateOfBirth time.Time          `bson:"dob" json:"dob"`
}

// DisplayLabel renders the patient the way search results and dropdowns show
// them: "LAST, FIRST (MM/DD/YYYY)".
func (p Patient) DisplayLabel() string {
	return fmt.Sprintf("%s, %s (%s)", p.LastName, p.FirstName, p.DateOfBirth.Format("01/02/2006"))
}
