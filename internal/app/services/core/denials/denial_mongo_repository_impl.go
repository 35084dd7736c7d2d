package denials

import (
	"context"
	"time"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/pkg/constvars"
	"denials-tracker-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DenialMongoRepository struct {
	Collection *mongo.Collection
}

func NewDenialMongoRepository(db *mongo.Client, dbName string) DenialRepository {
	return &DenialMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDenials),
	}
}

func (repo *DenialMongoRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Denial, error) {
	var denials []models.Denial
	findOptions := options.Find().SetSort(bson.D{{Key: "dos", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"patient_id": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &denials)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return denials, nil
}

func (repo *DenialMongoRepository) FindByPatientAndDate(ctx context.Context, patientID primitive.ObjectID, dateOfService time.Time) (*models.Denial, error) {
	var denial models.Denial
	err := repo.Collection.FindOne(ctx, bson.M{"patient_id": patientID, "dos": dateOfService}).Decode(&denial)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &denial, nil
}

func (repo *DenialMongoRepository) Upsert(ctx context.Context, patientID primitive.ObjectID, dateOfService time.Time, fields bson.M, noteID primitive.ObjectID) error {
	updateOptions := options.FindOneAndUpdate().SetUpsert(true)
	err := repo.Collection.FindOneAndUpdate(ctx,
		bson.M{"patient_id": patientID, "dos": dateOfService},
		bson.M{
			"$set":  fields,
			"$push": bson.M{"notes": noteID},
		},
		updateOptions,
	).Err()
	if err != nil && err != mongo.ErrNoDocuments {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
