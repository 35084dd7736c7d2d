package notes

import (
	"context"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/pkg/constvars"
	"denials-tracker-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteMongoRepository struct {
	Collection *mongo.Collection
}

func NewNoteMongoRepository(db *mongo.Client, dbName string) NoteRepository {
	return &NoteMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotes),
	}
}

func (repo *NoteMongoRepository) Insert(ctx context.Context, note *models.Note) (primitive.ObjectID, error) {
	result, err := repo.Collection.InsertOne(ctx, note)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (repo *NoteMongoRepository) FindByIDs(ctx context.Context, noteIDs []primitive.ObjectID) ([]models.Note, error) {
	notes := make([]models.Note, 0, len(noteIDs))
	if len(noteIDs) == 0 {
		return notes, nil
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "input_date", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": noteIDs}}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &notes)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notes, nil
}
