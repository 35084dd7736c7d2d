package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"denials-tracker-service/internal/app/config"
	"denials-tracker-service/internal/app/drivers/database"
	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/pkg/constvars"
	"denials-tracker-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds login users and creates the unique compound index on patients so a
// racing duplicate insert fails at the store rather than silently doubling.
func main() {
	usernames := flag.String("users", "admin", "comma separated usernames to seed")
	withDemo := flag.Bool("demo", false, "also seed a demo patient")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	driverConfig := config.NewDriverConfig()
	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "last_name", Value: 1},
			{Key: "first_name", Value: 1},
			{Key: "dob", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	_, err := db.Collection(constvars.MongoCollectionPatients).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Fatalf("Failed to create unique patient index: %v", err)
	}
	log.Info("Unique patient index ensured")

	users := db.Collection(constvars.MongoCollectionUsers)
	for _, username := range strings.Split(*usernames, ",") {
		username = strings.TrimSpace(username)
		if username == "" {
			continue
		}
		count, err := users.CountDocuments(ctx, bson.M{"username": username})
		if err != nil {
			log.Fatalf("Failed to check user %s: %v", username, err)
		}
		if count > 0 {
			log.Infof("User %s already exists, skipping", username)
			continue
		}
		_, err = users.InsertOne(ctx, models.User{Username: username})
		if err != nil {
			log.Fatalf("Failed to insert user %s: %v", username, err)
		}
		log.Infof("Seeded user %s", username)
	}

	if *withDemo {
		dob, err := utils.ParseStrictDate("01/15/1980")
		if err != nil {
			log.Fatalf("Failed to parse demo date of birth: %v", err)
		}
		patient := models.Patient{LastName: "SMITH", FirstName: "JOHN", DateOfBirth: dob}
		_, err = db.Collection(constvars.MongoCollectionPatients).InsertOne(ctx, patient)
		if err != nil {
			log.Warnf("Demo patient not inserted (may already exist): %v", err)
		} else {
			log.Info("Seeded demo patient")
		}
	}

	log.Info("Seeding completed")
}
