package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // connect only once per process
	connectErr error

	UserCollection             *mongo.Collection
	AbsenceCollection          *mongo.Collection
	AbsenceTypeCollection      *mongo.Collection
	QuestionTemplateCollection *mongo.Collection
	AbsenceQuestionCollection  *mongo.Collection
	WorkflowStepCollection     *mongo.Collection
	ConversationCollection     *mongo.Collection
)

// DatabaseName is the Mongo database holding all Firewatch collections.
const DatabaseName = "FirewatchDB"

// ConnectMongoDB connects to MongoDB exactly once.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(DatabaseName)
		UserCollection = db.Collection("users")
		AbsenceCollection = db.Collection("absences")
		AbsenceTypeCollection = db.Collection("absenceTypes")
		QuestionTemplateCollection = db.Collection("questionTemplates")
		AbsenceQuestionCollection = db.Collection("absenceQuestions")
		WorkflowStepCollection = db.Collection("workflowSteps")
		ConversationCollection = db.Collection("conversations")

		log.Println("MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
