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
	once       sync.Once // connect only once
	connectErr error

	UserCollection             *mongo.Collection
	StudentCollection          *mongo.Collection
	HodCollection              *mongo.Collection
	TpoCollection              *mongo.Collection
	DepartmentCollection       *mongo.Collection
	CompanyCollection          *mongo.Collection
	JobRoleCollection          *mongo.Collection
	ApplicationCollection      *mongo.Collection
	RecruitmentRoundCollection *mongo.Collection
	StudentProfileCollection   *mongo.Collection
)

const dbName = "PlacementCellDB"

// ConnectMongoDB connects to MongoDB exactly once and wires up the
// collection handles used across the services.
func ConnectMongoDB() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = GetCollection(dbName, "users")
		StudentCollection = GetCollection(dbName, "students")
		HodCollection = GetCollection(dbName, "hods")
		TpoCollection = GetCollection(dbName, "tpos")
		DepartmentCollection = GetCollection(dbName, "departments")
		CompanyCollection = GetCollection(dbName, "companies")
		JobRoleCollection = GetCollection(dbName, "jobroles")
		ApplicationCollection = GetCollection(dbName, "applications")
		RecruitmentRoundCollection = GetCollection(dbName, "recruitmentrounds")
		StudentProfileCollection = GetCollection(dbName, "studentprofiles")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
