package services

import (
	DB "Backend-Firewatch-115/src/database"
	"log"
)

func init() {
	if err := DB.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}
	if DB.UserCollection == nil || DB.AbsenceCollection == nil {
		log.Fatal("Failed to get the required collections")
	}

	DB.InitRedis()
	if DB.RedisURI != "" {
		DB.InitAsynq()
	}
}
