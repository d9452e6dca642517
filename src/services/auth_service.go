package services

import (
	"Backend-Firewatch-115/src/database"
	"Backend-Firewatch-115/src/models"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
	bcryptCost       = 12
)

// AuthenticateUser verifies email and password against the users collection.
// Inactive accounts authenticate like unknown ones.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{
		"email":    strings.ToLower(email),
		"isActive": true,
	}).Decode(&user)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if user.Password == "" {
		return nil, errors.New("account setup incomplete, contact an administrator")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	user.Password = ""
	return &user, nil
}

// ChangePassword verifies the current password and stores a new hash.
func ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	_, err = database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"password": string(hash)}},
	)
	return err
}

// IsRateLimited reports whether an email has exceeded the allowed login
// attempts. Without Redis there is no rate limiting.
func IsRateLimited(email string) bool {
	if database.RedisClient == nil {
		return false
	}

	key := loginAttemptsKey(email)
	count, err := database.RedisClient.Get(database.RedisCtx, key).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the email may try again.
func GetRemainingCooldownTime(email string) time.Duration {
	if database.RedisClient == nil {
		return 0
	}

	ttl, err := database.RedisClient.TTL(database.RedisCtx, loginAttemptsKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt records the outcome of a login attempt. Failures increment
// the rate-limit counter; a success clears it.
func LogLoginAttempt(email, ip string, success bool) {
	log.Printf("login attempt: email=%s ip=%s success=%t", email, ip, success)

	if database.RedisClient == nil {
		return
	}

	key := loginAttemptsKey(email)
	if success {
		database.RedisClient.Del(database.RedisCtx, key)
		return
	}

	count, err := database.RedisClient.Incr(database.RedisCtx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		database.RedisClient.Expire(database.RedisCtx, key, loginCooldown)
	}
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
}
