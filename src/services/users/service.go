package users

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	DB "Backend-Firewatch-115/src/database"
	"Backend-Firewatch-115/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// Collections are initialized in services/service.go

// GetUsersWithFilter ดึงผู้ใช้ตามเงื่อนไขค้นหาและแบ่งหน้า
func GetUsersWithFilter(params models.PaginationParams, roles []string, stationIDs []string) ([]models.User, int64, int, error) {
	params.Normalize()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}

	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"firstName": regex},
			{"lastName": regex},
			{"email": regex},
			{"employeeId": regex},
		}
	}

	if len(roles) > 0 {
		filter["role"] = bson.M{"$in": roles}
	}

	if len(stationIDs) > 0 {
		filter["stationId"] = bson.M{"$in": stationIDs}
	}

	total, err := DB.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, 0, err
	}

	sortField := params.SortBy
	if sortField == "" {
		sortField = "_id"
	}
	sortOrder := 1
	if strings.ToLower(params.Order) == "desc" {
		sortOrder = -1
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: sortField, Value: sortOrder}})

	cursor, err := DB.UserCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			log.Println("Error decoding user:", err)
			continue
		}
		user.Password = ""
		users = append(users, user)
	}

	return users, total, params.TotalPages(total), nil
}

// GetActiveUsers ดึงผู้ใช้ที่ active ทั้งหมด
func GetActiveUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}})
	cursor, err := DB.UserCollection.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// GetUserByID ดึงผู้ใช้ตาม id
func GetUserByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = DB.UserCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// CreateUser สร้างผู้ใช้ใหม่พร้อม hash รหัสผ่าน
func CreateUser(ctx context.Context, req *models.RegisterUserRequest) (*models.User, error) {
	email := strings.ToLower(req.Email)

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	count, err = DB.UserCollection.CountDocuments(ctx, bson.M{"employeeId": req.EmployeeID})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("employee ID already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           primitive.NewObjectID(),
		EmployeeID:   req.EmployeeID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Phone:        req.Phone,
		Password:     string(hash),
		Role:         req.Role,
		StationID:    req.StationID,
		Platoon:      req.Platoon,
		ShiftPattern: req.ShiftPattern,
		IsActive:     true,
	}

	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// UpdateUser อัปเดตข้อมูลทั่วไปของผู้ใช้ (ไม่รวมรหัสผ่าน)
func UpdateUser(ctx context.Context, id string, updates bson.M) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	delete(updates, "password")
	delete(updates, "_id")

	result := DB.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var user models.User
	if err := result.Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// DeactivateUser ปิดการใช้งานบัญชีแทนการลบจริง
func DeactivateUser(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}

	result, err := DB.UserCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"isActive": false}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

// GetAvailableManager picks an active manager for a new absence: the least
// loaded Lieutenant or above, excluding the absent employee themselves.
func GetAvailableManager(ctx context.Context, employeeID primitive.ObjectID) (*models.User, error) {
	managerRoles := []string{
		models.RoleLieutenant,
		models.RoleCaptain,
		models.RoleBattalionChief,
		models.RoleAdministrator,
	}

	cursor, err := DB.UserCollection.Find(ctx, bson.M{
		"isActive": true,
		"role":     bson.M{"$in": managerRoles},
		"_id":      bson.M{"$ne": employeeID},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var managers []models.User
	if err = cursor.All(ctx, &managers); err != nil {
		return nil, err
	}
	if len(managers) == 0 {
		return nil, nil
	}

	best := managers[0]
	bestLoad := int64(math.MaxInt64)
	for _, m := range managers {
		load, err := DB.AbsenceCollection.CountDocuments(ctx, bson.M{
			"assignedManagerId": m.ID,
			"status": bson.M{"$in": []string{
				models.StatusReported,
				models.StatusUnderReview,
				models.StatusActive,
				models.StatusFollowUpRequired,
			}},
		})
		if err != nil {
			return nil, err
		}
		if load < bestLoad {
			bestLoad = load
			best = m
		}
	}

	best.Password = ""
	return &best, nil
}
