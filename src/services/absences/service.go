package absences

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	DB "Backend-Firewatch-115/src/database"
	"Backend-Firewatch-115/src/models"
	"Backend-Firewatch-115/src/services/users"
	"Backend-Firewatch-115/src/services/workflows"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activeStatuses are the statuses an absence can hold while still being worked.
var activeStatuses = []string{
	models.StatusReported,
	models.StatusUnderReview,
	models.StatusActive,
	models.StatusFollowUpRequired,
}

// CreateAbsence creates a new absence record. When no manager is given, the
// least loaded available manager is assigned, and the initial workflow steps
// are created for the case.
func CreateAbsence(ctx context.Context, req *models.CreateAbsenceRequest) (*models.Absence, error) {
	employeeID, err := primitive.ObjectIDFromHex(req.EmployeeID)
	if err != nil {
		return nil, errors.New("invalid employeeId")
	}
	absenceTypeID, err := primitive.ObjectIDFromHex(req.AbsenceTypeID)
	if err != nil {
		return nil, errors.New("invalid absenceTypeId")
	}
	reportingOfficerID, err := primitive.ObjectIDFromHex(req.ReportingOfficerID)
	if err != nil {
		return nil, errors.New("invalid reportingOfficerId")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, errors.New("invalid startDate")
	}

	now := time.Now()
	absence := &models.Absence{
		ID:                 primitive.NewObjectID(),
		EmployeeID:         employeeID,
		AbsenceTypeID:      absenceTypeID,
		StartDate:          startDate,
		ReasonCategory:     req.ReasonCategory,
		SeverityLevel:      req.SeverityLevel,
		Status:             models.StatusReported,
		ReportingOfficerID: reportingOfficerID,
		ManagementLevel:    req.ManagementLevel,
		IsSelfReported:     req.IsSelfReported,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if req.ExpectedEndDate != "" {
		expected, err := parseDate(req.ExpectedEndDate)
		if err != nil {
			return nil, errors.New("invalid expectedEndDate")
		}
		absence.ExpectedEndDate = &expected
	}

	if req.AssignedManagerID != "" {
		managerID, err := primitive.ObjectIDFromHex(req.AssignedManagerID)
		if err != nil {
			return nil, errors.New("invalid assignedManagerId")
		}
		absence.AssignedManagerID = &managerID
	} else {
		manager, err := users.GetAvailableManager(ctx, employeeID)
		if err != nil {
			log.Println("manager auto-assignment failed:", err)
		} else if manager != nil {
			absence.AssignedManagerID = &manager.ID
		}
	}

	if _, err := DB.AbsenceCollection.InsertOne(ctx, absence); err != nil {
		return nil, err
	}

	if err := workflows.CreateInitialSteps(ctx, absence); err != nil {
		// Workflow steps are follow-up bookkeeping; the absence itself stands.
		log.Println("initial workflow steps failed:", err)
	}

	return absence, nil
}

// GetAbsenceByID ดึง absence ตาม id
func GetAbsenceByID(ctx context.Context, id primitive.ObjectID) (*models.Absence, error) {
	var absence models.Absence
	err := DB.AbsenceCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&absence)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("absence not found")
		}
		return nil, err
	}
	return &absence, nil
}

// GetAbsencesByEmployee ดึง absence ทั้งหมดของพนักงานหนึ่งคน ล่าสุดก่อน
func GetAbsencesByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Absence, error) {
	return findAbsences(ctx, bson.M{"employeeId": employeeID})
}

// GetAbsencesByManager ดึง absence ที่ manager คนหนึ่งดูแล
func GetAbsencesByManager(ctx context.Context, managerID primitive.ObjectID) ([]models.Absence, error) {
	return findAbsences(ctx, bson.M{"assignedManagerId": managerID})
}

// GetActiveAbsences ดึง absence ที่ยังไม่ปิด
func GetActiveAbsences(ctx context.Context) ([]models.Absence, error) {
	return findAbsences(ctx, bson.M{"status": bson.M{"$in": activeStatuses}})
}

func findAbsences(ctx context.Context, filter bson.M) ([]models.Absence, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.AbsenceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var absences []models.Absence
	if err = cursor.All(ctx, &absences); err != nil {
		return nil, err
	}
	return absences, nil
}

// UpdateAbsence applies the non-empty fields of the request.
func UpdateAbsence(ctx context.Context, id primitive.ObjectID, req *models.UpdateAbsenceRequest) (*models.Absence, error) {
	updates := bson.M{"updatedAt": time.Now()}

	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.ManagementLevel != "" {
		updates["managementLevel"] = req.ManagementLevel
	}
	if req.ExpectedEndDate != "" {
		expected, err := parseDate(req.ExpectedEndDate)
		if err != nil {
			return nil, errors.New("invalid expectedEndDate")
		}
		updates["expectedEndDate"] = expected
	}
	if req.ActualEndDate != "" {
		actual, err := parseDate(req.ActualEndDate)
		if err != nil {
			return nil, errors.New("invalid actualEndDate")
		}
		updates["actualEndDate"] = actual
	}
	if req.AssignedManagerID != "" {
		managerID, err := primitive.ObjectIDFromHex(req.AssignedManagerID)
		if err != nil {
			return nil, errors.New("invalid assignedManagerId")
		}
		updates["assignedManagerId"] = managerID
	}

	result := DB.AbsenceCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var absence models.Absence
	if err := result.Decode(&absence); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("absence not found")
		}
		return nil, err
	}
	return &absence, nil
}

// UpdateAbsenceStatus เปลี่ยนสถานะอย่างเดียว
func UpdateAbsenceStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Absence, error) {
	return UpdateAbsence(ctx, id, &models.UpdateAbsenceRequest{Status: status})
}

// GetAbsenceWithDetails joins the employee, manager, reporting officer and
// absence type onto the absence for the detail view.
func GetAbsenceWithDetails(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		lookupStage("users", "employeeId", "employee"),
		lookupStage("users", "assignedManagerId", "manager"),
		lookupStage("users", "reportingOfficerId", "reportingOfficer"),
		lookupStage("absenceTypes", "absenceTypeId", "absenceType"),
		bson.D{{Key: "$project", Value: bson.M{
			"employee.password":         0,
			"manager.password":          0,
			"reportingOfficer.password": 0,
		}}},
	}

	cursor, err := DB.AbsenceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.New("absence not found")
	}
	return results[0], nil
}

func lookupStage(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": "_id",
		"as":           as,
	}}}
}

// GetAbsenceStatistics นับจำนวน absence แยกตามสถานะและเหตุผล
func GetAbsenceStatistics(ctx context.Context) (*models.AbsenceStatistics, error) {
	total, err := DB.AbsenceCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	active, err := DB.AbsenceCollection.CountDocuments(ctx, bson.M{"status": bson.M{"$in": activeStatuses}})
	if err != nil {
		return nil, err
	}

	byStatus, err := countBy(ctx, "$status")
	if err != nil {
		return nil, err
	}
	byReason, err := countBy(ctx, "$reasonCategory")
	if err != nil {
		return nil, err
	}

	return &models.AbsenceStatistics{
		Total:    total,
		Active:   active,
		ByStatus: byStatus,
		ByReason: byReason,
	}, nil
}

func countBy(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   field,
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := DB.AbsenceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}
	return counts, nil
}

// SearchAbsences กรอง absence ตามเงื่อนไขหลายแบบพร้อมแบ่งหน้า
func SearchAbsences(ctx context.Context, filters bson.M, params models.PaginationParams) ([]models.Absence, int64, int, error) {
	params.Normalize()

	total, err := DB.AbsenceCollection.CountDocuments(ctx, filters)
	if err != nil {
		return nil, 0, 0, err
	}

	sortField := params.SortBy
	if sortField == "" || sortField == "_id" {
		sortField = "createdAt"
	}
	sortOrder := -1
	if strings.ToLower(params.Order) == "asc" {
		sortOrder = 1
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: sortField, Value: sortOrder}})

	cursor, err := DB.AbsenceCollection.Find(ctx, filters, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var absences []models.Absence
	if err = cursor.All(ctx, &absences); err != nil {
		return nil, 0, 0, err
	}

	return absences, total, params.TotalPages(total), nil
}

// SaveConversation appends conversation entries to an absence, creating the
// conversation document on first use. Entry ids are generated server-side.
func SaveConversation(ctx context.Context, absenceID primitive.ObjectID, recordedByID primitive.ObjectID, entries []models.ConversationEntry) (*models.Conversation, error) {
	if _, err := GetAbsenceByID(ctx, absenceID); err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range entries {
		entries[i].EntryID = uuid.NewString()
		entries[i].RecordedByID = recordedByID
		if entries[i].Timestamp.IsZero() {
			entries[i].Timestamp = now
		}
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	result := DB.ConversationCollection.FindOneAndUpdate(ctx,
		bson.M{"absenceId": absenceID},
		bson.M{
			"$push":        bson.M{"entries": bson.M{"$each": entries}},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"absenceId": absenceID, "createdAt": now},
		},
		opts,
	)

	var conversation models.Conversation
	if err := result.Decode(&conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetConversation ดึงบทสนทนาของ absence
func GetConversation(ctx context.Context, absenceID primitive.ObjectID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := DB.ConversationCollection.FindOne(ctx, bson.M{"absenceId": absenceID}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.Conversation{AbsenceID: absenceID, Entries: []models.ConversationEntry{}}, nil
		}
		return nil, err
	}
	return &conversation, nil
}

// GetAbsenceTypes ดึงประเภทการลาที่เปิดใช้งาน
func GetAbsenceTypes(ctx context.Context) ([]models.AbsenceType, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := DB.AbsenceTypeCollection.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []models.AbsenceType
	if err = cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
