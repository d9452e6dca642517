package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reason categories
const (
	ReasonIllness      = "Illness"
	ReasonInjury       = "Injury"
	ReasonFamily       = "Family"
	ReasonMentalHealth = "Mental Health"
	ReasonOther        = "Other"
)

// Absence statuses
const (
	StatusReported         = "Reported"
	StatusUnderReview      = "Under Review"
	StatusActive           = "Active"
	StatusFollowUpRequired = "Follow-up Required"
	StatusResolved         = "Resolved"
	StatusClosed           = "Closed"
)

// Absence บันทึกการลาหนึ่งรายการ (หนึ่ง case ของ question flow)
type Absence struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	EmployeeID         primitive.ObjectID  `bson:"employeeId" json:"employeeId"`
	AbsenceTypeID      primitive.ObjectID  `bson:"absenceTypeId" json:"absenceTypeId"`
	StartDate          time.Time           `bson:"startDate" json:"startDate"`
	ExpectedEndDate    *time.Time          `bson:"expectedEndDate,omitempty" json:"expectedEndDate,omitempty"`
	ActualEndDate      *time.Time          `bson:"actualEndDate,omitempty" json:"actualEndDate,omitempty"`
	ReasonCategory     string              `bson:"reasonCategory" json:"reasonCategory"`
	SeverityLevel      string              `bson:"severityLevel" json:"severityLevel"`
	Status             string              `bson:"status" json:"status"`
	ReportingOfficerID primitive.ObjectID  `bson:"reportingOfficerId" json:"reportingOfficerId"`
	AssignedManagerID  *primitive.ObjectID `bson:"assignedManagerId,omitempty" json:"assignedManagerId,omitempty"`
	ManagementLevel    string              `bson:"managementLevel" json:"managementLevel"`
	IsSelfReported     bool                `bson:"isSelfReported" json:"isSelfReported"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CreateAbsenceRequest รับข้อมูลสร้าง absence ใหม่
type CreateAbsenceRequest struct {
	EmployeeID         string `json:"employeeId" validate:"required"`
	AbsenceTypeID      string `json:"absenceTypeId" validate:"required"`
	StartDate          string `json:"startDate" validate:"required"`
	ExpectedEndDate    string `json:"expectedEndDate"`
	ReasonCategory     string `json:"reasonCategory" validate:"required,oneof=Illness Injury Family 'Mental Health' Other"`
	SeverityLevel      string `json:"severityLevel" validate:"required,oneof=Minor Moderate Severe Critical"`
	ReportingOfficerID string `json:"reportingOfficerId" validate:"required"`
	AssignedManagerID  string `json:"assignedManagerId"`
	ManagementLevel    string `json:"managementLevel" validate:"required,oneof='Monitor Only' 'Light Management' 'Active Management' 'Intensive Management'"`
	IsSelfReported     bool   `json:"isSelfReported"`
}

// UpdateAbsenceRequest อัปเดต absence บางฟิลด์
type UpdateAbsenceRequest struct {
	ExpectedEndDate   string `json:"expectedEndDate"`
	ActualEndDate     string `json:"actualEndDate"`
	Status            string `json:"status" validate:"omitempty,oneof=Reported 'Under Review' Active 'Follow-up Required' Resolved Closed"`
	AssignedManagerID string `json:"assignedManagerId"`
	ManagementLevel   string `json:"managementLevel" validate:"omitempty,oneof='Monitor Only' 'Light Management' 'Active Management' 'Intensive Management'"`
}

// AbsenceStatistics สรุปจำนวน absence แยกตามสถานะและเหตุผล
type AbsenceStatistics struct {
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	ByStatus map[string]int64 `json:"byStatus"`
	ByReason map[string]int64 `json:"byReason"`
}
