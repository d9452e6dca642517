package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User คือบุคลากรของสถานีดับเพลิง (firefighter ถึง administrator)
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID   string             `bson:"employeeId" json:"employeeId"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Password     string             `bson:"password,omitempty" json:"-"` // accepted from clients, never returned
	Role         string             `bson:"role" json:"role"`
	StationID    string             `bson:"stationId,omitempty" json:"stationId,omitempty"`
	Platoon      string             `bson:"platoon,omitempty" json:"platoon,omitempty"`
	ShiftPattern string             `bson:"shiftPattern,omitempty" json:"shiftPattern,omitempty"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
}

// Roles ordered by authority. Managers are picked from Lieutenant upward.
const (
	RoleFirefighter    = "Firefighter"
	RoleLieutenant     = "Lieutenant"
	RoleCaptain        = "Captain"
	RoleBattalionChief = "Battalion Chief"
	RoleAdministrator  = "Administrator"
)

// RegisterUserRequest รับข้อมูลสมัครผู้ใช้ใหม่
type RegisterUserRequest struct {
	EmployeeID   string `json:"employeeId" validate:"required"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Role         string `json:"role" validate:"required,oneof=Firefighter Lieutenant Captain 'Battalion Chief' Administrator"`
	StationID    string `json:"stationId"`
	Platoon      string `json:"platoon" validate:"omitempty,oneof=A B C Admin"`
	ShiftPattern string `json:"shiftPattern" validate:"omitempty,oneof=24_48 M_F"`
	Password     string `json:"password" validate:"required,min=8"`
}
