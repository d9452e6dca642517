package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AbsenceType ประเภทการลา เช่น Sick Leave, Work-Related Injury
type AbsenceType struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	RequiresNote        bool               `bson:"requiresNote" json:"requiresNote"`
	NoteRequirementDays *int               `bson:"noteRequirementDays,omitempty" json:"noteRequirementDays,omitempty"`
	SpecificForms       []string           `bson:"specificForms,omitempty" json:"specificForms,omitempty"`
	IsActive            bool               `bson:"isActive" json:"isActive"`
}

// AbsenceTypeExtended is the label used by the scenario filter for long
// absences; any other label is treated as a standard absence.
const AbsenceTypeExtended = "Extended"
