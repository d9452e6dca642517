package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConversationEntry บันทึกบทสนทนาอิสระระหว่าง manager กับพนักงาน นอกเหนือจาก question flow
type ConversationEntry struct {
	// EntryID is a client-visible uuid, independent of the Mongo id.
	EntryID      string             `bson:"entryId" json:"entryId"`
	Question     string             `bson:"question" json:"question"`
	Answer       string             `bson:"answer" json:"answer"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
	RecordedByID primitive.ObjectID `bson:"recordedById" json:"recordedById"`
}

// Conversation เก็บบทสนทนาทั้งหมดของ absence หนึ่งรายการ
type Conversation struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AbsenceID primitive.ObjectID  `bson:"absenceId" json:"absenceId"`
	Entries   []ConversationEntry `bson:"entries" json:"entries"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}
