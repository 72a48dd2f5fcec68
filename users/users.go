package users

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("user profile not found")

type Service interface {
	GetProfile(ctx context.Context, userId string) (*Profile, error)
	GetEmergencyInfo(ctx context.Context, userId string) (*EmergencyInfo, error)

	// SaveEmergencyInfo replaces the emergency card for the user, stamping
	// UpdatedAt. Last write wins.
	SaveEmergencyInfo(ctx context.Context, userId string, info EmergencyInfo) (*EmergencyInfo, error)
}

type Profile struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty"`
	UserId        *string             `bson:"userId,omitempty"`
	FullName      *string             `bson:"fullName,omitempty"`
	BirthDate     *string             `bson:"birthDate,omitempty"`
	EmergencyInfo *EmergencyInfo      `bson:"emergencyInfo,omitempty"`
	CreatedAt     *time.Time          `bson:"createdAt,omitempty"`
}

// EmergencyInfo is the medical card shown to first responders.
type EmergencyInfo struct {
	BloodType         *string            `bson:"bloodType,omitempty" json:"bloodType"`
	Allergies         []string           `bson:"allergies,omitempty" json:"allergies"`
	ChronicDiseases   []string           `bson:"chronicDiseases,omitempty" json:"chronicDiseases"`
	Medications       []string           `bson:"medications,omitempty" json:"medications"`
	EmergencyContacts []EmergencyContact `bson:"emergencyContacts,omitempty" json:"emergencyContacts"`
	SpecialNotes      *string            `bson:"specialNotes,omitempty" json:"specialNotes"`
	UpdatedAt         *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt"`
}

type EmergencyContact struct {
	Id       *string `bson:"id,omitempty" json:"id,omitempty"`
	Name     string  `bson:"name" json:"name"`
	Phone    string  `bson:"phone" json:"phone"`
	Relation *string `bson:"relation,omitempty" json:"relation,omitempty"`
}
