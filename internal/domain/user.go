package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserProfile string

const (
	ProfileAdmin       UserProfile = "admin"
	ProfileDeliveryman UserProfile = "deliveryman"
)

func (p UserProfile) Valid() bool {
	return p == ProfileAdmin || p == ProfileDeliveryman
}

type User struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Profile      UserProfile `json:"profile"`
	CreatedOn    time.Time   `json:"created_on"`
	UpdatedOn    time.Time   `json:"updated_on"`
}
