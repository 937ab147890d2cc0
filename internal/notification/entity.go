package notification

import (
	"encoding/json"
	"time"
)

// Type represents notification type
type Type string

const (
	TypeBookingCreated   Type = "booking_created"   // provider: new booking request
	TypeBookingAccepted  Type = "booking_accepted"  // customer: provider accepted
	TypeBookingRejected  Type = "booking_rejected"  // customer: provider rejected
	TypeBookingCompleted Type = "booking_completed" // customer: job done

	TypeProviderApproved Type = "provider_approved" // provider: vetting passed
	TypeProviderRejected Type = "provider_rejected" // provider: vetting failed

	TypeNewReview Type = "new_review" // provider: new review posted
)

type Notification struct {
	ID        int64           `json:"id" gorm:"primaryKey;column:id"`
	UserID    int64           `json:"user_id" gorm:"column:user_id;index:idx_notifications_user_unread"`
	Type      Type            `json:"type" gorm:"column:type"`
	Title     string          `json:"title" gorm:"column:title"`
	Message   string          `json:"message" gorm:"column:message;type:text"`
	Data      json.RawMessage `json:"data,omitempty" gorm:"column:data"`
	IsRead    bool            `json:"is_read" gorm:"column:is_read;index:idx_notifications_user_unread"`
	CreatedAt time.Time       `json:"created_at" gorm:"column:created_at"`
}

func (Notification) TableName() string { return "notifications" }
