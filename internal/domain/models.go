package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         *string   `db:"name" json:"name"`
	Phone        *string   `db:"phone" json:"phone"`
	Avatar       *string   `db:"avatar" json:"avatar"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RefreshToken is a server-side record of an issued refresh token.
// Tokens are rotated: a presented token is deleted and a new one stored.
type RefreshToken struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Token     string    `db:"token" json:"-"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Car represents a vehicle owned by a user.
type Car struct {
	ID             uuid.UUID `db:"id" json:"id"`
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	Make           string    `db:"make" json:"make"`
	Model          string    `db:"model" json:"model"`
	Year           int       `db:"year" json:"year"`
	InitialMileage int       `db:"initial_mileage" json:"initial_mileage"`
	IsActive       bool      `db:"is_active" json:"is_active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ExpenseCategory is a user-facing expense grouping (seeded, referenced by id).
type ExpenseCategory struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Icon      string    `db:"icon" json:"icon"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Expense represents a single expense recorded against a car.
// CategoryName/CategoryIcon are populated by list queries that join the
// category table; they are empty on bare reads.
type Expense struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CarID        uuid.UUID `db:"car_id" json:"car_id"`
	CategoryID   uuid.UUID `db:"category_id" json:"category_id"`
	Amount       float64   `db:"amount" json:"amount"`
	ExpenseDate  time.Time `db:"expense_date" json:"expense_date"`
	Description  *string   `db:"description" json:"description"`
	CategoryName string    `db:"category_name" json:"category_name,omitempty"`
	CategoryIcon string    `db:"category_icon" json:"category_icon,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Maintenance represents a service visit for a car.
type Maintenance struct {
	ID               uuid.UUID `db:"id" json:"id"`
	CarID            uuid.UUID `db:"car_id" json:"car_id"`
	ServiceType      string    `db:"service_type" json:"service_type"`
	MileageAtService int       `db:"mileage_at_service" json:"mileage_at_service"`
	ServiceDate      time.Time `db:"service_date" json:"service_date"`
	Cost             float64   `db:"cost" json:"cost"`
	Description      *string   `db:"description" json:"description"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// Mileage represents an odometer reading for a car.
type Mileage struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CarID      uuid.UUID `db:"car_id" json:"car_id"`
	Value      int       `db:"value" json:"value"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
	Comment    *string   `db:"comment" json:"comment"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
