package models

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a user in the system. Roles: admin, doctor, nurse, clerk.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username     string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	FullName     string    `gorm:"size:255;column:full_name" json:"full_name"`
	Role         string    `gorm:"size:50;not null;default:clerk;check:role IN ('admin', 'doctor', 'nurse', 'clerk');column:role" json:"role"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SeedAdminUser inserts the initial admin account if no user exists yet.
// The default password comes from ADMIN_PASSWORD and must be changed after
// first login.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("ADMIN_PASSWORD not set, seeding admin with the default password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Username:     "admin",
		PasswordHash: string(hashed),
		FullName:     "System Administrator",
		Role:         "admin",
		IsActive:     true,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&admin).Error
	})
}
