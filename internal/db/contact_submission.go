package db

import "gorm.io/gorm"

// ContactSubmission stores one message sent through the public contact form.
type ContactSubmission struct {
	gorm.Model
	Reference string `gorm:"size:36;uniqueIndex;not null"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:254;not null"`
	Phone     string `gorm:"size:30"`
	Company   string `gorm:"size:200"`
	Subject   string `gorm:"size:200"`
	Message   string `gorm:"type:text;not null"`
	RemoteIP  string `gorm:"size:64"`
}
