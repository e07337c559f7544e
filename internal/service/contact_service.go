package service

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/sweetbliss/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContactFieldsMissing = errors.New("name, email and message are required")
	ErrContactEmailInvalid  = errors.New("email address is invalid")
)

// ContactInput is a message from the public contact form.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Subject  string
	Message  string
	RemoteIP string
}

// ContactService records contact form submissions.
type ContactService struct {
	db *gorm.DB
}

// NewContactService returns a new ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Submit validates and stores one submission.
func (s *ContactService) Submit(input ContactInput) (*db.ContactSubmission, error) {
	submission := db.ContactSubmission{
		Reference: uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Company:   strings.TrimSpace(input.Company),
		Subject:   strings.TrimSpace(input.Subject),
		Message:   strings.TrimSpace(input.Message),
		RemoteIP:  strings.TrimSpace(input.RemoteIP),
	}
	if submission.Name == "" || submission.Email == "" || submission.Message == "" {
		return nil, ErrContactFieldsMissing
	}
	addr, err := mail.ParseAddress(submission.Email)
	if err != nil {
		return nil, ErrContactEmailInvalid
	}
	submission.Email = addr.Address

	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// List returns the most recent submissions first.
func (s *ContactService) List(limit int) ([]db.ContactSubmission, error) {
	query := s.db.Order("created_at desc").Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var submissions []db.ContactSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
