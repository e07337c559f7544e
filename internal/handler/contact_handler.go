package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetbliss/internal/service"
	"go.uber.org/zap"
)

const (
	contactMissingFields = "Please fill in all required fields."
	contactInvalidEmail  = "Please enter a valid email address."
	contactThanks        = "Thank you for your message. We will get back to you soon!"
	contactDefaultTitle  = "Website Contact Form"
)

type contactRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required"`
	Phone   string `json:"phone" form:"phone"`
	Company string `json:"company" form:"company"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message" binding:"required"`
}

func contactFailure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// SubmitContact stores a contact form message. Both JSON and form posts are
// accepted.
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		contactFailure(c, http.StatusBadRequest, contactMissingFields)
		return
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = contactDefaultTitle
	}

	submission, err := a.contacts.Submit(service.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Subject:  subject,
		Message:  req.Message,
		RemoteIP: c.ClientIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactFieldsMissing):
			contactFailure(c, http.StatusBadRequest, contactMissingFields)
		case errors.Is(err, service.ErrContactEmailInvalid):
			contactFailure(c, http.StatusBadRequest, contactInvalidEmail)
		default:
			a.log.Error("store contact submission failed", zap.Error(err))
			contactFailure(c, http.StatusInternalServerError, "Sorry, something went wrong. Please try again later.")
		}
		return
	}

	a.log.Info("contact form submitted",
		zap.String("reference", submission.Reference),
		zap.String("subject", submission.Subject))
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   contactThanks,
		"reference": submission.Reference,
	})
}

// ListContactSubmissions returns recent submissions for the admin.
func (a *API) ListContactSubmissions(c *gin.Context) {
	limit := parsePositiveInt(c.DefaultQuery("limit", "50"), 50)
	submissions, err := a.contacts.List(limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load submissions")
		return
	}

	response := make([]gin.H, 0, len(submissions))
	for _, s := range submissions {
		response = append(response, gin.H{
			"id":         s.ID,
			"reference":  s.Reference,
			"name":       s.Name,
			"email":      s.Email,
			"phone":      s.Phone,
			"company":    s.Company,
			"subject":    s.Subject,
			"message":    s.Message,
			"created_at": s.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"submissions": response})
}
