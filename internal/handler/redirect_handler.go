package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetbliss/internal/service"
	"go.uber.org/zap"
)

type redirectRequest struct {
	OldPath      string `json:"old_path" binding:"required"`
	NewPath      string `json:"new_path" binding:"required"`
	RedirectType int    `json:"redirect_type"`
	IsActive     *bool  `json:"is_active"`
}

// NotFound answers unmatched routes with an active redirect when one exists.
func (a *API) NotFound(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		rule, err := a.redirects.Lookup(c.Request.URL.Path)
		if err == nil {
			c.Redirect(rule.RedirectType, rule.NewPath)
			return
		}
		if !errors.Is(err, service.ErrRedirectNotFound) {
			a.log.Warn("redirect lookup failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
	}
	respondError(c, http.StatusNotFound, "Not found")
}

// ListRedirects returns every redirect rule.
func (a *API) ListRedirects(c *gin.Context) {
	rules, err := a.redirects.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load redirects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirects": rules})
}

// CreateRedirect adds a redirect rule. Rules are active unless stated otherwise.
func (a *API) CreateRedirect(c *gin.Context) {
	var req redirectRequest
	if !bindJSON(c, &req, "Old and new path are required") {
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	rule, err := a.redirects.Create(service.RedirectInput{
		OldPath:      req.OldPath,
		NewPath:      req.NewPath,
		RedirectType: req.RedirectType,
		IsActive:     active,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRedirectExists):
			respondError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrRedirectInvalid), errors.Is(err, service.ErrRedirectType):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create redirect")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Redirect created", "redirect": rule})
}

// DeleteRedirect removes a redirect rule.
func (a *API) DeleteRedirect(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid redirect ID")
		return
	}
	if err := a.redirects.Delete(id); err != nil {
		if errors.Is(err, service.ErrRedirectNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete redirect")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Redirect deleted"})
}
