package service

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sweetbliss/internal/db"
	"gorm.io/gorm"
)

var (
	ErrRedirectNotFound = errors.New("redirect not found")
	ErrRedirectExists   = errors.New("redirect for this path already exists")
	ErrRedirectInvalid  = errors.New("redirect paths must differ and start with /")
	ErrRedirectType     = errors.New("redirect type must be 301 or 302")
)

// RedirectInput describes a redirect to create.
type RedirectInput struct {
	OldPath      string
	NewPath      string
	RedirectType int
	IsActive     bool
}

// RedirectService manages path redirects.
type RedirectService struct {
	db *gorm.DB
}

// NewRedirectService returns a new RedirectService instance.
func NewRedirectService(gdb *gorm.DB) *RedirectService {
	return &RedirectService{db: gdb}
}

// Lookup finds the active redirect for a request path. Paths are compared with
// and without a trailing slash.
func (s *RedirectService) Lookup(path string) (*db.RedirectRule, error) {
	normalized := normalizeRedirectPath(path)
	if normalized == "" {
		return nil, ErrRedirectNotFound
	}
	candidates := []string{normalized}
	if strings.HasSuffix(normalized, "/") && normalized != "/" {
		candidates = append(candidates, strings.TrimSuffix(normalized, "/"))
	} else if !strings.HasSuffix(normalized, "/") {
		candidates = append(candidates, normalized+"/")
	}

	var rule db.RedirectRule
	if err := s.db.Where("old_path IN ? AND is_active = ?", candidates, true).Order("id asc").First(&rule).Error; err != nil {
		return nil, notFoundAs(err, ErrRedirectNotFound)
	}
	return &rule, nil
}

// List returns every redirect by old path.
func (s *RedirectService) List() ([]db.RedirectRule, error) {
	var rules []db.RedirectRule
	if err := s.db.Order("old_path asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Create stores a new redirect. RedirectType defaults to 301.
func (s *RedirectService) Create(input RedirectInput) (*db.RedirectRule, error) {
	oldPath := normalizeRedirectPath(input.OldPath)
	newPath := strings.TrimSpace(input.NewPath)
	if !strings.HasPrefix(newPath, "http://") && !strings.HasPrefix(newPath, "https://") {
		newPath = normalizeRedirectPath(newPath)
	}
	if oldPath == "" || newPath == "" || oldPath == newPath {
		return nil, ErrRedirectInvalid
	}

	code := input.RedirectType
	if code == 0 {
		code = http.StatusMovedPermanently
	}
	if code != http.StatusMovedPermanently && code != http.StatusFound {
		return nil, ErrRedirectType
	}

	var count int64
	if err := s.db.Model(&db.RedirectRule{}).Where("old_path = ?", oldPath).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrRedirectExists
	}

	rule := db.RedirectRule{OldPath: oldPath, NewPath: newPath, RedirectType: code, IsActive: input.IsActive}
	if err := s.db.Create(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// Delete removes a redirect.
func (s *RedirectService) Delete(id uint) error {
	result := s.db.Delete(&db.RedirectRule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRedirectNotFound
	}
	return nil
}

func normalizeRedirectPath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return ""
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
