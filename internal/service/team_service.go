package service

import (
	"strings"

	"github.com/sweetbliss/internal/db"
	"gorm.io/gorm"
)

// TeamService manages team members.
type TeamService struct {
	db *gorm.DB
}

// NewTeamService returns a new TeamService instance.
func NewTeamService(gdb *gorm.DB) *TeamService {
	return &TeamService{db: gdb}
}

// EnsureMember creates the member unless one with the same name exists.
func (s *TeamService) EnsureMember(member db.TeamMember) (*db.TeamMember, bool, error) {
	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return nil, false, ErrNameRequired
	}
	return ensureRecord(s.db, member, "name", member.Name)
}

// ListActive returns active members by display order. A positive limit caps
// the result.
func (s *TeamService) ListActive(limit int) ([]db.TeamMember, error) {
	query := s.db.Where("is_active = ?", true).Order("sort_order asc").Order("name asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var members []db.TeamMember
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
