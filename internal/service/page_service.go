package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/seo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound      = errors.New("page not found")
	ErrPageRequired      = errors.New("page is required")
	ErrSlugConflict      = errors.New("slug is already used by a sibling page")
	ErrRevisionNotFound  = errors.New("page revision not found")
	ErrRevisionMismatch  = errors.New("revision does not belong to page")
	ErrNoRevision        = errors.New("page has no revision to publish")
	ErrRootPageImmutable = errors.New("root pages cannot be edited")
)

const (
	rootSlug        = "root"
	placeholderSlug = "home"
	placeholderName = "Welcome to your new site!"
)

// PageService manages the page tree: placement, revisions and publishing.
type PageService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb, now: time.Now}
}

// Get loads a page by id.
func (s *PageService) Get(id uint) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		return nil, pageLookupError(err)
	}
	return &page, nil
}

// Tree returns every page in depth-first order.
func (s *PageService) Tree() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("path asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Roots returns the depth-1 pages ordered by path.
func (s *PageService) Roots() ([]db.Page, error) {
	return s.AtDepth(1)
}

// AtDepth returns every page at the given depth ordered by path.
func (s *PageService) AtDepth(depth int) ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Where("depth = ?", depth).Order("path asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Children returns the direct children of a page ordered by path.
func (s *PageService) Children(parentID uint) ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Where("parent_id = ?", parentID).Order("path asc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// LiveMenuChildren returns the live children flagged for navigation.
func (s *PageService) LiveMenuChildren(parentID uint) ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.
		Where("parent_id = ? AND live = ? AND show_in_menus = ?", parentID, true, true).
		Order("path asc").
		Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// FirstOfType returns the first page of a type in tree order.
func (s *PageService) FirstOfType(pageType string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("page_type = ?", pageType).Order("path asc").First(&page).Error; err != nil {
		return nil, pageLookupError(err)
	}
	return &page, nil
}

// FindBySlug returns the first page with the given type and slug.
func (s *PageService) FindBySlug(pageType, slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.
		Where("page_type = ? AND slug = ?", pageType, strings.ToLower(strings.TrimSpace(slug))).
		Order("path asc").
		First(&page).Error; err != nil {
		return nil, pageLookupError(err)
	}
	return &page, nil
}

// ResolveLive maps a request path below a site root to a live page.
func (s *PageService) ResolveLive(root *db.Page, requestPath string) (*db.Page, error) {
	if root == nil {
		return nil, ErrPageNotFound
	}
	target := root.URLPath
	if clean := strings.Trim(requestPath, "/"); clean != "" {
		target += strings.ToLower(clean) + "/"
	}

	var page db.Page
	if err := s.db.Where("url_path = ? AND live = ?", target, true).Order("path asc").First(&page).Error; err != nil {
		return nil, pageLookupError(err)
	}
	return &page, nil
}

// CreateRoot stores a page as a new top-level node.
func (s *PageService) CreateRoot(page *db.Page) error {
	if page == nil {
		return ErrPageRequired
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var last []string
		if err := tx.Model(&db.Page{}).Where("depth = ?", 1).Order("path desc").Limit(1).Pluck("path", &last).Error; err != nil {
			return err
		}
		path, err := nextChildPath("", firstOrEmpty(last))
		if err != nil {
			return err
		}

		page.ID = 0
		page.ParentID = nil
		page.Path = path
		page.Depth = 1
		page.NumChild = 0
		page.URLPath = "/"
		if page.Slug == "" {
			page.Slug = rootSlug
		}
		if page.PageType == "" {
			page.PageType = content.TypeRoot
		}
		return tx.Create(page).Error
	})
}

// AddChild attaches page as the last child of parent inside a single
// transaction. The page is stored unpublished.
func (s *PageService) AddChild(parentID uint, page *db.Page) error {
	if page == nil {
		return ErrPageRequired
	}
	slug, err := content.NormalizeSlug(page.Slug)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var parent db.Page
		if err := tx.First(&parent, parentID).Error; err != nil {
			return pageLookupError(err)
		}

		var clash int64
		if err := tx.Model(&db.Page{}).Where("parent_id = ? AND slug = ?", parent.ID, slug).Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return fmt.Errorf("%w: %s", ErrSlugConflict, slug)
		}

		last, err := lastChildPath(tx, &parent)
		if err != nil {
			return err
		}
		path, err := nextChildPath(parent.Path, last)
		if err != nil {
			return err
		}

		placeUnder(page, &parent, path, slug)
		if err := tx.Create(page).Error; err != nil {
			return err
		}
		return recountChildren(tx, parent.ID)
	})
}

// AppendChildManually places page under parent without a transaction by
// computing the next sibling slot itself. It is the fallback when AddChild
// fails on a store whose bookkeeping has drifted.
func (s *PageService) AppendChildManually(parentID uint, page *db.Page) error {
	if page == nil {
		return ErrPageRequired
	}
	slug, err := content.NormalizeSlug(page.Slug)
	if err != nil {
		return err
	}

	var parent db.Page
	if err := s.db.First(&parent, parentID).Error; err != nil {
		return pageLookupError(err)
	}

	last, err := lastChildPath(s.db, &parent)
	if err != nil {
		return err
	}
	path, err := nextChildPath(parent.Path, last)
	if err != nil {
		return err
	}

	placeUnder(page, &parent, path, slug)
	if err := s.db.Create(page).Error; err != nil {
		return err
	}

	// num_child is recounted on every insert, so a failure here heals later.
	_ = recountChildren(s.db, parent.ID)
	return nil
}

// DeletePage removes a page with its whole subtree and their revisions.
func (s *PageService) DeletePage(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var page db.Page
		if err := tx.First(&page, id).Error; err != nil {
			return pageLookupError(err)
		}

		var ids []uint
		if err := tx.Model(&db.Page{}).Where("path LIKE ?", page.Path+"%").Pluck("id", &ids).Error; err != nil {
			return err
		}
		if err := tx.Where("page_id IN ?", ids).Delete(&db.PageRevision{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", ids).Delete(&db.Page{}).Error; err != nil {
			return err
		}
		if page.ParentID != nil {
			return recountChildren(tx, *page.ParentID)
		}
		return nil
	})
}

// SaveRevision snapshots the page's current content as its latest revision.
func (s *PageService) SaveRevision(pageID uint) (*db.PageRevision, error) {
	var revision *db.PageRevision
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var page db.Page
		if err := tx.First(&page, pageID).Error; err != nil {
			return pageLookupError(err)
		}
		rev, err := appendRevision(tx, &page, page.Snapshot())
		if err != nil {
			return err
		}
		revision = rev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return revision, nil
}

// Publish makes a revision the live content of its page.
func (s *PageService) Publish(pageID, revisionID uint) (*db.Page, error) {
	var page db.Page
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&page, pageID).Error; err != nil {
			return pageLookupError(err)
		}

		var rev db.PageRevision
		if err := tx.First(&rev, revisionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRevisionNotFound
			}
			return err
		}
		if rev.PageID != page.ID {
			return ErrRevisionMismatch
		}

		now := s.now()
		liveID := rev.ID
		page.ApplySnapshot(rev.Snapshot.Data())
		page.Live = true
		page.LiveRevisionID = &liveID
		page.HasUnpublishedChanges = page.LatestRevisionID != nil && *page.LatestRevisionID != liveID
		page.LastPublishedAt = &now
		if page.FirstPublishedAt == nil {
			page.FirstPublishedAt = &now
		}
		return tx.Save(&page).Error
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// PublishLatest publishes the page's most recent revision.
func (s *PageService) PublishLatest(pageID uint) (*db.Page, error) {
	page, err := s.Get(pageID)
	if err != nil {
		return nil, err
	}
	if page.LatestRevisionID == nil {
		return nil, ErrNoRevision
	}
	return s.Publish(page.ID, *page.LatestRevisionID)
}

// Unpublish takes a page offline without touching its content.
func (s *PageService) Unpublish(pageID uint) (*db.Page, error) {
	page, err := s.Get(pageID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(page).Updates(map[string]any{"live": false, "live_revision_id": nil}).Error; err != nil {
		return nil, err
	}
	return s.Get(pageID)
}

// Revisions lists a page's revisions newest first.
func (s *PageService) Revisions(pageID uint) ([]db.PageRevision, error) {
	if _, err := s.Get(pageID); err != nil {
		return nil, err
	}
	var revisions []db.PageRevision
	if err := s.db.Where("page_id = ?", pageID).Order("id desc").Find(&revisions).Error; err != nil {
		return nil, err
	}
	return revisions, nil
}

// EnsureInitialized creates the tree root and the generic welcome page when
// the store is empty. It reports whether anything was created.
func (s *PageService) EnsureInitialized() (*db.Page, bool, error) {
	roots, err := s.Roots()
	if err != nil {
		return nil, false, err
	}
	if len(roots) > 0 {
		return &roots[0], false, nil
	}

	root := &db.Page{
		Slug:     rootSlug,
		Title:    "Root",
		PageType: content.TypeRoot,
		Live:     true,
		SEO:      seo.DefaultFields(),
	}
	if err := s.CreateRoot(root); err != nil {
		return nil, false, fmt.Errorf("create root page: %w", err)
	}

	welcome := &db.Page{
		Slug:     placeholderSlug,
		Title:    placeholderName,
		PageType: content.TypePlaceholder,
		SEO:      seo.DefaultFields(),
	}
	if err := s.AddChild(root.ID, welcome); err != nil {
		return nil, false, fmt.Errorf("create welcome page: %w", err)
	}
	rev, err := s.SaveRevision(welcome.ID)
	if err != nil {
		return nil, false, err
	}
	if _, err := s.Publish(welcome.ID, rev.ID); err != nil {
		return nil, false, err
	}
	return root, true, nil
}

func appendRevision(tx *gorm.DB, page *db.Page, snapshot db.PageSnapshot) (*db.PageRevision, error) {
	rev := db.PageRevision{PageID: page.ID, Snapshot: datatypes.NewJSONType(snapshot)}
	if err := tx.Create(&rev).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&db.Page{}).Where("id = ?", page.ID).Updates(map[string]any{
		"latest_revision_id":      rev.ID,
		"has_unpublished_changes": true,
	}).Error; err != nil {
		return nil, err
	}
	latest := rev.ID
	page.LatestRevisionID = &latest
	page.HasUnpublishedChanges = true
	return &rev, nil
}

func placeUnder(page, parent *db.Page, path, slug string) {
	parentID := parent.ID
	page.ID = 0
	page.ParentID = &parentID
	page.Path = path
	page.Depth = parent.Depth + 1
	page.NumChild = 0
	page.Slug = slug
	page.URLPath = parent.URLPath + slug + "/"
	page.Live = false
	page.LiveRevisionID = nil
	page.LatestRevisionID = nil
	page.FirstPublishedAt = nil
	page.LastPublishedAt = nil
}

func lastChildPath(tx *gorm.DB, parent *db.Page) (string, error) {
	var paths []string
	if err := tx.Model(&db.Page{}).
		Where("path LIKE ? AND depth = ?", parent.Path+"%", parent.Depth+1).
		Order("path desc").
		Limit(1).
		Pluck("path", &paths).Error; err != nil {
		return "", err
	}
	return firstOrEmpty(paths), nil
}

func recountChildren(tx *gorm.DB, parentID uint) error {
	var count int64
	if err := tx.Model(&db.Page{}).Where("parent_id = ?", parentID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&db.Page{}).Where("id = ?", parentID).UpdateColumn("num_child", count).Error
}

func pageLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPageNotFound
	}
	return err
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
