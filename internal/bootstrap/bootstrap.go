// Package bootstrap brings a content store to the Sweet Bliss launch state.
// Every step is idempotent so a run can be repeated after a partial failure.
package bootstrap

import (
	"errors"
	"fmt"

	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/service"
	"go.uber.org/zap"
)

// Procedure runs the bootstrap steps against a store.
type Procedure struct {
	store Store
	seed  Seed
	log   *zap.Logger
}

// New returns a Procedure. A nil logger discards output.
func New(store Store, seed Seed, logger *zap.Logger) *Procedure {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Procedure{store: store, seed: seed, log: logger}
}

// Run executes the steps in order. It stops early only when the root page is
// missing or the homepage cannot be attached; Report.Err carries the cause.
func (p *Procedure) Run() *Report {
	report := &Report{Status: ReportOK}

	rootStep, root := p.resolveRoot()
	report.add(rootStep)
	if report.Halted() {
		p.log.Error("bootstrap halted", zap.String("step", StepRoot), zap.Error(rootStep.Err))
		return report
	}

	homeStep, home := p.ensureHomepage(root)
	report.add(homeStep)
	if report.Halted() {
		p.log.Error("bootstrap halted", zap.String("step", StepHomepage), zap.Error(homeStep.Err))
		return report
	}

	report.add(p.reconcileSite(home))
	report.add(p.seedPages(home))
	report.add(p.seedReferenceData())
	report.add(p.seedProducts())
	report.add(p.configureSEO())

	p.log.Info("bootstrap finished", zap.String("status", report.Status))
	return report
}

func (p *Procedure) resolveRoot() (StepResult, *db.Page) {
	step := newStep(StepRoot)

	roots, err := p.store.Pages.Roots()
	if err != nil {
		step.fail(fmt.Errorf("load root pages: %w", err))
		return step, nil
	}
	if len(roots) == 0 {
		step.fail(&PreconditionError{Reason: "store not initialized"})
		return step, nil
	}

	root := roots[0]
	step.Existing = 1
	for _, extra := range roots[1:] {
		if err := p.store.Pages.DeletePage(extra.ID); err != nil {
			p.log.Warn("failed to remove duplicate root page",
				zap.Uint("id", extra.ID), zap.String("path", extra.Path), zap.Error(err))
			step.warn("duplicate root %s not removed: %v", extra.Path, err)
			continue
		}
		p.log.Info("removed duplicate root page",
			zap.Uint("id", extra.ID), zap.String("path", extra.Path), zap.String("title", extra.Title))
		step.Removed++
	}
	return step, &root
}

func (p *Procedure) ensureHomepage(root *db.Page) (StepResult, *db.Page) {
	step := newStep(StepHomepage)

	home, err := p.store.Pages.FirstOfType(content.TypeHome)
	if err == nil {
		p.log.Info("homepage already exists", zap.Uint("id", home.ID), zap.String("url_path", home.URLPath))
		step.Existing = 1
		return step, home
	}
	if !errors.Is(err, service.ErrPageNotFound) {
		step.fail(fmt.Errorf("look up homepage: %w", err))
		return step, nil
	}

	p.removePlaceholders(&step)

	home = db.PageFromDefinition(p.seed.Home)
	if err := p.attach(root.ID, home); err != nil {
		step.fail(err)
		return step, nil
	}
	step.Created = 1
	p.log.Info("created homepage", zap.Uint("id", home.ID), zap.String("path", home.Path))

	if err := p.publish(home); err != nil {
		step.warn("homepage not published: %v", err)
	}
	return step, home
}

// removePlaceholders deletes whatever sits directly under the root before the
// homepage takes its place.
func (p *Procedure) removePlaceholders(step *StepResult) {
	pages, err := p.store.Pages.AtDepth(2)
	if err != nil {
		p.log.Warn("failed to list placeholder pages", zap.Error(err))
		step.warn("placeholder pages not listed: %v", err)
		return
	}
	for _, page := range pages {
		if err := p.store.Pages.DeletePage(page.ID); err != nil {
			p.log.Warn("failed to remove placeholder page", zap.Uint("id", page.ID), zap.Error(err))
			step.warn("placeholder %q not removed: %v", page.Title, err)
			continue
		}
		p.log.Info("removed placeholder page", zap.Uint("id", page.ID), zap.String("title", page.Title))
		step.Removed++
	}
}

// attach places page under the parent through the transactional insert and
// falls back to the manual one.
func (p *Procedure) attach(parentID uint, page *db.Page) error {
	primary := p.store.Pages.AddChild(parentID, page)
	if primary == nil {
		return nil
	}
	p.log.Warn("tree insert failed, appending manually", zap.String("slug", page.Slug), zap.Error(primary))

	secondary := p.store.Pages.AppendChildManually(parentID, page)
	if secondary == nil {
		return nil
	}
	return fmt.Errorf("attach %s: %w", page.Slug, errors.Join(primary, secondary))
}

func (p *Procedure) publish(page *db.Page) error {
	rev, err := p.store.Pages.SaveRevision(page.ID)
	if err != nil {
		return fmt.Errorf("save revision: %w", err)
	}
	published, err := p.store.Pages.Publish(page.ID, rev.ID)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	*page = *published
	return nil
}

func (p *Procedure) reconcileSite(home *db.Page) StepResult {
	step := newStep(StepSite)
	want := p.seed.Site

	site, created, err := p.store.Sites.GetOrCreateDefault(db.Site{
		Hostname:   want.Hostname,
		Port:       want.Port,
		SiteName:   want.Name,
		RootPageID: home.ID,
	})
	if err != nil {
		p.log.Warn("failed to load default site", zap.Error(err))
		step.warn("default site unavailable: %v", err)
		return step
	}
	if created {
		p.log.Info("created default site", zap.Uint("id", site.ID), zap.String("hostname", site.Hostname))
		step.Created = 1
		return step
	}

	step.Existing = 1
	if site.RootPageID == home.ID {
		return step
	}
	if err := p.store.Sites.Repoint(site.ID, home.ID, want.Name); err != nil {
		p.log.Warn("failed to repoint default site", zap.Uint("id", site.ID), zap.Error(err))
		step.warn("default site not repointed: %v", err)
		return step
	}
	p.log.Info("repointed default site to homepage",
		zap.Uint("id", site.ID), zap.Uint("old_root", site.RootPageID), zap.Uint("new_root", home.ID))
	step.Created = 1
	return step
}

func (p *Procedure) seedPages(home *db.Page) StepResult {
	step := newStep(StepPages)
	for _, def := range p.seed.Pages {
		p.seedPage(&step, home, def)
	}
	return step
}

func (p *Procedure) seedPage(step *StepResult, home *db.Page, def content.Definition) {
	existing, err := p.store.Pages.FindBySlug(def.Type, def.Slug)
	if err == nil {
		p.log.Debug("page already exists", zap.String("slug", def.Slug), zap.Uint("id", existing.ID))
		step.Existing++
		return
	}
	if !errors.Is(err, service.ErrPageNotFound) {
		p.log.Warn("failed to look up page", zap.String("slug", def.Slug), zap.Error(err))
		step.warn("%s: %v", def.Slug, err)
		return
	}

	if err := def.Validate(); err != nil {
		p.log.Warn("invalid page definition", zap.String("slug", def.Slug), zap.Error(err))
		step.warn("%s: %v", def.Slug, err)
		return
	}

	page := db.PageFromDefinition(def)
	if err := p.store.Pages.AddChild(home.ID, page); err != nil {
		p.log.Warn("failed to create page", zap.String("slug", def.Slug), zap.Error(err))
		step.warn("%s: %v", def.Slug, err)
		return
	}
	step.Created++

	if err := p.publish(page); err != nil {
		p.log.Warn("failed to publish page", zap.String("slug", def.Slug), zap.Error(err))
		step.warn("%s: %v", def.Slug, err)
		return
	}
	p.log.Info("created page", zap.String("slug", def.Slug), zap.String("url_path", page.URLPath))
}

func (p *Procedure) seedReferenceData() StepResult {
	step := newStep(StepReferenceData)
	cat := p.store.Catalogue

	for _, c := range p.seed.Categories {
		_, created, err := cat.EnsureCategory(c)
		p.count(&step, "category", c.Name, created, err)
	}
	for _, partner := range p.seed.Partners {
		_, created, err := cat.EnsurePartner(partner)
		p.count(&step, "partner", partner.Name, created, err)
	}
	for _, b := range p.seed.Brands {
		brand := b.Brand
		if b.PartnerName != "" {
			partner, err := cat.FindPartnerByName(b.PartnerName)
			if errors.Is(err, service.ErrPartnerNotFound) {
				p.log.Warn("partner not found, skipping brand",
					zap.String("brand", brand.Name), zap.String("partner", b.PartnerName))
				step.Skipped++
				continue
			}
			if err != nil {
				p.count(&step, "brand", brand.Name, false, err)
				continue
			}
			brand.PartnerID = &partner.ID
		}
		_, created, err := cat.EnsureBrand(brand)
		p.count(&step, "brand", brand.Name, created, err)
	}
	for _, member := range p.seed.Team {
		_, created, err := p.store.Team.EnsureMember(member)
		p.count(&step, "team member", member.Name, created, err)
	}
	return step
}

func (p *Procedure) seedProducts() StepResult {
	step := newStep(StepProducts)
	cat := p.store.Catalogue

	for _, ps := range p.seed.Products {
		product := ps.Product

		brand, err := cat.FindBrandByName(ps.BrandName)
		if err != nil {
			p.skipProduct(&step, product.Slug, "brand", ps.BrandName, err)
			continue
		}
		category, err := cat.FindCategoryByName(ps.CategoryName)
		if err != nil {
			p.skipProduct(&step, product.Slug, "category", ps.CategoryName, err)
			continue
		}

		product.BrandID = brand.ID
		product.CategoryID = category.ID
		product.IsFeatured = true
		product.IsActive = true
		_, created, err := cat.EnsureProduct(product)
		p.count(&step, "product", product.Slug, created, err)
	}
	return step
}

func (p *Procedure) skipProduct(step *StepResult, slug, kind, name string, err error) {
	if errors.Is(err, service.ErrBrandNotFound) || errors.Is(err, service.ErrCategoryNotFound) {
		p.log.Warn(kind+" not found, skipping product", zap.String("product", slug), zap.String(kind, name))
		step.Skipped++
		return
	}
	p.log.Warn("failed to look up "+kind, zap.String("product", slug), zap.Error(err))
	step.warn("%s: %v", slug, err)
}

func (p *Procedure) count(step *StepResult, kind, name string, created bool, err error) {
	switch {
	case err != nil:
		p.log.Warn("failed to seed "+kind, zap.String("name", name), zap.Error(err))
		step.warn("%s %s: %v", kind, name, err)
	case created:
		p.log.Info("created "+kind, zap.String("name", name))
		step.Created++
	default:
		step.Existing++
	}
}

func (p *Procedure) configureSEO() StepResult {
	step := newStep(StepSEO)

	site, err := p.store.Sites.Default()
	if err != nil {
		p.log.Warn("no default site for SEO settings", zap.Error(err))
		step.warn("default site unavailable: %v", err)
		return step
	}
	settings, err := p.store.SEO.ForSite(site.ID)
	if err != nil {
		p.log.Warn("failed to load SEO settings", zap.Uint("site_id", site.ID), zap.Error(err))
		step.warn("SEO settings unavailable: %v", err)
		return step
	}

	want := p.seed.SEO
	settings.SiteName = want.SiteName
	settings.CompanyName = want.CompanyName
	settings.CompanyDescription = want.CompanyDescription
	settings.DefaultMetaDescription = want.DefaultMetaDescription
	settings.CompanyPhone = want.Phone
	settings.CompanyEmail = want.Email
	settings.CompanyAddress = want.Address

	if err := p.store.SEO.Save(settings); err != nil {
		p.log.Warn("failed to save SEO settings", zap.Uint("site_id", site.ID), zap.Error(err))
		step.warn("SEO settings not saved: %v", err)
		return step
	}
	p.log.Info("configured global SEO settings", zap.Uint("site_id", site.ID))
	step.Created = 1
	return step
}
