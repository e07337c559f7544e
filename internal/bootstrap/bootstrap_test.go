package bootstrap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetbliss/internal/content"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/seo"
	"github.com/sweetbliss/internal/service"
	"github.com/sweetbliss/internal/testutil"
	"gorm.io/gorm"
)

// initializeStore mirrors the migrate command: root, welcome page and a
// default site serving the welcome page.
func initializeStore(t *testing.T, gdb *gorm.DB) *db.Page {
	t.Helper()
	pages := service.NewPageService(gdb)
	root, _, err := pages.EnsureInitialized()
	require.NoError(t, err)

	children, err := pages.Children(root.ID)
	require.NoError(t, err)
	require.NotEmpty(t, children)

	_, _, err = service.NewSiteService(gdb).GetOrCreateDefault(db.Site{
		Hostname:   "localhost",
		Port:       80,
		SiteName:   "localhost",
		RootPageID: children[0].ID,
	})
	require.NoError(t, err)
	return root
}

func countRows(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

type rowCounts map[string]int64

func snapshotCounts(t *testing.T, gdb *gorm.DB) rowCounts {
	t.Helper()
	return rowCounts{
		"pages":      countRows(t, gdb, &db.Page{}),
		"revisions":  countRows(t, gdb, &db.PageRevision{}),
		"sites":      countRows(t, gdb, &db.Site{}),
		"categories": countRows(t, gdb, &db.ProductCategory{}),
		"partners":   countRows(t, gdb, &db.Partner{}),
		"brands":     countRows(t, gdb, &db.Brand{}),
		"team":       countRows(t, gdb, &db.TeamMember{}),
		"products":   countRows(t, gdb, &db.Product{}),
		"seo":        countRows(t, gdb, &db.GlobalSEOSettings{}),
	}
}

func TestRunSeedsFreshStore(t *testing.T) {
	gdb := testutil.NewDB(t)
	initializeStore(t, gdb)
	logger, _ := testutil.NewObservedLogger()

	report := New(NewStore(gdb), DefaultSeed(), logger).Run()
	require.NoError(t, report.Err())
	assert.Equal(t, ReportOK, report.Status)
	require.Len(t, report.Steps, 7)

	counts := snapshotCounts(t, gdb)
	assert.Equal(t, int64(9), counts["pages"], "root, homepage and seven children")
	assert.Equal(t, int64(1), counts["sites"])
	assert.Equal(t, int64(5), counts["categories"])
	assert.Equal(t, int64(4), counts["partners"])
	assert.Equal(t, int64(6), counts["brands"])
	assert.Equal(t, int64(3), counts["team"])
	assert.Equal(t, int64(7), counts["products"])
	assert.Equal(t, int64(1), counts["seo"])

	pages := service.NewPageService(gdb)
	home, err := pages.FirstOfType(content.TypeHome)
	require.NoError(t, err)
	assert.True(t, home.Live)
	assert.Equal(t, 2, home.Depth)
	assert.Equal(t, 7, home.NumChild)
	assert.Equal(t, "Sweet Bliss", home.Body.Data().Field("hero_title"))

	site, err := service.NewSiteService(gdb).Default()
	require.NoError(t, err)
	assert.Equal(t, home.ID, site.RootPageID)
	assert.Equal(t, "Sweet Bliss", site.SiteName)

	about, err := pages.ResolveLive(home, "about")
	require.NoError(t, err)
	assert.Equal(t, content.TypeAbout, about.PageType)
	assert.Equal(t, seo.SchemaAboutPage, about.SEO.SchemaType)
	section, ok := about.Body.Data().Section("mission")
	require.True(t, ok)
	assert.Contains(t, section.HTML, "trusted confectionery")

	_, err = pages.FindBySlug(content.TypePlaceholder, "home")
	assert.ErrorIs(t, err, service.ErrPageNotFound, "welcome page replaced")

	var brand db.Brand
	require.NoError(t, gdb.Preload("Partner").Where("name = ?", "Barbican").First(&brand).Error)
	require.NotNil(t, brand.Partner)
	assert.Equal(t, "Aujan Industries", brand.Partner.Name)

	var product db.Product
	require.NoError(t, gdb.Preload("Brand").Preload("Category").Where("slug = ?", "kitkat-4-finger").First(&product).Error)
	assert.True(t, product.IsFeatured)
	assert.True(t, product.IsActive)
	assert.Equal(t, "KitKat", product.Brand.Name)
	assert.Equal(t, "Chocolates & Confectionery", product.Category.Name)
}

func TestRunIsIdempotent(t *testing.T) {
	gdb := testutil.NewDB(t)
	initializeStore(t, gdb)
	logger, _ := testutil.NewObservedLogger()
	procedure := New(NewStore(gdb), DefaultSeed(), logger)

	first := procedure.Run()
	require.NoError(t, first.Err())
	afterFirst := snapshotCounts(t, gdb)

	second := procedure.Run()
	require.NoError(t, second.Err())
	assert.Equal(t, afterFirst, snapshotCounts(t, gdb))

	for _, name := range []string{StepHomepage, StepSite, StepPages, StepReferenceData, StepProducts} {
		step, ok := second.Step(name)
		require.True(t, ok, name)
		assert.Equal(t, StatusSkipped, step.Status, name)
		assert.Zero(t, step.Created, name)
	}
}

func TestRunWithoutRootWritesNothing(t *testing.T) {
	gdb := testutil.NewDB(t)
	logger, logs := testutil.NewObservedLogger()

	report := New(NewStore(gdb), DefaultSeed(), logger).Run()

	assert.True(t, report.Halted())
	var precondition *PreconditionError
	require.ErrorAs(t, report.Err(), &precondition)
	assert.Equal(t, "store not initialized", precondition.Reason)
	require.Len(t, report.Steps, 1)

	for name, n := range snapshotCounts(t, gdb) {
		assert.Zero(t, n, name)
	}
	assert.Equal(t, 1, logs.FilterMessage("bootstrap halted").Len())
}

func TestRunReusesExistingHomepage(t *testing.T) {
	gdb := testutil.NewDB(t)
	root := initializeStore(t, gdb)
	pages := service.NewPageService(gdb)

	existing := db.PageFromDefinition(content.Definition{
		Type:  content.TypeHome,
		Title: "Existing home",
		Slug:  "start",
		SEO:   seo.DefaultFields(),
	})
	require.NoError(t, pages.AddChild(root.ID, existing))

	logger, _ := testutil.NewObservedLogger()
	procedure := New(NewStore(gdb), DefaultSeed(), logger)
	for i := 0; i < 3; i++ {
		report := procedure.Run()
		require.NoError(t, report.Err())
		step, ok := report.Step(StepHomepage)
		require.True(t, ok)
		assert.Equal(t, 1, step.Existing)
		assert.Zero(t, step.Created)
	}

	var homes int64
	require.NoError(t, gdb.Model(&db.Page{}).Where("page_type = ?", content.TypeHome).Count(&homes).Error)
	assert.Equal(t, int64(1), homes)

	children, err := pages.Children(existing.ID)
	require.NoError(t, err)
	assert.Len(t, children, 7)
}

func TestRunSkipsBrandWithUnknownPartner(t *testing.T) {
	gdb := testutil.NewDB(t)
	initializeStore(t, gdb)
	logger, logs := testutil.NewObservedLogger()

	seed := DefaultSeed()
	seed.Brands = append([]BrandSeed{{
		Brand:       db.Brand{Name: "Mystery Snacks"},
		PartnerName: "Unknown Holdings",
	}}, seed.Brands...)

	report := New(NewStore(gdb), seed, logger).Run()
	require.NoError(t, report.Err())

	step, ok := report.Step(StepReferenceData)
	require.True(t, ok)
	assert.Equal(t, 1, step.Skipped)
	assert.Equal(t, int64(6), countRows(t, gdb, &db.Brand{}))

	_, err := service.NewCatalogueService(gdb, 0).FindBrandByName("Mystery Snacks")
	assert.ErrorIs(t, err, service.ErrBrandNotFound)

	skipped := logs.FilterMessage("partner not found, skipping brand").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "Mystery Snacks", skipped[0].ContextMap()["brand"])
}

func TestRunSkipsProductWithMissingCategory(t *testing.T) {
	gdb := testutil.NewDB(t)
	initializeStore(t, gdb)
	logger, logs := testutil.NewObservedLogger()

	seed := DefaultSeed()
	seed.Products = append(seed.Products, featured(
		"KitKat Frozen", "kitkat-frozen", "Ice cream bar.", "KitKat", "Frozen Desserts", nil,
	))

	report := New(NewStore(gdb), seed, logger).Run()
	require.NoError(t, report.Err())

	step, ok := report.Step(StepProducts)
	require.True(t, ok)
	assert.Equal(t, 1, step.Skipped)
	assert.Equal(t, 7, step.Created)
	assert.Equal(t, int64(7), countRows(t, gdb, &db.Product{}))

	_, err := service.NewCatalogueService(gdb, 0).GetProductBySlug("kitkat-frozen")
	assert.ErrorIs(t, err, service.ErrProductNotFound)
	assert.Equal(t, 1, logs.FilterMessage("category not found, skipping product").Len())
}

func TestRunRemovesDuplicateRoots(t *testing.T) {
	gdb := testutil.NewDB(t)
	root := initializeStore(t, gdb)
	pages := service.NewPageService(gdb)

	stray := &db.Page{Slug: "stray", Title: "Stray root", PageType: content.TypeRoot, SEO: seo.DefaultFields()}
	require.NoError(t, pages.CreateRoot(stray))
	roots, err := pages.Roots()
	require.NoError(t, err)
	require.Len(t, roots, 2)

	logger, logs := testutil.NewObservedLogger()
	report := New(NewStore(gdb), DefaultSeed(), logger).Run()
	require.NoError(t, report.Err())

	roots, err = pages.Roots()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, root.ID, roots[0].ID)

	removed := logs.FilterMessage("removed duplicate root page").All()
	require.Len(t, removed, 1)
	assert.Equal(t, "Stray root", removed[0].ContextMap()["title"])

	step, _ := report.Step(StepRoot)
	assert.Equal(t, 1, step.Removed)
}

func TestRunOverwritesSEOSettings(t *testing.T) {
	gdb := testutil.NewDB(t)
	initializeStore(t, gdb)

	site, err := service.NewSiteService(gdb).Default()
	require.NoError(t, err)
	settingsSvc := service.NewSEOSettingsService(gdb)
	settings, err := settingsSvc.ForSite(site.ID)
	require.NoError(t, err)
	settings.SiteName = "Old name"
	settings.CompanyPhone = "000"
	settings.DefaultMetaDescription = "stale"
	settings.GoogleAnalyticsID = "G-KEEP"
	require.NoError(t, settingsSvc.Save(settings))

	logger, logs := testutil.NewObservedLogger()
	report := New(NewStore(gdb), DefaultSeed(), logger).Run()
	require.NoError(t, report.Err())

	got, err := settingsSvc.ForSite(site.ID)
	require.NoError(t, err)
	want := DefaultSeed().SEO
	assert.Equal(t, want.SiteName, got.SiteName)
	assert.Equal(t, want.Phone, got.CompanyPhone)
	assert.Equal(t, want.Email, got.CompanyEmail)
	assert.Equal(t, want.Address, got.CompanyAddress)
	assert.Equal(t, want.DefaultMetaDescription, got.DefaultMetaDescription)
	assert.Equal(t, want.CompanyDescription, got.CompanyDescription)
	assert.Equal(t, "G-KEEP", got.GoogleAnalyticsID, "fields outside the fixed set are untouched")
	assert.Equal(t, int64(1), countRows(t, gdb, &db.GlobalSEOSettings{}))
	assert.Equal(t, 1, logs.FilterMessage("configured global SEO settings").Len())
}

// flakyTree fails the attach paths for the homepage on demand.
type flakyTree struct {
	*service.PageService
	addErr    error
	appendErr error
}

func (f *flakyTree) AddChild(parentID uint, page *db.Page) error {
	if f.addErr != nil && page.PageType == content.TypeHome {
		return f.addErr
	}
	return f.PageService.AddChild(parentID, page)
}

func (f *flakyTree) AppendChildManually(parentID uint, page *db.Page) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	return f.PageService.AppendChildManually(parentID, page)
}

func TestRunFallsBackToManualAppend(t *testing.T) {
	gdb := testutil.NewDB(t)
	initializeStore(t, gdb)
	logger, logs := testutil.NewObservedLogger()

	store := NewStore(gdb)
	store.Pages = &flakyTree{PageService: service.NewPageService(gdb), addErr: errors.New("tree locked")}

	report := New(store, DefaultSeed(), logger).Run()
	require.NoError(t, report.Err())

	home, err := service.NewPageService(gdb).FirstOfType(content.TypeHome)
	require.NoError(t, err)
	assert.True(t, home.Live)
	assert.Equal(t, "00010001", home.Path)
	assert.Equal(t, 1, logs.FilterMessage("tree insert failed, appending manually").Len())

	step, _ := report.Step(StepPages)
	assert.Equal(t, 7, step.Created)
}

func TestRunHaltsWhenHomepageCannotBeAttached(t *testing.T) {
	gdb := testutil.NewDB(t)
	initializeStore(t, gdb)
	logger, _ := testutil.NewObservedLogger()

	primary := errors.New("tree locked")
	secondary := errors.New("disk full")
	store := NewStore(gdb)
	store.Pages = &flakyTree{PageService: service.NewPageService(gdb), addErr: primary, appendErr: secondary}

	report := New(store, DefaultSeed(), logger).Run()

	assert.True(t, report.Halted())
	assert.ErrorIs(t, report.Err(), primary)
	assert.ErrorIs(t, report.Err(), secondary)
	require.Len(t, report.Steps, 2)

	_, err := service.NewPageService(gdb).FirstOfType(content.TypeHome)
	assert.ErrorIs(t, err, service.ErrPageNotFound)
	var deeper int64
	require.NoError(t, gdb.Model(&db.Page{}).Where("depth > ?", 1).Count(&deeper).Error)
	assert.Zero(t, deeper)
	assert.Zero(t, countRows(t, gdb, &db.ProductCategory{}))
}

func TestWriteSummary(t *testing.T) {
	gdb := testutil.NewDB(t)
	initializeStore(t, gdb)

	var out bytes.Buffer
	report := New(NewStore(gdb), DefaultSeed(), nil).Run()
	require.NoError(t, report.WriteSummary(&out))
	assert.Contains(t, out.String(), "Bootstrap ok")
	assert.Contains(t, out.String(), StepProducts)
	assert.Contains(t, out.String(), "Next steps")

	out.Reset()
	halted := New(NewStore(testutil.NewDB(t)), DefaultSeed(), nil).Run()
	require.NoError(t, halted.WriteSummary(&out))
	assert.Contains(t, out.String(), "Bootstrap halted")
	assert.Contains(t, out.String(), "store not initialized")
	assert.NotContains(t, out.String(), "Next steps")
}
