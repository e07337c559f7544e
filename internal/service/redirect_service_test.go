package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetbliss/internal/testutil"
)

func TestRedirectLifecycle(t *testing.T) {
	svc := NewRedirectService(testutil.NewDB(t))

	rule, err := svc.Create(RedirectInput{OldPath: "old-products/", NewPath: "/products/", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "/old-products/", rule.OldPath)
	assert.Equal(t, http.StatusMovedPermanently, rule.RedirectType)

	found, err := svc.Lookup("/old-products")
	require.NoError(t, err)
	assert.Equal(t, rule.ID, found.ID)

	found, err = svc.Lookup("/old-products/?utm=1")
	require.NoError(t, err)
	assert.Equal(t, "/products/", found.NewPath)

	_, err = svc.Create(RedirectInput{OldPath: "/old-products/", NewPath: "/elsewhere/"})
	assert.ErrorIs(t, err, ErrRedirectExists)
	_, err = svc.Create(RedirectInput{OldPath: "/a", NewPath: "/a"})
	assert.ErrorIs(t, err, ErrRedirectInvalid)
	_, err = svc.Create(RedirectInput{OldPath: "/a", NewPath: "/b", RedirectType: 307})
	assert.ErrorIs(t, err, ErrRedirectType)

	inactive, err := svc.Create(RedirectInput{OldPath: "/promo", NewPath: "https://sweetbliss.pk/", RedirectType: http.StatusFound})
	require.NoError(t, err)
	_, err = svc.Lookup("/promo")
	assert.ErrorIs(t, err, ErrRedirectNotFound)

	rules, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, rules, 2)

	require.NoError(t, svc.Delete(inactive.ID))
	assert.ErrorIs(t, svc.Delete(inactive.ID), ErrRedirectNotFound)
}
