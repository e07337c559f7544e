package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetbliss/internal/db"
	"github.com/sweetbliss/internal/testutil"
)

func TestTeamEnsureMemberIsIdempotent(t *testing.T) {
	svc := NewTeamService(testutil.NewDB(t))

	first, created, err := svc.EnsureMember(db.TeamMember{Name: " Azan Anwar ", Position: "Director", IsActive: true})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Azan Anwar", first.Name)

	again, created, err := svc.EnsureMember(db.TeamMember{Name: "Azan Anwar", Position: "Changed"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Director", again.Position)

	_, _, err = svc.EnsureMember(db.TeamMember{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestTeamListActiveOrdersAndLimits(t *testing.T) {
	svc := NewTeamService(testutil.NewDB(t))

	for _, m := range []db.TeamMember{
		{Name: "Mowahid Hassan", SortOrder: 3, IsActive: true},
		{Name: "Sheraz Gulzar", SortOrder: 1, IsActive: true},
		{Name: "Former Member", SortOrder: 0, IsActive: false},
		{Name: "Azan Anwar", SortOrder: 2, IsActive: true},
	} {
		_, _, err := svc.EnsureMember(m)
		require.NoError(t, err)
	}

	members, err := svc.ListActive(0)
	require.NoError(t, err)
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Sheraz Gulzar", "Azan Anwar", "Mowahid Hassan"}, names)

	members, err = svc.ListActive(2)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}
