package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tpb/pkg/domain-errors"
)

func TestDivisionAddress(t *testing.T) {
	t.Run("parses single-level district addresses", func(t *testing.T) {
		addr, err := ParseDivisionAddress("ocd-division/country:us/state:ct/sldu:29")
		require.NoError(t, err)
		assert.Equal(t, DivisionAddress{Level: LevelStateUpper, State: "ct", District: "29"}, addr)
		assert.Equal(t, "ocd-division/country:us/state:ct/sldu:29", addr.String())
	})

	t.Run("parses state addresses", func(t *testing.T) {
		addr, err := ParseDivisionAddress("OCD-Division/country:us/state:CT")
		require.NoError(t, err)
		assert.Equal(t, LevelState, addr.Level)
		assert.Equal(t, "ocd-division/country:us/state:ct", addr.String())
	})

	t.Run("rejects multi-level and malformed addresses", func(t *testing.T) {
		for _, s := range []string{
			"ocd-division/country:us/state:ct/cd:2/sldu:29",
			"ocd-division/country:us",
			"ocd-division/country:us/state:ct/place:putnam",
			"ocd-division/country:us/state:ct/cd",
			"ocd-division/country:us/state:connecticut",
		} {
			_, err := ParseDivisionAddress(s)
			require.Error(t, err, s)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), s)
		}
	})

	t.Run("equality is exact, not a prefix match", func(t *testing.T) {
		a, _ := NewDistrictAddress(LevelStateLower, "CT", "5")
		b, _ := NewDistrictAddress(LevelStateLower, "ct", "50")
		c, _ := NewDistrictAddress(LevelStateUpper, "ct", "5")
		d, _ := NewDistrictAddress(LevelStateLower, " ct ", " 5 ")
		assert.NotEqual(t, a, b)
		assert.NotEqual(t, a, c)
		assert.Equal(t, a, d)
	})
}

func TestTownDistrictAddresses(t *testing.T) {
	t.Run("skips missing districts", func(t *testing.T) {
		town := &Town{Name: "Putnam", StateAbbreviation: "CT", StateSenateDistrict: "29"}
		addrs := town.DistrictAddresses()
		require.Len(t, addrs, 1)
		assert.Equal(t, LevelStateUpper, addrs[0].Level)
	})

	t.Run("builds all three in fixed order", func(t *testing.T) {
		town := &Town{
			Name:                  "Putnam",
			StateAbbreviation:     "CT",
			CongressionalDistrict: "2",
			StateSenateDistrict:   "29",
			StateHouseDistrict:    "51",
		}
		addrs := town.DistrictAddresses()
		require.Len(t, addrs, 3)
		assert.Equal(t, "ocd-division/country:us/state:ct/cd:2", addrs[0].String())
		assert.Equal(t, "ocd-division/country:us/state:ct/sldu:29", addrs[1].String())
		assert.Equal(t, "ocd-division/country:us/state:ct/sldl:51", addrs[2].String())
	})
}

func TestNewThought(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("defaults to town jurisdiction", func(t *testing.T) {
		th, err := NewThought(7, "Fix the bridge", "", now)
		require.NoError(t, err)
		assert.Equal(t, JurisdictionTown, th.Jurisdiction)
		assert.True(t, th.IsLocal)
		assert.False(t, th.IsState)
		assert.False(t, th.IsFederal)
		assert.Equal(t, ThoughtStatusPublished, th.Status)
	})

	t.Run("flags follow case-sensitive labels", func(t *testing.T) {
		th, err := NewThought(7, "x", "federal", now)
		require.NoError(t, err)
		assert.True(t, th.IsFederal)

		th, err = NewThought(7, "x", "State", now)
		require.NoError(t, err)
		assert.Equal(t, "State", th.Jurisdiction)
		assert.False(t, th.IsLocal || th.IsState || th.IsFederal)
	})

	t.Run("requires user and content", func(t *testing.T) {
		_, err := NewThought(0, "x", "town", now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		_, err = NewThought(7, "", "town", now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestTitleRank(t *testing.T) {
	assert.Less(t, TitleRank(TitleGovernor), TitleRank(TitleUSSenator))
	assert.Less(t, TitleRank(TitleUSSenator), TitleRank(TitleLieutenantGovernor))
	assert.Less(t, TitleRank(TitleLieutenantGovernor), TitleRank(TitleAttorneyGeneral))
}
