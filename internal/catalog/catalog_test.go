package catalog

import (
    "math/rand/v2"
    "testing"
    "time"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestMenuLookups(t *testing.T) {
    cats := Categories()
    require.Len(t, cats, 8)
    assert.Equal(t, "breakfast", cats[0].ID)
    for i := 1; i < len(cats); i++ {
        assert.Less(t, cats[i-1].Order, cats[i].Order)
    }

    p, ok := PackageByID("seafood-5")
    require.True(t, ok)
    assert.True(t, decimal.NewFromInt(120).Equal(p.Price))
    assert.Equal(t, "seafood", p.Category)
    assert.Equal(t, Currency, p.Currency)

    _, ok = PackageByID("nope")
    assert.False(t, ok)

    soups, ok := PackagesIn("soup")
    require.True(t, ok)
    assert.Len(t, soups, 9)
    _, ok = PackagesIn("desserts")
    assert.False(t, ok)
}

func TestMenuIDsAreUnique(t *testing.T) {
    seen := map[string]bool{}
    for _, c := range Categories() {
        for _, p := range c.Packages {
            assert.False(t, seen[p.ID], p.ID)
            seen[p.ID] = true
        }
    }
}

func TestCategoriesReturnsCopy(t *testing.T) {
    cats := Categories()
    cats[0].Packages[0].Title = "changed"
    assert.NotEqual(t, "changed", Categories()[0].Packages[0].Title)
}

func TestGalleryFilters(t *testing.T) {
    assert.Len(t, ImagesByCategory(CategoryAll), 13)
    assert.Len(t, ImagesByCategory(CategoryFood), 5)
    assert.Len(t, ImagesByCategory(CategoryInterior), 4)
    assert.Empty(t, ImagesByCategory(CategoryEvents))

    counts := CategoryCounts()
    assert.Equal(t, 13, counts[CategoryAll])
    assert.Equal(t, 4, counts[CategoryAtmosphere])
    assert.Equal(t, 0, counts[CategoryEvents])
}

func TestGalleryNavigation(t *testing.T) {
    next, ok := NextImage("food-5")
    require.True(t, ok)
    assert.Equal(t, "interior-1", next.ID)

    _, ok = NextImage("atmosphere-4")
    assert.False(t, ok)

    prev, ok := PreviousImage("food-2")
    require.True(t, ok)
    assert.Equal(t, "food-1", prev.ID)

    _, ok = PreviousImage("food-1")
    assert.False(t, ok)
    _, ok = PreviousImage("missing")
    assert.False(t, ok)
}

func TestRandomImages(t *testing.T) {
    rng := rand.New(rand.NewPCG(1, 2))
    got := RandomImages(4, rng)
    require.Len(t, got, 4)
    seen := map[string]bool{}
    for _, im := range got {
        assert.False(t, seen[im.ID])
        seen[im.ID] = true
    }
    assert.Len(t, RandomImages(100, rng), 13)
    assert.Empty(t, RandomImages(-1, rng))
}

func TestRestaurantHours(t *testing.T) {
    r := Restaurant()
    // 2026-10-19 is a Monday, 2026-10-23 a Friday, 2026-10-25 a Sunday
    monday := time.Date(2026, 10, 19, 13, 0, 0, 0, time.UTC)
    assert.Equal(t, "12:00 - 23:00", r.TodaysHours(monday))
    assert.True(t, r.IsOpen(monday))
    assert.False(t, r.IsOpen(time.Date(2026, 10, 19, 11, 59, 0, 0, time.UTC)))
    assert.False(t, r.IsOpen(time.Date(2026, 10, 19, 23, 1, 0, 0, time.UTC)))

    friday := time.Date(2026, 10, 23, 23, 30, 0, 0, time.UTC)
    assert.True(t, r.IsOpen(friday))

    sunday := time.Date(2026, 10, 25, 21, 0, 0, 0, time.UTC)
    assert.Equal(t, "12:00 - 22:00", r.TodaysHours(sunday))

    r.Hours[0].IsClosed = true
    assert.Equal(t, ClosedText, r.TodaysHours(monday))
    assert.False(t, r.IsOpen(monday))
    assert.False(t, Restaurant().Hours[0].IsClosed)
}

func TestRestaurantLinks(t *testing.T) {
    r := Restaurant()
    assert.Equal(t, "tel:+995555123456", r.PhoneLink())
    assert.Equal(t, "mailto:info@georgian-restaurant.ge", r.EmailLink())
    assert.Equal(t, "რუსთაველის გამზირი 25, მე-2 სართული, თბილისი, საქართველო", r.FormattedAddress())
}
