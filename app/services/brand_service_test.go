package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electro05/storefront/app/models"
	"github.com/electro05/storefront/pkg/testkit"
)

func TestMergeRemoteWinsKeepsPosition(t *testing.T) {
	static := []models.Brand{
		{Name: "Samsung", Logo: "/local/samsung.png"},
		{Name: "LG", Logo: "/local/lg.png"},
	}
	remote := []models.Brand{
		{Name: "samsung", Logo: "/remote/samsung.png"},
		{Name: "Sony", Logo: "/remote/sony.png"},
	}

	merged := Merge(static, remote)
	require.Len(t, merged, 3)

	// Samsung keeps slot 0 but carries the remote logo.
	assert.Equal(t, "/remote/samsung.png", merged[0].Logo)
	assert.Equal(t, "LG", merged[1].Name)
	assert.Equal(t, "Sony", merged[2].Name)
}

func TestMergeNormalizesNames(t *testing.T) {
	merged := Merge(
		[]models.Brand{{Name: "  HP "}},
		[]models.Brand{{Name: "hp"}, {Name: "HP"}},
	)
	assert.Len(t, merged, 1)
}

func TestMarqueeTriples(t *testing.T) {
	brands := []models.Brand{{Name: "A"}, {Name: "B"}}
	tripled := Marquee(brands)
	require.Len(t, tripled, 6)
	assert.Equal(t, "A", tripled[0].Name)
	assert.Equal(t, "A", tripled[2].Name)
	assert.Equal(t, "B", tripled[5].Name)
}

func TestBrandsFallsBackToBundledList(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/brands", 500, `{"message":"down"}`)
	defer mt.Install()()

	brands := NewBrandService().Brands(context.Background())
	assert.NotEmpty(t, brands, "fallback list must never be empty")
	mt.AssertAllCalled()
}

func TestBrandsOverlaysRemote(t *testing.T) {
	mt := testkit.NewMockTransport(t)
	mt.Stub("GET", "/brands", 200,
		`{"data":[{"name":"Samsung","image":"/storage/brands/samsung-new.png"},{"name":"Nokia","logo":"/storage/brands/nokia.png"}]}`)
	defer mt.Install()()

	brands := NewBrandService().Brands(context.Background())
	require.NotEmpty(t, brands)

	byName := map[string]models.Brand{}
	for _, b := range brands {
		byName[b.Name] = b
	}
	assert.Contains(t, byName, "Nokia", "remote-only brand appended")
	assert.Contains(t, byName["Samsung"].Logo, "samsung-new", "remote logo wins")
	for _, b := range brands {
		assert.NotEmpty(t, b.Name)
	}
}
