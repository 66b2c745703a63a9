package catalog

import (
	"testing"

	"github.com/bnema/shopeasy-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderListingAndCart(t *testing.T) {
	output, err := Render(Snapshot{
		Products: []domain.Product{
			{ID: 1, Name: "Pen", Price: 2, Comments: []string{"nice", "smooth"}},
			{ID: 2, Name: "Ink", Price: 5.5},
		},
		Cart: []domain.Product{{ID: 1, Name: "Pen", Price: 2}},
	}, DefaultOptions())

	require.NoError(t, err)
	assert.Contains(t, output, "ShopEasy")
	assert.Contains(t, output, "products: 2")
	assert.Contains(t, output, "Pen")
	assert.Contains(t, output, "$2")
	assert.Contains(t, output, "$5.5")
	assert.Contains(t, output, "- nice")
	assert.Contains(t, output, "- smooth")
	assert.Contains(t, output, "no comments yet")
	assert.Contains(t, output, "Cart (1 items)")
	assert.Contains(t, output, "- Pen - $2")
}

func TestRenderEmptyListing(t *testing.T) {
	output, err := Render(Snapshot{}, DefaultOptions())

	require.NoError(t, err)
	assert.Contains(t, output, "products: 0")
	assert.Contains(t, output, "No products available.")
	assert.Contains(t, output, "Cart (0 items)")
}

func TestRenderHidesCart(t *testing.T) {
	opts := DefaultOptions()
	opts.HideCart = true

	output, err := Render(Snapshot{Products: []domain.Product{{ID: 1, Name: "Pen", Price: 2}}}, opts)

	require.NoError(t, err)
	assert.NotContains(t, output, "Cart (")
}

func TestViewMarksSelectionAndDraft(t *testing.T) {
	opts := DefaultOptions()
	opts.Selected = 1

	output := View(Snapshot{
		Products: []domain.Product{{ID: 1, Name: "Pen"}, {ID: 2, Name: "Ink"}},
		Drafts:   map[domain.ProductID]string{2: "half written"},
	}, opts)

	assert.Contains(t, output, "> Ink")
	assert.NotContains(t, output, "> Pen")
	assert.Contains(t, output, "draft: half written")
}

func TestCommentsAreShownAsPlainText(t *testing.T) {
	output := View(Snapshot{
		Products: []domain.Product{{ID: 1, Name: "Pen", Comments: []string{"<img src=x onerror=alert(1)>", "\x1b[31mred\x1b[0m"}}},
	}, DefaultOptions())

	assert.Contains(t, output, "<img src=x onerror=alert(1)>")
	assert.NotContains(t, output, "\x1b[31mred")
	assert.Contains(t, output, "[31mred[0m")
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  string
	}{
		{price: 2, want: "$2"},
		{price: 5.5, want: "$5.5"},
		{price: 0.99, want: "$0.99"},
		{price: 0, want: "$0"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatPrice(tc.price))
	}
}

func TestSanitizeTextDropsControlCharacters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", SanitizeText("a\x07\nb"))
	assert.Equal(t, "héllo", SanitizeText("héllo"))
}
