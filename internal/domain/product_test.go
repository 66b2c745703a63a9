package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductCloneDoesNotShareComments(t *testing.T) {
	t.Parallel()

	original := Product{ID: 1, Name: "Pen", Price: 2, Comments: []string{"nice"}}
	clone := original.Clone()
	clone.Comments[0] = "changed"

	assert.Equal(t, []string{"nice"}, original.Comments)
}

func TestProductCloneNormalizesNilComments(t *testing.T) {
	t.Parallel()

	clone := Product{ID: 1}.Clone()

	assert.NotNil(t, clone.Comments)
	assert.Empty(t, clone.Comments)
}

func TestProductWithCommentAppendsToCopy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product Product
		comment string
		want    []string
	}{
		{name: "no comments yet", product: Product{ID: 1}, comment: "nice", want: []string{"nice"}},
		{name: "keeps order", product: Product{ID: 1, Comments: []string{"a", "b"}}, comment: "c", want: []string{"a", "b", "c"}},
		{name: "empty comment is kept", product: Product{ID: 1}, comment: "", want: []string{""}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			before := len(tc.product.Comments)
			got := tc.product.WithComment(tc.comment)
			assert.Equal(t, tc.want, got.Comments)
			assert.Len(t, tc.product.Comments, before)
		})
	}
}

func TestCloneProductsPreservesOrder(t *testing.T) {
	t.Parallel()

	products := []Product{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	cloned := CloneProducts(products)

	assert.Equal(t, []ProductID{3, 1, 2}, []ProductID{cloned[0].ID, cloned[1].ID, cloned[2].ID})
}
