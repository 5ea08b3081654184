package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 34, TotalPages(100, 3))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestProductPatchApply(t *testing.T) {
	p := &Product{ID: 1, Title: "Phone", Price: 10, Image: "a.jpg", Brand: "Acme"}

	newID := int64(2)
	price := 12.5
	score := 4.5
	patch := ProductPatch{ID: &newID, Price: &price, ReviewScore: &score}

	assert.True(t, patch.ChangesID(1))
	assert.False(t, patch.ChangesID(2))

	patch.Apply(p)
	assert.Equal(t, int64(2), p.ID)
	assert.Equal(t, "Phone", p.Title)
	assert.Equal(t, 12.5, p.Price)
	if assert.NotNil(t, p.ReviewScore) {
		assert.Equal(t, 4.5, *p.ReviewScore)
	}
	assert.False(t, ProductPatch{}.ChangesID(1))
}
