package dynamo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
)

func TestTablesWithPrefix(t *testing.T) {
	tables := TablesWithPrefix("test_")
	assert.Equal(t, Tables{Clients: "test_clients", Products: "test_products", Favorites: "test_favorites"}, tables)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, &types.AttributeValueMemberN{Value: "42"}, idKey(42)["id"])

	key := pairKey(1, -7)
	assert.Len(t, key, 2)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "1"}, key["client_id"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "-7"}, key["product_id"])
}

func TestIsConditionFailed(t *testing.T) {
	err := fmt.Errorf("put: %w", &types.ConditionalCheckFailedException{})
	assert.True(t, isConditionFailed(err))
	assert.False(t, isConditionFailed(errors.New("boom")))
	assert.False(t, isConditionFailed(nil))
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, window(items, 2, 0))
	assert.Equal(t, []int{5}, window(items, 2, 4))
	assert.Equal(t, []int{}, window(items, 2, 5))
	assert.Equal(t, []int{3, 4, 5}, window(items, 0, 2))
}

func TestItemShape(t *testing.T) {
	item, err := attributevalue.MarshalMap(productdomain.Product{ID: 3, Title: "Lamp", Price: 9.5})
	require.NoError(t, err)
	assert.Contains(t, item, "id")
	assert.NotContains(t, item, "review_score")

	fav := favoritedomain.NewFavorite(1, 2)
	item, err = attributevalue.MarshalMap(fav)
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: fav.ID}, item["favorite_id"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "2"}, item["product_id"])

	var back favoritedomain.Favorite
	require.NoError(t, attributevalue.UnmarshalMap(item, &back))
	assert.Equal(t, *fav, back)
}
