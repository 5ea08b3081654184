package dynamo

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
)

const (
	idAbsent  = "attribute_not_exists(id)"
	idPresent = "attribute_exists(id)"
)

type ClientRepository struct {
	s *Store
}

func (r *ClientRepository) Create(ctx context.Context, client *clientdomain.Client) error {
	err := putItem(ctx, r.s.api, r.s.tables.Clients, client, idAbsent)
	if isConditionFailed(err) {
		return fmt.Errorf("%w: %w", clientdomain.ErrDuplicate, err)
	}
	return err
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*clientdomain.Client, error) {
	var client clientdomain.Client
	found, err := getItem(ctx, r.s.api, r.s.tables.Clients, idKey(id), &client)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, clientdomain.ErrNotFound
	}
	return &client, nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*clientdomain.Client, error) {
	clients, err := scanAll[clientdomain.Client](ctx, r.s.api, r.s.tables.Clients, "email = :email",
		map[string]types.AttributeValue{":email": &types.AttributeValueMemberS{Value: email}})
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, clientdomain.ErrNotFound
	}
	sortByID(clients, func(c clientdomain.Client) int64 { return c.ID })
	return &clients[0], nil
}

// FindAll returns every client ordered by id.
func (r *ClientRepository) FindAll(ctx context.Context) ([]clientdomain.Client, error) {
	clients, err := scanAll[clientdomain.Client](ctx, r.s.api, r.s.tables.Clients, "", nil)
	if err != nil {
		return nil, err
	}
	sortByID(clients, func(c clientdomain.Client) int64 { return c.ID })
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *clientdomain.Client) error {
	err := putItem(ctx, r.s.api, r.s.tables.Clients, client, idPresent)
	if isConditionFailed(err) {
		return clientdomain.ErrNotFound
	}
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	err := deleteItem(ctx, r.s.api, r.s.tables.Clients, idKey(id), idPresent)
	if isConditionFailed(err) {
		return clientdomain.ErrNotFound
	}
	return err
}

func (r *ClientRepository) DeleteAll(ctx context.Context) error {
	clients, err := scanAll[clientdomain.Client](ctx, r.s.api, r.s.tables.Clients, "", nil)
	if err != nil {
		return err
	}
	for _, c := range clients {
		if err := deleteItem(ctx, r.s.api, r.s.tables.Clients, idKey(c.ID), ""); err != nil {
			return err
		}
	}
	return nil
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.s.api, r.s.tables.Clients)
}

type ProductRepository struct {
	s *Store
}

func (r *ProductRepository) Create(ctx context.Context, product *productdomain.Product) error {
	err := putItem(ctx, r.s.api, r.s.tables.Products, product, idAbsent)
	if isConditionFailed(err) {
		return fmt.Errorf("%w: %w", productdomain.ErrDuplicate, err)
	}
	return err
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*productdomain.Product, error) {
	var product productdomain.Product
	found, err := getItem(ctx, r.s.api, r.s.tables.Products, idKey(id), &product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, productdomain.ErrNotFound
	}
	return &product, nil
}

// FindPage orders products by id. DynamoDB has no offset, so the whole
// table is scanned and sliced.
func (r *ProductRepository) FindPage(ctx context.Context, limit, offset int) ([]productdomain.Product, error) {
	products, err := scanAll[productdomain.Product](ctx, r.s.api, r.s.tables.Products, "", nil)
	if err != nil {
		return nil, err
	}
	sortByID(products, func(p productdomain.Product) int64 { return p.ID })
	return window(products, limit, offset), nil
}

// Update writes product in place, or moves it when its id differs from id:
// the new item is put first so a collision leaves the old one untouched.
func (r *ProductRepository) Update(ctx context.Context, id int64, product *productdomain.Product) error {
	if product.ID == id {
		err := putItem(ctx, r.s.api, r.s.tables.Products, product, idPresent)
		if isConditionFailed(err) {
			return productdomain.ErrNotFound
		}
		return err
	}

	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	err := putItem(ctx, r.s.api, r.s.tables.Products, product, idAbsent)
	if isConditionFailed(err) {
		return fmt.Errorf("%w: %w", productdomain.ErrDuplicate, err)
	}
	if err != nil {
		return err
	}
	err = deleteItem(ctx, r.s.api, r.s.tables.Products, idKey(id), idPresent)
	if isConditionFailed(err) {
		return productdomain.ErrNotFound
	}
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	err := deleteItem(ctx, r.s.api, r.s.tables.Products, idKey(id), idPresent)
	if isConditionFailed(err) {
		return productdomain.ErrNotFound
	}
	return err
}

func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	products, err := scanAll[productdomain.Product](ctx, r.s.api, r.s.tables.Products, "", nil)
	if err != nil {
		return err
	}
	for _, p := range products {
		if err := deleteItem(ctx, r.s.api, r.s.tables.Products, idKey(p.ID), ""); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.s.api, r.s.tables.Products)
}

type FavoriteRepository struct {
	s *Store
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *favoritedomain.Favorite) error {
	err := putItem(ctx, r.s.api, r.s.tables.Favorites, favorite, "attribute_not_exists(client_id)")
	if isConditionFailed(err) {
		return fmt.Errorf("%w: %w", favoritedomain.ErrDuplicate, err)
	}
	return err
}

func (r *FavoriteRepository) Find(ctx context.Context, clientID, productID int64) (*favoritedomain.Favorite, error) {
	var favorite favoritedomain.Favorite
	found, err := getItem(ctx, r.s.api, r.s.tables.Favorites, pairKey(clientID, productID), &favorite)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, favoritedomain.ErrNotFound
	}
	return &favorite, nil
}

// FindByClient queries the partition of clientID; items come back in
// product_id order.
func (r *FavoriteRepository) FindByClient(ctx context.Context, clientID int64) ([]favoritedomain.Favorite, error) {
	return queryAll[favoritedomain.Favorite](ctx, r.s.api, r.s.tables.Favorites, "client_id = :c",
		map[string]types.AttributeValue{":c": numberAttr(clientID)})
}

func (r *FavoriteRepository) FindByProduct(ctx context.Context, productID int64) ([]favoritedomain.Favorite, error) {
	favorites, err := scanAll[favoritedomain.Favorite](ctx, r.s.api, r.s.tables.Favorites, "product_id = :p",
		map[string]types.AttributeValue{":p": numberAttr(productID)})
	if err != nil {
		return nil, err
	}
	sortByID(favorites, func(f favoritedomain.Favorite) int64 { return f.ClientID })
	return favorites, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, favorite *favoritedomain.Favorite) error {
	err := deleteItem(ctx, r.s.api, r.s.tables.Favorites,
		pairKey(favorite.ClientID, favorite.ProductID), "attribute_exists(client_id)")
	if isConditionFailed(err) {
		return favoritedomain.ErrNotFound
	}
	return err
}

func (r *FavoriteRepository) DeleteAll(ctx context.Context) error {
	favorites, err := scanAll[favoritedomain.Favorite](ctx, r.s.api, r.s.tables.Favorites, "", nil)
	if err != nil {
		return err
	}
	for _, f := range favorites {
		if err := deleteItem(ctx, r.s.api, r.s.tables.Favorites, pairKey(f.ClientID, f.ProductID), ""); err != nil {
			return err
		}
	}
	return nil
}

func (r *FavoriteRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.s.api, r.s.tables.Favorites)
}

func sortByID[T any](items []T, id func(T) int64) {
	slices.SortFunc(items, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
}

// window returns items[offset:offset+limit], clamped to the slice.
func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
