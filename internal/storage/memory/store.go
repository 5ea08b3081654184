// Package memory is an in-process store backend. It keeps insertion order
// and enforces the same key constraints as the persistent backends.
package memory

import (
	"context"
	"slices"
	"sync"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
)

// Store holds all three collections behind one lock.
type Store struct {
	mu sync.RWMutex

	clients      map[int64]clientdomain.Client
	clientOrder  []int64
	products     map[int64]productdomain.Product
	productOrder []int64
	favorites    map[string]favoritedomain.Favorite
	favOrder     []string
}

func NewStore() *Store {
	return &Store{
		clients:   make(map[int64]clientdomain.Client),
		products:  make(map[int64]productdomain.Product),
		favorites: make(map[string]favoritedomain.Favorite),
	}
}

func (s *Store) Clients() *ClientRepository {
	return &ClientRepository{s: s}
}

func (s *Store) Products() *ProductRepository {
	return &ProductRepository{s: s}
}

func (s *Store) Favorites() *FavoriteRepository {
	return &FavoriteRepository{s: s}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

func removeKey[K comparable](order []K, key K) []K {
	if i := slices.Index(order, key); i >= 0 {
		return slices.Delete(order, i, i+1)
	}
	return order
}

type ClientRepository struct {
	s *Store
}

func (r *ClientRepository) Create(_ context.Context, client *clientdomain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[client.ID]; ok {
		return clientdomain.ErrDuplicate
	}
	r.s.clients[client.ID] = *client
	r.s.clientOrder = append(r.s.clientOrder, client.ID)
	return nil
}

func (r *ClientRepository) FindByID(_ context.Context, id int64) (*clientdomain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, clientdomain.ErrNotFound
	}
	return &c, nil
}

func (r *ClientRepository) FindByEmail(_ context.Context, email string) (*clientdomain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.clientOrder {
		if c := r.s.clients[id]; c.Email == email {
			return &c, nil
		}
	}
	return nil, clientdomain.ErrNotFound
}

func (r *ClientRepository) FindAll(context.Context) ([]clientdomain.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]clientdomain.Client, 0, len(r.s.clientOrder))
	for _, id := range r.s.clientOrder {
		out = append(out, r.s.clients[id])
	}
	return out, nil
}

func (r *ClientRepository) Update(_ context.Context, client *clientdomain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[client.ID]; !ok {
		return clientdomain.ErrNotFound
	}
	r.s.clients[client.ID] = *client
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return clientdomain.ErrNotFound
	}
	delete(r.s.clients, id)
	r.s.clientOrder = removeKey(r.s.clientOrder, id)
	return nil
}

func (r *ClientRepository) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients = make(map[int64]clientdomain.Client)
	r.s.clientOrder = nil
	return nil
}

func (r *ClientRepository) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.clients)), nil
}

type ProductRepository struct {
	s *Store
}

func (r *ProductRepository) Create(_ context.Context, product *productdomain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return productdomain.ErrDuplicate
	}
	r.s.products[product.ID] = *product
	r.s.productOrder = append(r.s.productOrder, product.ID)
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id int64) (*productdomain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, productdomain.ErrNotFound
	}
	return &p, nil
}

func (r *ProductRepository) FindPage(_ context.Context, limit, offset int) ([]productdomain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []productdomain.Product{}
	if offset >= len(r.s.productOrder) {
		return out, nil
	}
	end := min(offset+limit, len(r.s.productOrder))
	for _, id := range r.s.productOrder[offset:end] {
		out = append(out, r.s.products[id])
	}
	return out, nil
}

func (r *ProductRepository) Update(_ context.Context, id int64, product *productdomain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return productdomain.ErrNotFound
	}
	if product.ID != id {
		if _, taken := r.s.products[product.ID]; taken {
			return productdomain.ErrDuplicate
		}
		delete(r.s.products, id)
		r.s.productOrder[slices.Index(r.s.productOrder, id)] = product.ID
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return productdomain.ErrNotFound
	}
	delete(r.s.products, id)
	r.s.productOrder = removeKey(r.s.productOrder, id)
	return nil
}

func (r *ProductRepository) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = make(map[int64]productdomain.Product)
	r.s.productOrder = nil
	return nil
}

func (r *ProductRepository) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.products)), nil
}

type FavoriteRepository struct {
	s *Store
}

func (r *FavoriteRepository) Create(_ context.Context, favorite *favoritedomain.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.favorites {
		if f.ClientID == favorite.ClientID && f.ProductID == favorite.ProductID {
			return favoritedomain.ErrDuplicate
		}
	}
	if _, ok := r.s.favorites[favorite.ID]; ok {
		return favoritedomain.ErrDuplicate
	}
	r.s.favorites[favorite.ID] = *favorite
	r.s.favOrder = append(r.s.favOrder, favorite.ID)
	return nil
}

func (r *FavoriteRepository) Find(_ context.Context, clientID, productID int64) (*favoritedomain.Favorite, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.favOrder {
		if f := r.s.favorites[id]; f.ClientID == clientID && f.ProductID == productID {
			return &f, nil
		}
	}
	return nil, favoritedomain.ErrNotFound
}

func (r *FavoriteRepository) filter(match func(favoritedomain.Favorite) bool) []favoritedomain.Favorite {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []favoritedomain.Favorite{}
	for _, id := range r.s.favOrder {
		if f := r.s.favorites[id]; match(f) {
			out = append(out, f)
		}
	}
	return out
}

func (r *FavoriteRepository) FindByClient(_ context.Context, clientID int64) ([]favoritedomain.Favorite, error) {
	return r.filter(func(f favoritedomain.Favorite) bool { return f.ClientID == clientID }), nil
}

func (r *FavoriteRepository) FindByProduct(_ context.Context, productID int64) ([]favoritedomain.Favorite, error) {
	return r.filter(func(f favoritedomain.Favorite) bool { return f.ProductID == productID }), nil
}

func (r *FavoriteRepository) Delete(_ context.Context, favorite *favoritedomain.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.favorites[favorite.ID]; !ok {
		return favoritedomain.ErrNotFound
	}
	delete(r.s.favorites, favorite.ID)
	r.s.favOrder = removeKey(r.s.favOrder, favorite.ID)
	return nil
}

func (r *FavoriteRepository) DeleteAll(context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.favorites = make(map[string]favoritedomain.Favorite)
	r.s.favOrder = nil
	return nil
}

func (r *FavoriteRepository) Count(context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.favorites)), nil
}
