//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	authhttp "github.com/tair/favorites-service/internal/auth/delivery/http"
	authcommand "github.com/tair/favorites-service/internal/auth/usecase/command"
	clienthttp "github.com/tair/favorites-service/internal/client/delivery/http"
	clientcommand "github.com/tair/favorites-service/internal/client/usecase/command"
	clientquery "github.com/tair/favorites-service/internal/client/usecase/query"
	favoritehttp "github.com/tair/favorites-service/internal/favorite/delivery/http"
	favoritecommand "github.com/tair/favorites-service/internal/favorite/usecase/command"
	favoritequery "github.com/tair/favorites-service/internal/favorite/usecase/query"
	producthttp "github.com/tair/favorites-service/internal/product/delivery/http"
	productcommand "github.com/tair/favorites-service/internal/product/usecase/command"
	productquery "github.com/tair/favorites-service/internal/product/usecase/query"
	"github.com/tair/favorites-service/kafka"
	"github.com/tair/favorites-service/pkg/auth"
	"github.com/tair/favorites-service/pkg/config"
	"github.com/tair/favorites-service/pkg/ratelimit"
	"github.com/tair/favorites-service/pkg/validation"
)

var RepositorySet = wire.NewSet(
	wire.FieldsOf(new(*Backend), "Clients", "Products", "Favorites"),
)

var FavoriteSet = wire.NewSet(
	favoritecommand.NewAddFavoriteHandler,
	favoritecommand.NewRemoveFavoriteHandler,
	favoritecommand.NewRemoveAllFavoritesHandler,
	favoritequery.NewListFavoritesHandler,
	favoritehttp.NewFavoriteHandler,
)

var ClientSet = wire.NewSet(
	clientcommand.NewCreateClientHandler,
	clientcommand.NewUpdateClientHandler,
	clientcommand.NewDeleteClientHandler,
	clientquery.NewGetClientHandler,
	clientquery.NewListClientsHandler,
	clienthttp.NewClientHandler,
	wire.Bind(new(clientcommand.FavoritesRemover), new(*favoritecommand.RemoveAllFavoritesHandler)),
)

var ProductSet = wire.NewSet(
	productcommand.NewCreateProductHandler,
	productcommand.NewUpdateProductHandler,
	productcommand.NewDeleteProductHandler,
	productquery.NewGetProductHandler,
	productquery.NewListProductsHandler,
	producthttp.NewProductHandler,
	wire.Bind(new(productcommand.FavoritesRemover), new(*favoritecommand.RemoveAllFavoritesHandler)),
)

var AuthSet = wire.NewSet(
	ProvideTokenManager,
	ProvideOperator,
	ProvideProtect,
	authcommand.NewLoginHandler,
	authhttp.NewAuthHandler,
	wire.Bind(new(authcommand.TokenIssuer), new(*auth.TokenManager)),
)

// InitializeAPI builds every handler on top of an opened backend.
func InitializeAPI(
	cfg *config.Config,
	backend *Backend,
	publisher kafka.EventPublisher,
	limiter ratelimit.Limiter,
	reg *prometheus.Registry,
) (*API, error) {
	wire.Build(
		RepositorySet,
		FavoriteSet,
		ClientSet,
		ProductSet,
		AuthSet,
		validation.New,
		wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
		ProvideHandlers,
		ProvideAPI,
	)
	return nil, nil
}
