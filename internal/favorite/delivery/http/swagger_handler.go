package http

// ListFavorites godoc
// @Summary List a client's favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} response.Envelope{data=[]object{client_id=int,product_id=int}}
// @Failure 404 {object} response.ErrorEnvelope
// @Router /favorite/{client_id} [get]
func (h *FavoriteHandler) ListFavoritesDoc() {}

// AddFavorite godoc
// @Summary Add a product to a client's favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param client_id query int true "Client ID"
// @Param product_id query int true "Product ID"
// @Success 200 {object} response.Envelope{data=object{client_id=int,product_id=int}}
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /favorite [post]
func (h *FavoriteHandler) AddFavoriteDoc() {}

// RemoveFavorite godoc
// @Summary Remove a product from a client's favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param client_id query int true "Client ID"
// @Param product_id query int true "Product ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /favorite [delete]
func (h *FavoriteHandler) RemoveFavoriteDoc() {}
