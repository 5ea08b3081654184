package http

// ListProducts godoc
// @Summary List products
// @Description One page of products in store order
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param page query int true "Page number, starting at 1"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Success 200 {object} response.Envelope{data=domain.Page}
// @Failure 404 {object} response.ErrorEnvelope "Page out of range"
// @Failure 422 {object} response.ErrorEnvelope
// @Router /product [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response.Envelope{data=domain.Product}
// @Failure 404 {object} response.ErrorEnvelope
// @Router /product/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// CreateProduct godoc
// @Summary Create a new product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{id=int,title=string,price=number,image=string,brand=string,reviewScore=number} true "Product data"
// @Success 201 {object} response.Envelope{data=domain.Product}
// @Failure 409 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /product [post]
func (h *ProductHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update; a new id must not belong to another product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{id=int,title=string,price=number,image=string,brand=string,reviewScore=number} true "Fields to change"
// @Success 200 {object} response.Envelope{data=domain.Product}
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /product/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes the product's favorites, then the product
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /product/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}
