package http

// ListClients godoc
// @Summary List all clients
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]domain.Client}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /client [get]
func (h *ClientHandler) ListClientsDoc() {}

// GetClient godoc
// @Summary Get client by ID
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.Envelope{data=domain.Client}
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /client/{id} [get]
func (h *ClientHandler) GetClientDoc() {}

// CreateClient godoc
// @Summary Create a new client
// @Description Fails with 409 when the email is already used
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{id=int,name=string,email=string} true "Client data"
// @Success 200 {object} response.Envelope{data=domain.Client}
// @Failure 409 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /client [post]
func (h *ClientHandler) CreateClientDoc() {}

// UpdateClient godoc
// @Summary Update a client
// @Description Partial update of name and email
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body object{name=string,email=string} true "Fields to change"
// @Success 200 {object} response.Envelope{data=domain.Client}
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Router /client/{id} [put]
func (h *ClientHandler) UpdateClientDoc() {}

// DeleteClient godoc
// @Summary Delete a client
// @Description Removes the client's favorites, then the client
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /client/{id} [delete]
func (h *ClientHandler) DeleteClientDoc() {}
