package http

// Login godoc
// @Summary Log in
// @Description Exchange the operator credentials for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Operator credentials"
// @Success 200 {object} object{access_token=string}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 422 {object} response.ErrorEnvelope
// @Failure 429 {object} response.ErrorEnvelope
// @Router /auth/login [post]
func (h *AuthHandler) LoginDoc() {}

// UserLogin godoc
// @Summary Log in (alias)
// @Description Same as /auth/login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{username=string,password=string} true "Operator credentials"
// @Success 200 {object} object{access_token=string}
// @Failure 401 {object} response.ErrorEnvelope
// @Router /user/login [post]
func (h *AuthHandler) UserLoginDoc() {}
