package main

// @title Favorites Service API
// @version 1.0
// @description Clients, products and their favorites behind a bearer-token gate

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
