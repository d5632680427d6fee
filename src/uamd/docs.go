// Package main UAM API
//
// @title           UAM API
// @version         1.0
// @description     User Access Manager REST API - registration, authentication and admin-scoped user management.
//
// @host            localhost:3000
// @BasePath        /
// @schemes         http
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication. Prefix the token with "Bearer ".
package main
