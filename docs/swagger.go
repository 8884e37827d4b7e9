// Package docs Weather API
//
// @title  Weather API
// @version 1.0.0
// @description Weather station readings and user accounts backed by MongoDB.
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name authenticationKey
// @description Key returned by POST /users/login.
package docs
