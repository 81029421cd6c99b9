// Package apisdk provides a typed Go client for the newswire API along
// with the request/response types and error envelope shared between the
// server handlers and SDK consumers.
//
// Read/write operations authenticate with an API key credential of the
// form "<client_name>.<secret>" sent in the X-API-Key header. Client
// management operations authenticate with an admin bearer token.
//
// Basic usage:
//
//	sdk := apisdk.NewSDKClient("https://newswire.example.com", "weather-svc.3q2J...")
//	articles, err := sdk.ListArticles(ctx, 50, 0)
package apisdk
