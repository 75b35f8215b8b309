// Package profilesdk is a typed Go client for the Fairstand profile
// service. It covers profiles, shares, invites, and the profile-scoped
// resources (catalogs, campaigns, orders, payment methods).
//
// The SDK does not authenticate anyone: callers obtain a bearer token
// from the identity provider and hand it to NewClient. Every request
// carries that token.
//
//	client := profilesdk.NewClient("http://localhost:8080", token)
//	profile, err := client.CreateProfile(ctx, profilesdk.CreateProfileRequest{
//		DisplayName: "Weekend Market Stand",
//	})
package profilesdk
