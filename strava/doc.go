// Package strava provides a client for the Strava v3 REST API.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Models: typed resources (activities, athletes, clubs, segments, routes,
//     streams, uploads) decoded from the API's JSON
//   - Request and Dispatcher: build one HTTP call and decode the response as
//     an object, an array, or a bare success confirmation
//   - OAuth: authorization URL, redirect parsing, token exchange, refresh and
//     deauthorization
//   - Client: one method per endpoint
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client := strava.NewClient(strava.Config{
//		ClientID:     12345,
//		ClientSecret: "secret",
//		CallbackURL:  "http://localhost:8089/callback",
//		Scope:        strava.ScopeActivityReadAll,
//	}, logger, strava.WithTimeout(30*time.Second))
//
//	authURL, err := client.BuildAuthorizationURL()
//	// send the athlete to authURL, then with the redirect they come back on:
//	creds, err := client.ExtractCredentials(redirectURL)
//	_, err = client.Authorize(ctx, creds)
//
//	activities, err := client.ListAthleteActivities(ctx, strava.ListActivitiesParams{
//		Page: strava.Page{Page: 1, PerPage: 30},
//	})
//
// For callback style use, wrap any call with Async:
//
//	strava.Async(ctx, func(ctx context.Context) (*strava.Athlete, error) {
//		return client.RetrieveAthlete(ctx, nil)
//	}, func(r strava.Result[*strava.Athlete]) {
//		// called exactly once
//	})
//
// # Error Handling
//
// Every failure is an *Error with a Kind:
//
//   - KindTransport: network failure or unreadable body
//   - KindValidation: non-2xx status, with Strava's fault message
//   - KindDecode: body did not match the expected model
//   - KindConfiguration: a client setting is missing (ErrParameterMissing)
//   - KindAuthorization: the redirect carried no code (ErrNotAuthorized)
//   - KindNotAuthenticated: no access token is set (ErrNotAuthenticated)
//
//	var serr *strava.Error
//	if errors.As(err, &serr) && serr.IsUnauthorized() {
//		// token expired or revoked
//	}
package strava
