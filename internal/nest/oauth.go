package nest

import "golang.org/x/oauth2"

// Endpoint is the OAuth2 endpoint of the Nest API.
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://home.nest.com/login/oauth2",
	TokenURL:  "https://api.home.nest.com/oauth2/access_token",
	AuthStyle: oauth2.AuthStyleInParams,
}

// OAuthConfig returns the configuration for Nest's authorization code flow. Nest doesn't use scopes: the permissions
// are configured on the client in the developer console.
func OAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     Endpoint,
		RedirectURL:  redirectURL,
	}
}
