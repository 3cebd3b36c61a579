// Package github implements the OAuth handshake against GitHub: building the
// authorization URL and exchanging a callback code for the user's profile.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

const defaultAPIBaseURL = "https://api.github.com"

// Config holds the OAuth application credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Client performs the GitHub OAuth flow.
type Client struct {
	conf       *oauth2.Config
	apiBaseURL string
}

// Profile is the subset of the GitHub user resource the API consumes.
type Profile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// ProviderID returns the numeric GitHub id as a string.
func (p *Profile) ProviderID() string {
	return strconv.FormatInt(p.ID, 10)
}

// NewClient creates a GitHub OAuth client.
func NewClient(cfg Config) *Client {
	return &Client{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"user:email"},
			Endpoint:     githuboauth.Endpoint,
		},
		apiBaseURL: defaultAPIBaseURL,
	}
}

// AuthCodeURL returns the GitHub authorization URL for the given state.
func (c *Client) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

// FetchProfile exchanges the callback code for a token and loads the user's
// profile. When the public profile hides the email, the primary address is
// fetched from the emails endpoint.
func (c *Client) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	token, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging oauth code: %w", err)
	}

	httpClient := c.conf.Client(ctx, token)

	var profile Profile
	if err := c.getJSON(ctx, httpClient, "/user", &profile); err != nil {
		return nil, fmt.Errorf("fetching github profile: %w", err)
	}

	if profile.Email == "" {
		var emails []struct {
			Email   string `json:"email"`
			Primary bool   `json:"primary"`
		}
		// Best effort; a profile without any shared email is still usable.
		if err := c.getJSON(ctx, httpClient, "/user/emails", &emails); err == nil {
			for _, e := range emails {
				if e.Primary {
					profile.Email = e.Email
					break
				}
			}
			if profile.Email == "" && len(emails) > 0 {
				profile.Email = emails[0].Email
			}
		}
	}

	return &profile, nil
}

func (c *Client) getJSON(ctx context.Context, client *http.Client, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github API returned %s for %s", resp.Status, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
