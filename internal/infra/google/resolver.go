package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"resto-booking/internal/domain/user"
	"resto-booking/internal/pkg/config"
	"resto-booking/internal/pkg/errs"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"

var ErrNoEmail = errs.New("identity provider returned no email")

// IdentityResolver exchanges a Google OAuth authorization code for a
// verified profile. The rest of the system only sees the resulting
// {email, name, picture, token}.
type IdentityResolver struct {
	oauth      *oauth2.Config
	httpClient *http.Client
}

func NewIdentityResolver(cfg config.GoogleConfig) *IdentityResolver {
	return &IdentityResolver{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ConsentURL is where the frontend sends the user to grant access.
func (r *IdentityResolver) ConsentURL(state string) string {
	return r.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (r *IdentityResolver) Exchange(ctx context.Context, code string) (*user.Profile, error) {
	token, err := r.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to exchange authorization code")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build userinfo request")
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "userinfo request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, errs.New("userinfo request returned " + resp.Status + ": " + string(body))
	}

	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errs.Wrap(err, "failed to decode userinfo response")
	}
	if info.Email == "" {
		return nil, ErrNoEmail
	}

	return &user.Profile{
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
		Token:   token.AccessToken,
	}, nil
}
