package clubapi

import (
	"context"
	"net/http"
	"net/url"
)

type accountStatusResponse struct {
	StripeAccountID *string `json:"stripe_account_id"`
}

type connectRequest struct {
	ClubName string `json:"clubName"`
	Email    string `json:"email"`
}

type connectResponse struct {
	OnboardingURL string `json:"onboarding_url" validate:"required,url"`
}

type loginLinkRequest struct {
	ClubName string `json:"clubName"`
}

type loginLinkResponse struct {
	URL string `json:"url" validate:"required,url"`
}

func (c *Client) AccountID(ctx context.Context, clubName string) (string, error) {
	var resp accountStatusResponse

	query := url.Values{"clubName": {clubName}}
	if err := c.do(ctx, http.MethodGet, "/stripe/status", query, nil, &resp); err != nil {
		return "", err
	}

	if resp.StripeAccountID == nil {
		return "", nil
	}

	return *resp.StripeAccountID, nil
}

func (c *Client) OnboardingLink(ctx context.Context, clubName, email string) (string, error) {
	var resp connectResponse

	req := connectRequest{ClubName: clubName, Email: email}
	if err := c.do(ctx, http.MethodPost, "/stripe/connect", nil, req, &resp); err != nil {
		return "", err
	}

	return resp.OnboardingURL, nil
}

func (c *Client) LoginLink(ctx context.Context, clubName string) (string, error) {
	var resp loginLinkResponse

	req := loginLinkRequest{ClubName: clubName}
	if err := c.do(ctx, http.MethodPost, "/stripe/login-link", nil, req, &resp); err != nil {
		return "", err
	}

	return resp.URL, nil
}
