package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const DefaultBaseURL = "https://api.resend.com"

const sendPath = "/emails"
const fromAddress = "CertiChain <noreply@certichain.app>"

// ResendClient sends transactional email through the Resend HTTP API.
type ResendClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	appURL     string
}

func NewResendClient(httpClient *http.Client, baseURL string, apiKey string, appURL string) *ResendClient {
	return &ResendClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		appURL:     appURL,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (c *ResendClient) SendCertificateIssued(ctx context.Context, to string, certificateID string, recipientName string, certificateType string) error {
	payload := sendRequest{
		From:    fromAddress,
		To:      []string{to},
		Subject: fmt.Sprintf("Your %s Certificate", certificateType),
		HTML: fmt.Sprintf(
			`<div><h1>Congratulations, %s!</h1>`+
				`<p>You have received a new certificate: <strong>%s</strong></p>`+
				`<p>View your certificate: <a href="%s/certificate/%s">View Certificate</a></p></div>`,
			recipientName, certificateType, c.appURL, certificateID),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend responded with %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
