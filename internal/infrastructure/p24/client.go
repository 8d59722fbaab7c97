package p24

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/proofing-gallery/internal/application"
	"github.com/DanielPopoola/proofing-gallery/internal/config"
)

const (
	defaultCountry  = "PL"
	defaultLanguage = "pl"
	encodingUTF8    = "UTF-8"
	verifySuccess   = "success"
)

// Client talks to the Przelewy24 REST API.
type Client struct {
	baseURL    string
	merchantID int
	posID      int
	crc        string
	apiKey     string
	timeLimit  int
	channel    int
	httpClient *http.Client
}

func NewClient(cfg config.P24Config) *Client {
	return &Client{
		baseURL:    cfg.Endpoint(),
		merchantID: cfg.MerchantID,
		posID:      cfg.PosID,
		crc:        cfg.CRC,
		apiKey:     cfg.APIKey,
		timeLimit:  cfg.TimeLimit,
		channel:    cfg.Channel,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *Client) RegisterTransaction(ctx context.Context, req application.RegisterTransactionRequest) (*application.RegisterTransactionResponse, error) {
	signature, err := sign(registerSignFields{
		SessionID:  req.SessionID,
		MerchantID: c.merchantID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		CRC:        c.crc,
	})
	if err != nil {
		return nil, err
	}

	body := registerRequest{
		MerchantID:    c.merchantID,
		PosID:         c.posID,
		SessionID:     req.SessionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Description:   req.Description,
		Email:         req.Email,
		Client:        req.ClientName,
		Country:       defaultCountry,
		Language:      defaultLanguage,
		URLReturn:     req.ReturnURL,
		URLStatus:     req.StatusURL,
		TimeLimit:     c.timeLimit,
		Channel:       c.channel,
		WaitForResult: true,
		Encoding:      encodingUTF8,
		Sign:          signature,
	}

	endpoint := fmt.Sprintf("%s/api/v1/transaction/register", c.baseURL)
	resp, err := sendRequest[registerRequest, registerResponse](c, ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}

	return &application.RegisterTransactionResponse{
		Token:       resp.Data.Token,
		RedirectURL: c.RedirectURL(resp.Data.Token),
	}, nil
}

func (c *Client) VerifyTransaction(ctx context.Context, req application.VerifyTransactionRequest) error {
	signature, err := sign(verifySignFields{
		SessionID: req.SessionID,
		OrderID:   req.OrderID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		CRC:       c.crc,
	})
	if err != nil {
		return err
	}

	body := verifyRequest{
		MerchantID: c.merchantID,
		PosID:      c.posID,
		SessionID:  req.SessionID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		OrderID:    req.OrderID,
		Sign:       signature,
	}

	endpoint := fmt.Sprintf("%s/api/v1/transaction/verify", c.baseURL)
	resp, err := sendRequest[verifyRequest, verifyResponse](c, ctx, http.MethodPut, endpoint, &body)
	if err != nil {
		return err
	}
	if resp.Data.Status != verifySuccess {
		return fmt.Errorf("%w: status %q", application.ErrVerificationRejected, resp.Data.Status)
	}
	return nil
}

func (c *Client) GetTransaction(ctx context.Context, sessionID string) (*application.TransactionStatus, error) {
	endpoint := fmt.Sprintf("%s/api/v1/transaction/by/sessionId/%s", c.baseURL, url.PathEscape(sessionID))
	resp, err := sendRequest[any, transactionResponse](c, ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	return &application.TransactionStatus{
		SessionID: resp.Data.SessionID,
		OrderID:   resp.Data.OrderID,
		Status:    resp.Data.Status,
		Amount:    resp.Data.Amount,
		Currency:  resp.Data.Currency,
	}, nil
}

// TestAccess checks that the configured credentials are accepted.
func (c *Client) TestAccess(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/api/v1/testAccess", c.baseURL)
	resp, err := sendRequest[any, testAccessResponse](c, ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if !resp.Data {
		return fmt.Errorf("p24 rejected credentials: %s", resp.Error)
	}
	return nil
}

func (c *Client) ValidNotification(n application.Notification) bool {
	if n.MerchantID != c.merchantID || n.PosID != c.posID {
		return false
	}

	expected, err := NotificationSign(n, c.crc)
	if err != nil {
		return false
	}
	return signEqual(expected, n.Sign)
}

func (c *Client) RedirectURL(token string) string {
	return fmt.Sprintf("%s/trnRequest/%s", c.baseURL, token)
}

func sendRequest[Req any, Resp any](c *Client, ctx context.Context, method, endpoint string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.SetBasicAuth(fmt.Sprint(c.posID), c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newGatewayError(resp.StatusCode, body)
	}

	var p24Resp Resp
	if err := json.Unmarshal(body, &p24Resp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &p24Resp, nil
}

func newGatewayError(status int, body []byte) *application.GatewayError {
	gwErr := &application.GatewayError{
		Code:       fmt.Sprintf("p24_%d", status),
		Message:    http.StatusText(status),
		StatusCode: status,
		Detail:     string(body),
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		gwErr.Message = fmt.Sprint(errResp.Error)
	}
	return gwErr
}
