package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// ErrCheckoutNotFound means the gateway does not know the reference (yet).
// Right after checkout creation this is expected and not a hard failure.
var ErrCheckoutNotFound = errors.New("checkout not found")

type CheckoutStatus string

const (
	CheckoutStatusPending CheckoutStatus = "PENDING"
	CheckoutStatusPaid    CheckoutStatus = "PAID"
	CheckoutStatusFailed  CheckoutStatus = "FAILED"
)

// TransactionStatusSuccessful is the only transaction state that confirms
// payment; the history also lists failed and refunded attempts.
const TransactionStatusSuccessful = "SUCCESSFUL"

// Checkout is the gateway-side payment intent for one pending order. The
// reference is the order uuid.
type Checkout struct {
	ID        string         `json:"id"`
	Reference uuid.UUID      `json:"checkout_reference"`
	Amount    float64        `json:"amount"`
	Currency  string         `json:"currency"`
	Status    CheckoutStatus `json:"status"`
}

// CardTransaction is a settled card payment as reported by the transaction
// history. Its presence alone confirms payment regardless of checkout state.
type CardTransaction struct {
	ID        string    `json:"id"`
	Reference uuid.UUID `json:"payment_reference"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
}

type CheckoutDraft struct {
	Reference    uuid.UUID `json:"checkout_reference"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	MerchantCode string    `json:"merchant_code"`
	Description  string    `json:"description,omitempty"`
}

// GatewayClient is the card gateway surface the reconciliation loop needs.
type GatewayClient interface {
	CreateCheckout(ctx context.Context, draft CheckoutDraft) (*Checkout, error)
	FindCheckout(ctx context.Context, reference uuid.UUID) (*Checkout, error)
	GetTransaction(ctx context.Context, reference uuid.UUID) (*CardTransaction, error)
}

type SumUpClient struct {
	baseURL string
	apiKey  string
	client  HTTPClientI
}

func NewSumUpClient(baseURL, apiKey string) *SumUpClient {
	return &SumUpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  NewHTTPClient(),
	}
}

func (c *SumUpClient) SetClient(mock HTTPClientI) {
	c.client = mock
}

func (c *SumUpClient) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.apiKey)
	h.Set("Content-Type", "application/json")
	return h
}

func (c *SumUpClient) CreateCheckout(ctx context.Context, draft CheckoutDraft) (checkout *Checkout, err error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkout draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v0.1/checkouts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header = c.headers()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code %d creating checkout %s", resp.StatusCode, draft.Reference)
	}

	checkout = &Checkout{}
	if err := json.Unmarshal(respBody, checkout); err != nil {
		return nil, fmt.Errorf("failed to parse checkout response: %w", err)
	}
	return checkout, nil
}

func (c *SumUpClient) FindCheckout(ctx context.Context, reference uuid.UUID) (*Checkout, error) {
	url := c.baseURL + "/v0.1/checkouts?checkout_reference=" + reference.String()
	statusCode, respBody, _, err := c.client.Get(url, c.headers())
	if err != nil {
		return nil, err
	}

	switch statusCode {
	case http.StatusOK:
		var checkouts []Checkout
		if err := json.Unmarshal(respBody, &checkouts); err != nil {
			return nil, fmt.Errorf("failed to parse checkout list: %w", err)
		}
		if len(checkouts) == 0 {
			return nil, fmt.Errorf("checkout %s: %w", reference, ErrCheckoutNotFound)
		}
		return &checkouts[0], nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("checkout %s: %w", reference, ErrCheckoutNotFound)
	default:
		return nil, fmt.Errorf("unexpected status code %d for checkout %s", statusCode, reference)
	}
}

func (c *SumUpClient) GetTransaction(ctx context.Context, reference uuid.UUID) (*CardTransaction, error) {
	url := c.baseURL + "/v0.1/me/transactions?payment_reference=" + reference.String()
	statusCode, respBody, _, err := c.client.Get(url, c.headers())
	if err != nil {
		return nil, err
	}

	switch statusCode {
	case http.StatusOK:
		var transaction CardTransaction
		if err := json.Unmarshal(respBody, &transaction); err != nil {
			return nil, fmt.Errorf("failed to parse transaction response: %w", err)
		}
		return &transaction, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected status code %d for transaction %s", statusCode, reference)
	}
}
