package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newMockSumUpClient(t *testing.T) (*SumUpClient, *MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	mockHTTP := NewMockHTTPClientI(ctrl)
	client := NewSumUpClient("https://api.sumup.test", "test-api-key")
	client.SetClient(mockHTTP)
	defer ctrl.Finish()

	return client, mockHTTP
}

func jsonResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{},
	}
}

func TestSumUpClient_CreateCheckout(t *testing.T) {
	client, mockHTTP := newMockSumUpClient(t)
	reference := uuid.New()
	draft := CheckoutDraft{
		Reference:    reference,
		Amount:       20,
		Currency:     "EUR",
		MerchantCode: "M1234",
	}

	t.Run("Checkout created", func(t *testing.T) {
		respBody := fmt.Sprintf(`{"id":"co-1","checkout_reference":"%s","amount":20,"currency":"EUR","status":"PENDING"}`, reference)
		mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://api.sumup.test/v0.1/checkouts", req.URL.String())
			assert.Equal(t, "Bearer test-api-key", req.Header.Get("Authorization"))
			return jsonResponse(http.StatusCreated, respBody), nil
		})

		checkout, err := client.CreateCheckout(context.Background(), draft)
		assert.NoError(t, err)
		assert.Equal(t, "co-1", checkout.ID)
		assert.Equal(t, reference, checkout.Reference)
		assert.Equal(t, CheckoutStatusPending, checkout.Status)
	})

	t.Run("Gateway rejects the draft", func(t *testing.T) {
		mockHTTP.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusBadRequest, `{}`), nil)

		checkout, err := client.CreateCheckout(context.Background(), draft)
		assert.Error(t, err)
		assert.Nil(t, checkout)
	})

	t.Run("Transport failure", func(t *testing.T) {
		mockHTTP.EXPECT().Do(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

		checkout, err := client.CreateCheckout(context.Background(), draft)
		assert.Error(t, err)
		assert.Nil(t, checkout)
	})
}

func TestSumUpClient_FindCheckout(t *testing.T) {
	client, mockHTTP := newMockSumUpClient(t)
	reference := uuid.New()
	url := "https://api.sumup.test/v0.1/checkouts?checkout_reference=" + reference.String()

	t.Run("Checkout found", func(t *testing.T) {
		respBody := fmt.Sprintf(`[{"id":"co-1","checkout_reference":"%s","amount":20,"currency":"EUR","status":"PAID"}]`, reference)
		mockHTTP.EXPECT().Get(url, gomock.Any()).Return(http.StatusOK, []byte(respBody), http.Header{}, nil)

		checkout, err := client.FindCheckout(context.Background(), reference)
		assert.NoError(t, err)
		assert.Equal(t, CheckoutStatusPaid, checkout.Status)
	})

	t.Run("Empty list means unknown reference", func(t *testing.T) {
		mockHTTP.EXPECT().Get(url, gomock.Any()).Return(http.StatusOK, []byte(`[]`), http.Header{}, nil)

		checkout, err := client.FindCheckout(context.Background(), reference)
		assert.ErrorIs(t, err, ErrCheckoutNotFound)
		assert.Nil(t, checkout)
	})

	t.Run("Gateway 404 means unknown reference", func(t *testing.T) {
		mockHTTP.EXPECT().Get(url, gomock.Any()).Return(http.StatusNotFound, []byte(`{}`), http.Header{}, nil)

		checkout, err := client.FindCheckout(context.Background(), reference)
		assert.ErrorIs(t, err, ErrCheckoutNotFound)
		assert.Nil(t, checkout)
	})

	t.Run("Unexpected status code", func(t *testing.T) {
		mockHTTP.EXPECT().Get(url, gomock.Any()).Return(http.StatusBadGateway, []byte(``), http.Header{}, nil)

		checkout, err := client.FindCheckout(context.Background(), reference)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCheckoutNotFound)
		assert.Nil(t, checkout)
	})
}

func TestSumUpClient_GetTransaction(t *testing.T) {
	client, mockHTTP := newMockSumUpClient(t)
	reference := uuid.New()
	url := "https://api.sumup.test/v0.1/me/transactions?payment_reference=" + reference.String()

	t.Run("Settled transaction found", func(t *testing.T) {
		respBody := fmt.Sprintf(`{"id":"tx-1","payment_reference":"%s","amount":20,"currency":"EUR","status":"SUCCESSFUL"}`, reference)
		mockHTTP.EXPECT().Get(url, gomock.Any()).Return(http.StatusOK, []byte(respBody), http.Header{}, nil)

		transaction, err := client.GetTransaction(context.Background(), reference)
		assert.NoError(t, err)
		assert.Equal(t, "tx-1", transaction.ID)
		assert.Equal(t, reference, transaction.Reference)
	})

	t.Run("No transaction yet", func(t *testing.T) {
		mockHTTP.EXPECT().Get(url, gomock.Any()).Return(http.StatusNotFound, []byte(`{}`), http.Header{}, nil)

		transaction, err := client.GetTransaction(context.Background(), reference)
		assert.NoError(t, err)
		assert.Nil(t, transaction)
	})

	t.Run("Transport failure", func(t *testing.T) {
		mockHTTP.EXPECT().Get(url, gomock.Any()).Return(0, nil, nil, fmt.Errorf("connection refused"))

		transaction, err := client.GetTransaction(context.Background(), reference)
		assert.Error(t, err)
		assert.Nil(t, transaction)
	})
}
