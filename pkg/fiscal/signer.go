package fiscal

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/festipay/festipay/internal/domain"
)

// Claims is the fiscally relevant slice of an order, sealed into a signed
// token after the booking transaction commits.
type Claims struct {
	OrderID    int       `json:"order_id"`
	OrderUUID  uuid.UUID `json:"order_uuid"`
	OrderType  string    `json:"order_type"`
	TotalPrice float64   `json:"total_price"`
	BookedAt   int64     `json:"booked_at"`
	jwt.StandardClaims
}

// Signer seals booked orders. It never blocks or fails a booking; a signing
// failure leaves the order fiscally open for a later retry.
type Signer struct {
	key    []byte
	issuer string
}

func New(key []byte, issuer string) *Signer {
	return &Signer{key: key, issuer: issuer}
}

func (s *Signer) Sign(ctx context.Context, order *domain.Order) (string, error) {
	claims := Claims{
		OrderID:    order.ID,
		OrderUUID:  order.UUID,
		OrderType:  string(order.Type),
		TotalPrice: order.TotalPrice,
		BookedAt:   order.BookedAt.Unix(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
			Issuer:   s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify checks a signature produced by Sign and returns its claims.
func (s *Signer) Verify(signature string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(signature, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid signature")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.OrderID == 0 || claims.Issuer != s.issuer {
		return nil, errors.New("invalid signature claims")
	}

	return claims, nil
}
