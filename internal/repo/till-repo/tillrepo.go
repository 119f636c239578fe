package tillrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetTill(ctx context.Context, id int) (*domain.Till, error) {
	query := `
        SELECT id, name, active_profile_id, active_cashier_id, register_account_id, ticket_product_id
        FROM tills
        WHERE id = $1
    `
	var till domain.Till
	err := r.db.QueryRow(ctx, query, id).Scan(
		&till.ID, &till.Name, &till.ActiveProfileID, &till.ActiveCashierID,
		&till.RegisterAccountID, &till.TicketProductID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't fetch till", zap.Error(err))
		return nil, err
	}
	return &till, nil
}

func (r *Repository) GetProfile(ctx context.Context, id int) (*domain.TillProfile, error) {
	query := `
        SELECT id, name, allow_top_up, allow_cash_out, allow_ticket_sale
        FROM till_profiles
        WHERE id = $1
    `
	var profile domain.TillProfile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.Name, &profile.AllowTopUp, &profile.AllowCashOut, &profile.AllowTicketSale)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't fetch till profile", zap.Error(err))
		return nil, err
	}

	buttonsQuery := `
        SELECT button_id
        FROM till_profile_buttons
        WHERE profile_id = $1
        ORDER BY button_id ASC
    `
	rows, err := r.db.Query(ctx, buttonsQuery, id)
	if err != nil {
		zap.L().Error("can't fetch profile buttons", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var buttonID int
		if err := rows.Scan(&buttonID); err != nil {
			zap.L().Error("can't scan profile button row", zap.Error(err))
			return nil, err
		}
		profile.ButtonIDs = append(profile.ButtonIDs, buttonID)
	}
	return &profile, nil
}

// GetButtonProducts returns the products a layout button sells. A button may
// bundle several products (beer plus its deposit).
func (r *Repository) GetButtonProducts(ctx context.Context, buttonID int) ([]domain.Product, error) {
	query := `
        SELECT p.id, p.name, p.price, p.fixed_price, p.price_in_vouchers, p.is_returnable,
            p.tax_name, p.tax_rate, p.target_account_id
        FROM till_button_products bp
        JOIN products p ON p.id = bp.product_id
        WHERE bp.button_id = $1
        ORDER BY p.id ASC
    `
	rows, err := r.db.Query(ctx, query, buttonID)
	if err != nil {
		zap.L().Error("can't fetch button products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.FixedPrice, &p.PriceInVouchers,
			&p.IsReturnable, &p.TaxName, &p.TaxRate, &p.TargetAccountID)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *Repository) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	query := `
        SELECT id, name, price, fixed_price, price_in_vouchers, is_returnable, tax_name, tax_rate, target_account_id
        FROM products
        WHERE id = $1
    `
	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.FixedPrice,
		&p.PriceInVouchers, &p.IsReturnable, &p.TaxName, &p.TaxRate, &p.TargetAccountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't fetch product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}
