// Package product provides the product catalog, its read-only repositories and the
// inventory enrichment that turns products into EnrichedProducts.
package product

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Repository interface {
	GetByID(ctx context.Context, id int) (Product, error)
	List(ctx context.Context) ([]Product, error)
}

// StaticRepo serves an immutable product list in its original order.
type StaticRepo struct {
	items []Product
	byID  map[int]int
}

func NewStaticRepo(seed []Product) *StaticRepo {
	r := &StaticRepo{
		items: append([]Product(nil), seed...),
		byID:  make(map[int]int, len(seed)),
	}
	for i, p := range r.items {
		if _, dup := r.byID[p.ID]; !dup {
			r.byID[p.ID] = i
		}
	}
	return r
}

func (r *StaticRepo) GetByID(ctx context.Context, id int) (Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *StaticRepo) List(ctx context.Context) ([]Product, error) {
	return append([]Product(nil), r.items...), nil
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetByID(ctx context.Context, id int) (Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		p     Product
		price string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price::text, category
		FROM products WHERE id=$1
	`, id).Scan(&p.ID, &p.Name, &price, &p.Category)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, price::text, category
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var (
			p     Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.Category); err != nil {
			return nil, err
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
