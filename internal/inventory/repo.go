// Package inventory provides the read-only stock lookup behind the inventory service.
package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("product not found in inventory")
)

type Repository interface {
	GetStock(ctx context.Context, productID int) (Record, error)
}

// StaticRepo is an immutable in-memory table built once at startup.
type StaticRepo struct{ stock map[int]int }

func NewStaticRepo(seed map[int]int) *StaticRepo {
	cp := make(map[int]int, len(seed))
	for id, n := range seed {
		cp[id] = n
	}
	return &StaticRepo{stock: cp}
}

func (r *StaticRepo) GetStock(ctx context.Context, productID int) (Record, error) {
	n, ok := r.stock[productID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return Record{ProductID: productID, Stock: n}, nil
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetStock(ctx context.Context, productID int) (Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rec := Record{ProductID: productID}
	err := r.db.QueryRow(ctx, `
		SELECT stock FROM inventory WHERE product_id=$1
	`, productID).Scan(&rec.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}
