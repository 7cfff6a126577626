package product

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/shop-demo/internal/httpx"
	"github.com/MikeMC777/shop-demo/internal/latency"
	"github.com/MikeMC777/shop-demo/internal/logging"
	"github.com/MikeMC777/shop-demo/internal/metrics"
)

// Catalog composes products with inventory stock. A failed stock lookup degrades
// that one product to stock=0; it never fails the request.
type Catalog struct {
	repo    Repository
	stock   StockSource
	delay   *latency.Simulator
	log     zerolog.Logger
	metrics *metrics.Metrics
}

type Option func(*Catalog)

func WithLogger(lg zerolog.Logger) Option { return func(c *Catalog) { c.log = lg } }

func WithMetrics(m *metrics.Metrics) Option { return func(c *Catalog) { c.metrics = m } }

// WithListDelay makes List wait a random delay before reading the catalog.
func WithListDelay(s *latency.Simulator) Option { return func(c *Catalog) { c.delay = s } }

func NewCatalog(repo Repository, stock StockSource, opts ...Option) *Catalog {
	c := &Catalog{repo: repo, stock: stock, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// List returns every product with its stock, in catalog order. Lookups run
// concurrently; each result lands in the slot of its source index.
func (c *Catalog) List(ctx context.Context) ([]EnrichedProduct, error) {
	if err := c.delay.Wait(ctx); err != nil {
		return nil, err
	}
	products, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]EnrichedProduct, len(products))
	var g errgroup.Group
	for i, p := range products {
		g.Go(func() error {
			out[i] = c.enrich(ctx, p)
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}

// Get returns one product with its stock. ErrNotFound is returned, without
// contacting inventory, when the id is not in the catalog.
func (c *Catalog) Get(ctx context.Context, id int) (EnrichedProduct, error) {
	p, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return EnrichedProduct{}, err
	}
	return c.enrich(ctx, p), nil
}

type stockResult struct {
	stock int
	err   error
}

func (c *Catalog) lookup(ctx context.Context, id int) stockResult {
	n, err := c.stock.Stock(ctx, id)
	if err == nil && n < 0 {
		err = errNegativeStock
	}
	return stockResult{stock: n, err: err}
}

var errNegativeStock = errors.New("negative stock")

func (c *Catalog) enrich(ctx context.Context, p Product) EnrichedProduct {
	res := c.lookup(ctx, p.ID)
	if res.err != nil {
		reason := degradeReason(res.err)
		c.metrics.Degraded(reason)
		c.log.Warn().
			Str(logging.REQUEST_ID, httpx.RequestIDFrom(ctx)).
			Int(logging.PRODUCT_ID, p.ID).
			Str("reason", reason).
			Err(res.err).
			Msg("inventory lookup failed, using stock=0")
		return EnrichedProduct{Product: p, Stock: 0}
	}
	return EnrichedProduct{Product: p, Stock: res.stock}
}

func degradeReason(err error) string {
	switch {
	case httpx.IsStatus(err, http.StatusNotFound):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, errNegativeStock):
		return "invalid"
	default:
		var se *httpx.StatusError
		if errors.As(err, &se) {
			return "upstream_status"
		}
		return "unreachable"
	}
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
