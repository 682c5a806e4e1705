package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/storemgmt/store-api/internal/core/domain"
	"github.com/storemgmt/store-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := cloneProduct(p)
	created.ID = fmt.Sprintf("p%d", r.nextID)
	r.products[created.ID] = cloneProduct(created)
	return cloneProduct(created), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *stubProductRepo) UpdatePrice(_ context.Context, id string, price float64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p.Price = price
	p.UpdatedAt = time.Now().UTC()
	return cloneProduct(p), nil
}

// DecrementStock mirrors the real repository's conditional update: the guard
// and the write happen in one step against the stored record.
func (r *stubProductRepo) DecrementStock(_ context.Context, id string, n int) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if p.Quantity < n {
		return nil, domain.ErrOutOfStock
	}
	p.Quantity -= n
	p.UpdatedAt = time.Now().UTC()
	return cloneProduct(p), nil
}

type captureEnqueuer struct {
	alerts []ports.RestockAlertInput
}

func (c *captureEnqueuer) Enqueue(alert ports.RestockAlertInput) {
	c.alerts = append(c.alerts, alert)
}

func newInventoryService(repo ports.ProductRepository, restock RestockEnqueuer, threshold int) *InventoryService {
	return NewInventoryService(repo, restock, threshold, zerolog.Nop())
}

func TestInventoryService_Add_And_FindByID(t *testing.T) {
	repo := newStubProductRepo()
	svc := newInventoryService(repo, nil, 0)

	created, err := svc.Add(context.Background(), ports.AddProductInput{
		Name: "Widget", Price: 50.0, Quantity: 10,
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	found, err := svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found.Name != "Widget" || found.Price != 50.0 || found.Quantity != 10 {
		t.Fatalf("unexpected product: %+v", found)
	}
}

func TestInventoryService_FindByID_NotFound(t *testing.T) {
	svc := newInventoryService(newStubProductRepo(), nil, 0)

	if _, err := svc.FindByID(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

// An empty catalog is an explicit failure, not an empty slice.
func TestInventoryService_List_Empty(t *testing.T) {
	svc := newInventoryService(newStubProductRepo(), nil, 0)

	if _, err := svc.List(context.Background()); !errors.Is(err, domain.ErrNoProducts) {
		t.Fatalf("expected ErrNoProducts, got %v", err)
	}
}

func TestInventoryService_List_AfterAdd(t *testing.T) {
	repo := newStubProductRepo()
	svc := newInventoryService(repo, nil, 0)

	created, err := svc.Add(context.Background(), ports.AddProductInput{
		Name: "Widget", Price: 50.0, Quantity: 10,
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].ID != created.ID || products[0].Name != "Widget" {
		t.Fatalf("unexpected product: %+v", products[0])
	}
}

// Setting the same price twice yields the same stored price both times.
func TestInventoryService_UpdatePrice_Idempotent(t *testing.T) {
	repo := newStubProductRepo()
	svc := newInventoryService(repo, nil, 0)

	created, _ := svc.Add(context.Background(), ports.AddProductInput{
		Name: "Widget", Price: 50.0, Quantity: 10,
	})

	first, err := svc.UpdatePrice(context.Background(), created.ID, 75.0)
	if err != nil {
		t.Fatalf("first UpdatePrice failed: %v", err)
	}
	second, err := svc.UpdatePrice(context.Background(), created.ID, 75.0)
	if err != nil {
		t.Fatalf("second UpdatePrice failed: %v", err)
	}
	if first.Price != 75.0 || second.Price != 75.0 {
		t.Fatalf("expected price 75.0 both times, got %v then %v", first.Price, second.Price)
	}
}

func TestInventoryService_UpdatePrice_NotFound(t *testing.T) {
	svc := newInventoryService(newStubProductRepo(), nil, 0)

	if _, err := svc.UpdatePrice(context.Background(), "missing", 10.0); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInventoryService_Purchase_ExhaustsStock(t *testing.T) {
	repo := newStubProductRepo()
	svc := newInventoryService(repo, nil, 0)

	created, _ := svc.Add(context.Background(), ports.AddProductInput{
		Name: "Widget", Price: 50.0, Quantity: 10,
	})

	updated, err := svc.Purchase(context.Background(), created.ID, 10)
	if err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if updated.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %d", updated.Quantity)
	}

	// Stock is gone: the next purchase fails and quantity stays at 0.
	if _, err := svc.Purchase(context.Background(), created.ID, 1); !errors.Is(err, domain.ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
	after, err := svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if after.Quantity != 0 {
		t.Fatalf("quantity changed on failed purchase: %d", after.Quantity)
	}
}

func TestInventoryService_Purchase_PartialDecrement(t *testing.T) {
	repo := newStubProductRepo()
	svc := newInventoryService(repo, nil, 0)

	created, _ := svc.Add(context.Background(), ports.AddProductInput{
		Name: "Widget", Price: 50.0, Quantity: 10,
	})

	updated, err := svc.Purchase(context.Background(), created.ID, 3)
	if err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if updated.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", updated.Quantity)
	}
}

func TestInventoryService_Purchase_NotFound(t *testing.T) {
	svc := newInventoryService(newStubProductRepo(), nil, 0)

	if _, err := svc.Purchase(context.Background(), "missing", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestInventoryService_Purchase_LowStockAlert(t *testing.T) {
	repo := newStubProductRepo()
	enqueuer := &captureEnqueuer{}
	svc := newInventoryService(repo, enqueuer, 5)

	created, _ := svc.Add(context.Background(), ports.AddProductInput{
		Name: "Widget", Price: 50.0, Quantity: 10,
	})

	// 10 -> 7: above threshold, no alert.
	if _, err := svc.Purchase(context.Background(), created.ID, 3); err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if len(enqueuer.alerts) != 0 {
		t.Fatalf("unexpected alert above threshold: %+v", enqueuer.alerts)
	}

	// 7 -> 4: at or below threshold, alert raised.
	if _, err := svc.Purchase(context.Background(), created.ID, 3); err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if len(enqueuer.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(enqueuer.alerts))
	}
	alert := enqueuer.alerts[0]
	if alert.ProductID != created.ID || alert.Remaining != 4 || alert.Threshold != 5 {
		t.Fatalf("unexpected alert: %+v", alert)
	}
}
