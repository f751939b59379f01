package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/glowbook/glowbook-api/internal/domain/provider"
)

type fakeServiceRepo struct {
	byID map[uuid.UUID]*Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{byID: make(map[uuid.UUID]*Service)}
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *Service) error {
	cp := *svc
	f.byID[svc.ID] = &cp
	return nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*Service, error) {
	if svc, ok := f.byID[id]; ok {
		cp := *svc
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeServiceRepo) ListByProvider(_ context.Context, ref provider.Ref) ([]*Service, error) {
	result := []*Service{}
	for _, svc := range f.byID {
		if r, ok := svc.Ref(); ok && r == ref {
			cp := *svc
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakePortfolioRepo struct {
	byID map[uuid.UUID]*Portfolio
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{byID: make(map[uuid.UUID]*Portfolio)}
}

func (f *fakePortfolioRepo) Create(_ context.Context, item *Portfolio) error {
	cp := *item
	f.byID[item.ID] = &cp
	return nil
}

func (f *fakePortfolioRepo) GetByID(_ context.Context, id uuid.UUID) (*Portfolio, error) {
	if item, ok := f.byID[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePortfolioRepo) ListByProvider(_ context.Context, ref provider.Ref) ([]*Portfolio, error) {
	result := []*Portfolio{}
	for _, item := range f.byID {
		if r, ok := item.Ref(); ok && r == ref {
			cp := *item
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakePortfolioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

// fakeOwnerResolver maps provider refs to owner user ids
type fakeOwnerResolver struct {
	owners map[provider.Ref]uuid.UUID
}

func (f *fakeOwnerResolver) ResolveOwner(_ context.Context, ref provider.Ref) (uuid.UUID, error) {
	if owner, ok := f.owners[ref]; ok {
		return owner, nil
	}
	if ref.Kind == provider.KindStudio {
		return uuid.Nil, provider.ErrStudioNotFound
	}
	return uuid.Nil, provider.ErrArtistNotFound
}

func newTestCatalog() (*CatalogService, *fakeServiceRepo, *fakePortfolioRepo, *fakeOwnerResolver) {
	services := newFakeServiceRepo()
	portfolios := newFakePortfolioRepo()
	owners := &fakeOwnerResolver{owners: make(map[provider.Ref]uuid.UUID)}
	return NewCatalogService(services, portfolios, owners), services, portfolios, owners
}

func TestCreateService_OwnershipGate(t *testing.T) {
	svc, _, _, owners := newTestCatalog()
	owner := uuid.New()
	artistID := uuid.New()
	owners.owners[provider.ArtistRef(artistID)] = owner

	req := &CreateServiceRequest{ArtistID: &artistID, Name: "Bridal Makeup", Price: 60000}

	// stranger
	if _, err := svc.CreateService(context.Background(), uuid.New(), req); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}

	// dangling artist reference
	missing := uuid.New()
	if _, err := svc.CreateService(context.Background(), owner, &CreateServiceRequest{
		ArtistID: &missing, Name: "Bridal Makeup", Price: 60000,
	}); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("expected ErrProviderNotFound, got %v", err)
	}

	// owner
	created, err := svc.CreateService(context.Background(), owner, req)
	if err != nil {
		t.Fatalf("owner create failed: %v", err)
	}
	if created.Price != 60000 {
		t.Errorf("expected price 60000, got %d", created.Price)
	}
	if created.ArtistID == nil || *created.ArtistID != artistID {
		t.Error("expected artist reference on created service")
	}
}

func TestCreateService_RequiresExactlyOneProvider(t *testing.T) {
	svc, _, _, _ := newTestCatalog()
	artistID := uuid.New()
	studioID := uuid.New()

	if _, err := svc.CreateService(context.Background(), uuid.New(), &CreateServiceRequest{
		Name: "Orphan", Price: 100,
	}); !errors.Is(err, ErrProviderRequired) {
		t.Errorf("expected ErrProviderRequired with neither id, got %v", err)
	}

	if _, err := svc.CreateService(context.Background(), uuid.New(), &CreateServiceRequest{
		ArtistID: &artistID, StudioID: &studioID, Name: "Both", Price: 100,
	}); !errors.Is(err, ErrProviderRequired) {
		t.Errorf("expected ErrProviderRequired with both ids, got %v", err)
	}
}

func TestDeleteService_ReResolvesOwnership(t *testing.T) {
	svc, services, _, owners := newTestCatalog()
	owner := uuid.New()
	studioID := uuid.New()
	owners.owners[provider.StudioRef(studioID)] = owner

	created, err := svc.CreateService(context.Background(), owner, &CreateServiceRequest{
		StudioID: &studioID, Name: "Studio Glam", Price: 45000,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// a stranger cannot delete by id alone
	if err := svc.DeleteService(context.Background(), uuid.New(), created.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if _, ok := services.byID[created.ID]; !ok {
		t.Fatal("service must survive a forbidden delete")
	}

	if err := svc.DeleteService(context.Background(), owner, uuid.New()); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("expected ErrServiceNotFound, got %v", err)
	}

	if err := svc.DeleteService(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := services.byID[created.ID]; ok {
		t.Error("service must be gone after owner delete")
	}
}

func TestPortfolio_OwnershipGate(t *testing.T) {
	svc, _, portfolios, owners := newTestCatalog()
	owner := uuid.New()
	artistID := uuid.New()
	owners.owners[provider.ArtistRef(artistID)] = owner

	req := &CreatePortfolioRequest{ArtistID: &artistID, ImageURL: "https://img.example/look.jpg"}

	if _, err := svc.AddPortfolioItem(context.Background(), uuid.New(), req); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}

	item, err := svc.AddPortfolioItem(context.Background(), owner, req)
	if err != nil {
		t.Fatalf("owner add failed: %v", err)
	}

	if err := svc.DeletePortfolioItem(context.Background(), uuid.New(), item.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner on delete, got %v", err)
	}
	if err := svc.DeletePortfolioItem(context.Background(), owner, item.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(portfolios.byID) != 0 {
		t.Error("portfolio item must be gone after owner delete")
	}
}

func TestListServices_ScopedToProvider(t *testing.T) {
	svc, _, _, owners := newTestCatalog()
	ownerA := uuid.New()
	ownerB := uuid.New()
	artistA := uuid.New()
	artistB := uuid.New()
	owners.owners[provider.ArtistRef(artistA)] = ownerA
	owners.owners[provider.ArtistRef(artistB)] = ownerB

	if _, err := svc.CreateService(context.Background(), ownerA, &CreateServiceRequest{
		ArtistID: &artistA, Name: "Bridal", Price: 60000,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateService(context.Background(), ownerB, &CreateServiceRequest{
		ArtistID: &artistB, Name: "Editorial", Price: 30000,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	listed, err := svc.ListServices(context.Background(), provider.ArtistRef(artistA))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Bridal" {
		t.Errorf("expected only artist A's menu, got %d rows", len(listed))
	}
}
