package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeArtistRepo struct {
	byID map[uuid.UUID]*Artist
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{byID: make(map[uuid.UUID]*Artist)}
}

func (f *fakeArtistRepo) Create(_ context.Context, a *Artist) error {
	for _, existing := range f.byID {
		if existing.Slug == a.Slug {
			return ErrSlugTaken
		}
		if existing.UserID == a.UserID {
			return ErrProfileAlreadyExists
		}
	}
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeArtistRepo) GetByID(_ context.Context, id uuid.UUID) (*Artist, error) {
	if a, ok := f.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeArtistRepo) GetBySlug(_ context.Context, slug string) (*Artist, error) {
	for _, a := range f.byID {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Artist, error) {
	for _, a := range f.byID {
		if a.UserID == userID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistRepo) Update(_ context.Context, a *Artist) error {
	stored, ok := f.byID[a.ID]
	if !ok {
		return errors.New("not found")
	}
	cp := *a
	cp.UserID = stored.UserID
	cp.IsVerified = stored.IsVerified
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeArtistRepo) List(_ context.Context, filter *Filter) ([]*Artist, error) {
	result := []*Artist{}
	for _, a := range f.byID {
		if filter.Search != nil {
			needle := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(a.Name), needle) &&
				!strings.Contains(strings.ToLower(a.Bio.String), needle) {
				continue
			}
		}
		if filter.State != nil && a.State != *filter.State {
			continue
		}
		if filter.City != nil && a.City != *filter.City {
			continue
		}
		if filter.Specialty != nil {
			found := false
			for _, sp := range a.Specialties {
				if sp == *filter.Specialty {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		cp := *a
		result = append(result, &cp)
	}
	return result, nil
}

type fakeStudioRepo struct {
	byID map[uuid.UUID]*Studio
}

func newFakeStudioRepo() *fakeStudioRepo {
	return &fakeStudioRepo{byID: make(map[uuid.UUID]*Studio)}
}

func (f *fakeStudioRepo) Create(_ context.Context, s *Studio) error {
	for _, existing := range f.byID {
		if existing.UserID == s.UserID {
			return ErrProfileAlreadyExists
		}
	}
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeStudioRepo) GetByID(_ context.Context, id uuid.UUID) (*Studio, error) {
	if s, ok := f.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeStudioRepo) GetBySlug(_ context.Context, slug string) (*Studio, error) {
	for _, s := range f.byID {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStudioRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Studio, error) {
	for _, s := range f.byID {
		if s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStudioRepo) Update(_ context.Context, s *Studio) error {
	if _, ok := f.byID[s.ID]; !ok {
		return errors.New("not found")
	}
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeStudioRepo) List(_ context.Context, _ *Filter) ([]*Studio, error) {
	result := []*Studio{}
	for _, s := range f.byID {
		cp := *s
		result = append(result, &cp)
	}
	return result, nil
}

type fakeDetailLoader struct {
	services  map[Ref][]ServiceItem
	portfolio map[Ref][]PortfolioItem
}

func newFakeDetailLoader() *fakeDetailLoader {
	return &fakeDetailLoader{
		services:  make(map[Ref][]ServiceItem),
		portfolio: make(map[Ref][]PortfolioItem),
	}
}

func (f *fakeDetailLoader) ServicesFor(_ context.Context, ref Ref) ([]ServiceItem, error) {
	return f.services[ref], nil
}

func (f *fakeDetailLoader) PortfolioFor(_ context.Context, ref Ref) ([]PortfolioItem, error) {
	return f.portfolio[ref], nil
}

func newTestService() (*Service, *fakeArtistRepo, *fakeStudioRepo, *fakeDetailLoader) {
	artists := newFakeArtistRepo()
	studios := newFakeStudioRepo()
	details := newFakeDetailLoader()
	return NewService(artists, studios, details), artists, studios, details
}

func TestCreateArtist_GeneratesSlug(t *testing.T) {
	svc, _, _, _ := newTestService()

	artist, err := svc.CreateArtist(context.Background(), uuid.New(), &CreateArtistRequest{
		Name:  "Sarah Lee Makeup",
		State: "SP",
		City:  "Sao Paulo",
	})
	if err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}

	if !strings.HasPrefix(artist.Slug, "sarah-lee-makeup") {
		t.Errorf("expected generated slug from name, got %q", artist.Slug)
	}
	if artist.IsVerified {
		t.Error("new artist must not be verified")
	}
}

func TestCreateArtist_OnePerUser(t *testing.T) {
	svc, _, _, _ := newTestService()
	userID := uuid.New()

	if _, err := svc.CreateArtist(context.Background(), userID, &CreateArtistRequest{
		Name: "First", State: "SP", City: "Sao Paulo",
	}); err != nil {
		t.Fatalf("first CreateArtist failed: %v", err)
	}

	_, err := svc.CreateArtist(context.Background(), userID, &CreateArtistRequest{
		Name: "Second", State: "SP", City: "Sao Paulo",
	})
	if !errors.Is(err, ErrProfileAlreadyExists) {
		t.Errorf("expected ErrProfileAlreadyExists, got %v", err)
	}
}

func TestCreateStudio_OnePerUser(t *testing.T) {
	svc, _, _, _ := newTestService()
	userID := uuid.New()

	if _, err := svc.CreateStudio(context.Background(), userID, &CreateStudioRequest{
		Name: "Glow House", State: "RJ", City: "Rio",
	}); err != nil {
		t.Fatalf("first CreateStudio failed: %v", err)
	}

	_, err := svc.CreateStudio(context.Background(), userID, &CreateStudioRequest{
		Name: "Glow House 2", State: "RJ", City: "Rio",
	})
	if !errors.Is(err, ErrProfileAlreadyExists) {
		t.Errorf("expected ErrProfileAlreadyExists, got %v", err)
	}
}

func TestUpdateArtist_OwnershipGate(t *testing.T) {
	svc, _, _, _ := newTestService()
	owner := uuid.New()

	artist, err := svc.CreateArtist(context.Background(), owner, &CreateArtistRequest{
		Name: "Owner Artist", State: "SP", City: "Sao Paulo",
	})
	if err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}

	_, err = svc.UpdateArtist(context.Background(), artist.ID, uuid.New(), &UpdateArtistRequest{Name: "Hijacked"})
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for non-owner update, got %v", err)
	}

	_, err = svc.UpdateArtist(context.Background(), uuid.New(), owner, &UpdateArtistRequest{Name: "Ghost"})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Errorf("expected ErrArtistNotFound for missing artist, got %v", err)
	}

	updated, err := svc.UpdateArtist(context.Background(), artist.ID, owner, &UpdateArtistRequest{Name: "Renamed"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if updated.Slug != artist.Slug {
		t.Errorf("slug must not change when omitted, got %q", updated.Slug)
	}
}

func TestUpdateArtist_CannotTouchVerification(t *testing.T) {
	svc, artists, _, _ := newTestService()
	owner := uuid.New()

	artist, err := svc.CreateArtist(context.Background(), owner, &CreateArtistRequest{
		Name: "Verified Artist", State: "SP", City: "Sao Paulo",
	})
	if err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}
	artists.byID[artist.ID].IsVerified = true

	if _, err := svc.UpdateArtist(context.Background(), artist.ID, owner, &UpdateArtistRequest{Name: "Still Verified"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, _ := artists.GetByID(context.Background(), artist.ID)
	if !stored.IsVerified {
		t.Error("update must not reset verification flag")
	}
}

func TestListArtists_SpecialtyFilter(t *testing.T) {
	svc, _, _, _ := newTestService()

	bridal, err := svc.CreateArtist(context.Background(), uuid.New(), &CreateArtistRequest{
		Name: "Bridal Pro", State: "SP", City: "Sao Paulo",
		Specialties: []string{"bridal", "editorial"},
	})
	if err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}
	if _, err := svc.CreateArtist(context.Background(), uuid.New(), &CreateArtistRequest{
		Name: "SFX Only", State: "SP", City: "Sao Paulo",
		Specialties: []string{"sfx"},
	}); err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}

	specialty := "bridal"
	result, err := svc.ListArtists(context.Background(), &Filter{Specialty: &specialty})
	if err != nil {
		t.Fatalf("ListArtists failed: %v", err)
	}
	if len(result) != 1 || result[0].ID != bridal.ID {
		t.Errorf("expected only the bridal artist, got %d results", len(result))
	}
}

func TestGetArtistDetailBySlug(t *testing.T) {
	svc, _, _, details := newTestService()

	artist, err := svc.CreateArtist(context.Background(), uuid.New(), &CreateArtistRequest{
		Name: "Detail Artist", Slug: "detail-artist", State: "SP", City: "Sao Paulo",
	})
	if err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}

	ref := ArtistRef(artist.ID)
	details.services[ref] = []ServiceItem{{ID: uuid.New(), Name: "Bridal Makeup", Price: 60000}}
	details.portfolio[ref] = []PortfolioItem{{ID: uuid.New(), ImageURL: "https://img.example/1.jpg"}}

	got, services, portfolio, err := svc.GetArtistDetailBySlug(context.Background(), "detail-artist")
	if err != nil {
		t.Fatalf("GetArtistDetailBySlug failed: %v", err)
	}
	if got.ID != artist.ID {
		t.Error("wrong artist returned")
	}
	if len(services) != 1 || services[0].Name != "Bridal Makeup" {
		t.Errorf("expected nested service menu, got %v", services)
	}
	if len(portfolio) != 1 {
		t.Errorf("expected nested portfolio, got %v", portfolio)
	}

	if _, _, _, err := svc.GetArtistDetailBySlug(context.Background(), "missing"); !errors.Is(err, ErrArtistNotFound) {
		t.Errorf("expected ErrArtistNotFound for unknown slug, got %v", err)
	}
}

func TestResolveOwner(t *testing.T) {
	svc, _, _, _ := newTestService()
	artistOwner := uuid.New()
	studioOwner := uuid.New()

	artist, err := svc.CreateArtist(context.Background(), artistOwner, &CreateArtistRequest{
		Name: "Owned Artist", State: "SP", City: "Sao Paulo",
	})
	if err != nil {
		t.Fatalf("CreateArtist failed: %v", err)
	}
	studio, err := svc.CreateStudio(context.Background(), studioOwner, &CreateStudioRequest{
		Name: "Owned Studio", State: "RJ", City: "Rio",
	})
	if err != nil {
		t.Fatalf("CreateStudio failed: %v", err)
	}

	got, err := svc.ResolveOwner(context.Background(), ArtistRef(artist.ID))
	if err != nil || got != artistOwner {
		t.Errorf("expected artist owner %s, got %s (%v)", artistOwner, got, err)
	}
	got, err = svc.ResolveOwner(context.Background(), StudioRef(studio.ID))
	if err != nil || got != studioOwner {
		t.Errorf("expected studio owner %s, got %s (%v)", studioOwner, got, err)
	}

	if _, err := svc.ResolveOwner(context.Background(), ArtistRef(uuid.New())); !errors.Is(err, ErrArtistNotFound) {
		t.Errorf("expected ErrArtistNotFound, got %v", err)
	}
	if _, err := svc.ResolveOwner(context.Background(), StudioRef(uuid.New())); !errors.Is(err, ErrStudioNotFound) {
		t.Errorf("expected ErrStudioNotFound, got %v", err)
	}
}

func TestRefFromIDs(t *testing.T) {
	artistID := uuid.New()
	studioID := uuid.New()

	ref, ok := RefFromIDs(&artistID, nil)
	if !ok || ref.Kind != KindArtist || ref.ID != artistID {
		t.Errorf("expected artist ref, got %+v ok=%v", ref, ok)
	}
	ref, ok = RefFromIDs(nil, &studioID)
	if !ok || ref.Kind != KindStudio || ref.ID != studioID {
		t.Errorf("expected studio ref, got %+v ok=%v", ref, ok)
	}
	if _, ok := RefFromIDs(nil, nil); ok {
		t.Error("expected failure when neither id is set")
	}
	if _, ok := RefFromIDs(&artistID, &studioID); ok {
		t.Error("expected failure when both ids are set")
	}
}
