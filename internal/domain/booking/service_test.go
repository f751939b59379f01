package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/glowbook/glowbook-api/internal/domain/catalog"
	"github.com/glowbook/glowbook-api/internal/domain/provider"
)

type fakeRepo struct {
	byID map[uuid.UUID]*Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uuid.UUID]*Booking)}
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	cp := *b
	f.byID[b.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	if b, ok := f.byID[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status) error {
	b, ok := f.byID[id]
	if !ok {
		return errors.New("not found")
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) ListByClient(_ context.Context, clientID uuid.UUID) ([]*ClientListItem, error) {
	result := []*ClientListItem{}
	for _, b := range f.byID {
		if b.ClientID == clientID {
			result = append(result, &ClientListItem{Booking: *b})
		}
	}
	return result, nil
}

func (f *fakeRepo) ListByProvider(_ context.Context, ref provider.Ref) ([]*ProviderListItem, error) {
	result := []*ProviderListItem{}
	for _, b := range f.byID {
		if r, ok := b.ProviderRef(); ok && r == ref {
			result = append(result, &ProviderListItem{Booking: *b})
		}
	}
	return result, nil
}

type fakeProviders struct {
	owners  map[provider.Ref]uuid.UUID
	artists map[uuid.UUID]*provider.Artist
	studios map[uuid.UUID]*provider.Studio
}

func newFakeProviders() *fakeProviders {
	return &fakeProviders{
		owners:  make(map[provider.Ref]uuid.UUID),
		artists: make(map[uuid.UUID]*provider.Artist),
		studios: make(map[uuid.UUID]*provider.Studio),
	}
}

func (f *fakeProviders) addArtist(userID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.owners[provider.ArtistRef(id)] = userID
	f.artists[userID] = &provider.Artist{ID: id, UserID: userID}
	return id
}

func (f *fakeProviders) addStudio(userID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.owners[provider.StudioRef(id)] = userID
	f.studios[userID] = &provider.Studio{ID: id, UserID: userID}
	return id
}

func (f *fakeProviders) ResolveOwner(_ context.Context, ref provider.Ref) (uuid.UUID, error) {
	if owner, ok := f.owners[ref]; ok {
		return owner, nil
	}
	if ref.Kind == provider.KindStudio {
		return uuid.Nil, provider.ErrStudioNotFound
	}
	return uuid.Nil, provider.ErrArtistNotFound
}

func (f *fakeProviders) GetMyArtist(_ context.Context, userID uuid.UUID) (*provider.Artist, error) {
	if a, ok := f.artists[userID]; ok {
		return a, nil
	}
	return nil, provider.ErrArtistNotFound
}

func (f *fakeProviders) GetMyStudio(_ context.Context, userID uuid.UUID) (*provider.Studio, error) {
	if s, ok := f.studios[userID]; ok {
		return s, nil
	}
	return nil, provider.ErrStudioNotFound
}

type fakeCatalog struct {
	byID map[uuid.UUID]*catalog.Service
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{byID: make(map[uuid.UUID]*catalog.Service)}
}

func (f *fakeCatalog) addService(ref provider.Ref) uuid.UUID {
	id := uuid.New()
	svc := &catalog.Service{ID: id}
	refID := ref.ID
	if ref.Kind == provider.KindStudio {
		svc.StudioID = &refID
	} else {
		svc.ArtistID = &refID
	}
	f.byID[id] = svc
	return id
}

func (f *fakeCatalog) GetService(_ context.Context, id uuid.UUID) (*catalog.Service, error) {
	if svc, ok := f.byID[id]; ok {
		return svc, nil
	}
	return nil, catalog.ErrServiceNotFound
}

func newTestService() (*Service, *fakeRepo, *fakeProviders, *fakeCatalog) {
	repo := newFakeRepo()
	providers := newFakeProviders()
	services := newFakeCatalog()
	return NewService(repo, providers, services), repo, providers, services
}

func validRequest(artistID uuid.UUID) *CreateBookingRequest {
	return &CreateBookingRequest{
		ArtistID:    &artistID,
		BookingDate: "2025-06-01",
		BookingTime: "14:00",
	}
}

func TestCreate_AlwaysStartsPending(t *testing.T) {
	svc, _, providers, _ := newTestService()
	artistID := providers.addArtist(uuid.New())
	clientID := uuid.New()

	b, err := svc.Create(context.Background(), clientID, validRequest(artistID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if b.Status != StatusPending {
		t.Errorf("expected pending, got %s", b.Status)
	}
	if b.ClientID != clientID {
		t.Error("client must be the authenticated caller")
	}
	if b.BookingDate.Format("2006-01-02") != "2025-06-01" || b.BookingTime != "14:00" {
		t.Errorf("date/time not preserved: %s %s", b.BookingDate, b.BookingTime)
	}
}

func TestCreate_RequiresExactlyOneProvider(t *testing.T) {
	svc, _, providers, _ := newTestService()
	artistID := providers.addArtist(uuid.New())
	studioID := providers.addStudio(uuid.New())

	req := validRequest(artistID)
	req.ArtistID = nil
	if _, err := svc.Create(context.Background(), uuid.New(), req); !errors.Is(err, ErrProviderRequired) {
		t.Errorf("expected ErrProviderRequired with neither id, got %v", err)
	}

	req = validRequest(artistID)
	req.StudioID = &studioID
	if _, err := svc.Create(context.Background(), uuid.New(), req); !errors.Is(err, ErrProviderRequired) {
		t.Errorf("expected ErrProviderRequired with both ids, got %v", err)
	}
}

func TestCreate_DanglingProvider(t *testing.T) {
	svc, _, _, _ := newTestService()

	missing := uuid.New()
	if _, err := svc.Create(context.Background(), uuid.New(), validRequest(missing)); !errors.Is(err, ErrProviderNotFound) {
		t.Errorf("expected ErrProviderNotFound, got %v", err)
	}
}

func TestCreate_ServiceMustBelongToProvider(t *testing.T) {
	svc, _, providers, services := newTestService()
	artistID := providers.addArtist(uuid.New())
	otherArtistID := providers.addArtist(uuid.New())

	ownSvc := services.addService(provider.ArtistRef(artistID))
	foreignSvc := services.addService(provider.ArtistRef(otherArtistID))

	req := validRequest(artistID)
	req.ServiceID = &ownSvc
	if _, err := svc.Create(context.Background(), uuid.New(), req); err != nil {
		t.Fatalf("own service must be accepted: %v", err)
	}

	req = validRequest(artistID)
	req.ServiceID = &foreignSvc
	if _, err := svc.Create(context.Background(), uuid.New(), req); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("expected ErrServiceNotFound for another provider's service, got %v", err)
	}

	missing := uuid.New()
	req = validRequest(artistID)
	req.ServiceID = &missing
	if _, err := svc.Create(context.Background(), uuid.New(), req); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("expected ErrServiceNotFound for unknown service, got %v", err)
	}
}

func TestCreate_DoubleBookingAllowed(t *testing.T) {
	svc, repo, providers, _ := newTestService()
	artistID := providers.addArtist(uuid.New())

	if _, err := svc.Create(context.Background(), uuid.New(), validRequest(artistID)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), uuid.New(), validRequest(artistID)); err != nil {
		t.Fatalf("second booking for same slot failed: %v", err)
	}
	if len(repo.byID) != 2 {
		t.Errorf("expected 2 bookings, got %d", len(repo.byID))
	}
}

func TestTransition_OnlyProviderOwner(t *testing.T) {
	svc, _, providers, _ := newTestService()
	ownerID := uuid.New()
	artistID := providers.addArtist(ownerID)
	clientID := uuid.New()

	b, err := svc.Create(context.Background(), clientID, validRequest(artistID))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// the client cannot confirm their own request
	if _, err := svc.Transition(context.Background(), clientID, b.ID, StatusConfirmed); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for client, got %v", err)
	}
	// neither can an unrelated user
	if _, err := svc.Transition(context.Background(), uuid.New(), b.ID, StatusConfirmed); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for third party, got %v", err)
	}

	updated, err := svc.Transition(context.Background(), ownerID, b.ID, StatusConfirmed)
	if err != nil {
		t.Fatalf("owner transition failed: %v", err)
	}
	if updated.Status != StatusConfirmed {
		t.Errorf("expected confirmed, got %s", updated.Status)
	}
}

func TestTransition_UnknownBooking(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.Transition(context.Background(), uuid.New(), uuid.New(), StatusConfirmed); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTransition_LifecycleTable(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusDeclined, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusDeclined, false},
		{StatusConfirmed, StatusPending, false},
		{StatusDeclined, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	cases := map[Status]bool{
		StatusPending:   false,
		StatusConfirmed: false,
		StatusDeclined:  true,
		StatusCompleted: true,
		StatusCancelled: true,
	}

	for status, want := range cases {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s: expected IsTerminal %v, got %v", status, want, got)
		}
	}
}

func TestTransition_TerminalStatesRejectChanges(t *testing.T) {
	svc, repo, providers, _ := newTestService()
	ownerID := uuid.New()
	artistID := providers.addArtist(ownerID)

	for _, terminal := range []Status{StatusDeclined, StatusCompleted, StatusCancelled} {
		if !terminal.IsTerminal() {
			t.Fatalf("%s should be terminal", terminal)
		}
		b, err := svc.Create(context.Background(), uuid.New(), validRequest(artistID))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		repo.byID[b.ID].Status = terminal

		if _, err := svc.Transition(context.Background(), ownerID, b.ID, StatusConfirmed); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s: expected ErrInvalidTransition, got %v", terminal, err)
		}
		if repo.byID[b.ID].Status != terminal {
			t.Errorf("%s: status must not change on rejected transition", terminal)
		}
	}
}

func TestListForProvider_ScopedToOwnProfile(t *testing.T) {
	svc, _, providers, _ := newTestService()
	ownerID := uuid.New()
	artistID := providers.addArtist(ownerID)
	clientID := uuid.New()

	if _, err := svc.Create(context.Background(), clientID, validRequest(artistID)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	items, err := svc.ListForProvider(context.Background(), ownerID, provider.KindArtist)
	if err != nil {
		t.Fatalf("ListForProvider failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 booking for the artist, got %d", len(items))
	}
}

func TestListForProvider_EmptyWithoutProfile(t *testing.T) {
	svc, _, providers, _ := newTestService()
	ownerID := uuid.New()
	artistID := providers.addArtist(ownerID)
	clientID := uuid.New()

	if _, err := svc.Create(context.Background(), clientID, validRequest(artistID)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// the client has no artist profile: not an error, just nothing to show
	items, err := svc.ListForProvider(context.Background(), clientID, provider.KindArtist)
	if err != nil {
		t.Fatalf("ListForProvider failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list without an artist profile, got %d rows", len(items))
	}

	// the artist owner has no studio profile either
	items, err = svc.ListForProvider(context.Background(), ownerID, provider.KindStudio)
	if err != nil {
		t.Fatalf("ListForProvider failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty list without a studio profile, got %d rows", len(items))
	}
}

func TestListForClient_ScopedToCaller(t *testing.T) {
	svc, _, providers, _ := newTestService()
	artistID := providers.addArtist(uuid.New())
	clientA := uuid.New()
	clientB := uuid.New()

	if _, err := svc.Create(context.Background(), clientA, validRequest(artistID)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), clientB, validRequest(artistID)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	items, err := svc.ListForClient(context.Background(), clientA)
	if err != nil {
		t.Fatalf("ListForClient failed: %v", err)
	}
	if len(items) != 1 || items[0].ClientID != clientA {
		t.Errorf("expected only client A's booking, got %d rows", len(items))
	}
}
