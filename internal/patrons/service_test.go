package patrons

import (
	"context"
	"errors"
	"testing"

	"saunie/internal/shared/apperrors"

	"github.com/google/uuid"
)

type fakeRepository struct {
	patrons map[uuid.UUID]*Patron
}

func newFakeRepository(patrons ...*Patron) *fakeRepository {
	r := &fakeRepository{patrons: map[uuid.UUID]*Patron{}}
	for _, p := range patrons {
		r.patrons[p.ID] = p
	}
	return r
}

func (r *fakeRepository) Create(_ context.Context, patron *Patron) error {
	if patron.ID == uuid.Nil {
		patron.ID = uuid.New()
	}
	copied := *patron
	r.patrons[patron.ID] = &copied
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Patron, error) {
	p, ok := r.patrons[id]
	if !ok {
		return nil, apperrors.ErrPatronNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepository) Update(_ context.Context, patron *Patron) error {
	copied := *patron
	r.patrons[patron.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.patrons[id]; !ok {
		return apperrors.ErrPatronNotFound
	}
	delete(r.patrons, id)
	return nil
}

func (r *fakeRepository) List(_ context.Context, query PatronListQuery) ([]Patron, int64, error) {
	var all []Patron
	for _, p := range r.patrons {
		all = append(all, *p)
	}
	start := (query.Page - 1) * query.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + query.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

type fakeCounter map[uuid.UUID]int64

func (f fakeCounter) CountPatronBookings(_ context.Context, id uuid.UUID) (int64, error) {
	return f[id], nil
}

func storedPatron() *Patron {
	return &Patron{ID: uuid.New(), Name: "Ana Costa", Phone: "+351 912 000 111"}
}

func TestCreatePatron(t *testing.T) {
	repo := newFakeRepository()
	patron, err := NewService(repo).CreatePatron(context.Background(), CreatePatronRequest{
		Name:  "Rui Lopes",
		Phone: "+351 913 222 333",
		Email: "rui@example.com",
		EmergencyContact: EmergencyContact{
			Name:         "Marta Lopes",
			Relationship: "sister",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if patron.ID == uuid.Nil || repo.patrons[patron.ID] == nil {
		t.Fatal("patron not stored")
	}
	if repo.patrons[patron.ID].EmergencyContact.Name != "Marta Lopes" {
		t.Error("emergency contact not stored")
	}
}

func TestCreatePatronValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreatePatronRequest
	}{
		{"missing name", CreatePatronRequest{Phone: "123"}},
		{"missing phone", CreatePatronRequest{Name: "Ana"}},
		{"bad email", CreatePatronRequest{Name: "Ana", Phone: "123", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			_, err := NewService(repo).CreatePatron(context.Background(), tt.req)
			if !apperrors.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.patrons) != 0 {
				t.Error("rejected patron must not be stored")
			}
		})
	}
}

func TestUpdatePatronPartial(t *testing.T) {
	patron := storedPatron()
	repo := newFakeRepository(patron)

	address := "Rua Augusta 10, Lisboa"
	updated, err := NewService(repo).UpdatePatron(context.Background(), patron.ID, UpdatePatronRequest{Address: &address})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Address != address || updated.Name != patron.Name {
		t.Errorf("updated = %+v", updated)
	}
}

func TestDeletePatronWithBookingsIsRefused(t *testing.T) {
	patron := storedPatron()
	repo := newFakeRepository(patron)
	svc := NewService(repo)
	svc.SetBookingCounter(fakeCounter{patron.ID: 2})

	err := svc.DeletePatron(context.Background(), patron.ID)
	if !errors.Is(err, apperrors.ErrPatronHasBookings) || !apperrors.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if repo.patrons[patron.ID] == nil {
		t.Error("patron with bookings must survive")
	}
}

func TestDeletePatron(t *testing.T) {
	patron := storedPatron()
	svc := NewService(newFakeRepository(patron))
	svc.SetBookingCounter(fakeCounter{})

	if err := svc.DeletePatron(context.Background(), patron.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetPatron(context.Background(), patron.ID); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestListPatronsNormalizesQuery(t *testing.T) {
	svc := NewService(newFakeRepository(storedPatron(), storedPatron(), storedPatron()))

	page, err := svc.ListPatrons(context.Background(), PatronListQuery{Page: -1, Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if page.Page != 1 || page.Total != 3 || page.TotalPages != 2 || len(page.Patrons) != 2 {
		t.Errorf("page = %+v", page)
	}

	empty, err := NewService(newFakeRepository()).ListPatrons(context.Background(), PatronListQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if empty.Patrons == nil || empty.Limit != defaultPageSize {
		t.Errorf("empty page = %+v", empty)
	}
}
