package service

import (
	"context"
	"net/http"
	"testing"
)

func newCustomerFixtures() (*CustomerService, *fakeCustomerRepo) {
	customers := newFakeCustomerRepo()
	return NewCustomerService(customers), customers
}

func TestCustomerCreateOwnedByCaller(t *testing.T) {
	svc, _ := newCustomerFixtures()

	customer, err := svc.Create(context.Background(), asUser("u1"), CustomerInput{Name: "Acme", Email: "ops@acme.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if customer.UserID != "u1" {
		t.Fatalf("ownership not set to caller: %s", customer.UserID)
	}
	if customer.ID == "" {
		t.Fatal("id not assigned")
	}
}

func TestCustomerListOwnScopedToCaller(t *testing.T) {
	svc, _ := newCustomerFixtures()
	_, _ = svc.Create(context.Background(), asUser("u1"), CustomerInput{Name: "Mine", Email: "a@x.com"})
	_, _ = svc.Create(context.Background(), asUser("u2"), CustomerInput{Name: "Theirs", Email: "b@x.com"})

	customers, err := svc.ListOwn(context.Background(), asUser("u1"))
	if err != nil {
		t.Fatalf("ListOwn: %v", err)
	}
	if len(customers) != 1 || customers[0].Name != "Mine" {
		t.Fatalf("expected only caller's customers, got %+v", customers)
	}
}

// Missing ids report 404 before the ownership check runs, so a denied caller
// cannot distinguish absent records from foreign ones by probing.
func TestCustomerUpdateNotFoundBeforeForbidden(t *testing.T) {
	svc, _ := newCustomerFixtures()

	_, err := svc.Update(context.Background(), asUser("u1"), "ghost", CustomerInput{Name: "X", Email: "x@x.com"})
	assertStatus(t, err, http.StatusNotFound)
}

func TestCustomerUpdateForbiddenForNonOwner(t *testing.T) {
	svc, _ := newCustomerFixtures()
	owned, _ := svc.Create(context.Background(), asUser("u1"), CustomerInput{Name: "Acme", Email: "a@x.com"})

	_, err := svc.Update(context.Background(), asUser("u2"), owned.ID, CustomerInput{Name: "Hijack", Email: "h@x.com"})
	assertStatus(t, err, http.StatusForbidden)
}

func TestCustomerUpdateByOwnerAndAdmin(t *testing.T) {
	svc, repo := newCustomerFixtures()
	owned, _ := svc.Create(context.Background(), asUser("u1"), CustomerInput{Name: "Acme", Email: "a@x.com"})

	updated, err := svc.Update(context.Background(), asUser("u1"), owned.ID, CustomerInput{Name: "Acme v2", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Acme v2" {
		t.Fatalf("update not applied: %s", updated.Name)
	}

	if _, err := svc.Update(context.Background(), asAdmin("root"), owned.ID, CustomerInput{Name: "Acme v3", Email: "a@x.com"}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	stored, _ := repo.GetByID(context.Background(), owned.ID)
	if stored.Name != "Acme v3" {
		t.Fatalf("admin update not persisted: %s", stored.Name)
	}
}

func TestCustomerDelete(t *testing.T) {
	svc, repo := newCustomerFixtures()
	owned, _ := svc.Create(context.Background(), asUser("u1"), CustomerInput{Name: "Acme", Email: "a@x.com"})

	err := svc.Delete(context.Background(), asUser("u2"), owned.ID)
	assertStatus(t, err, http.StatusForbidden)

	if err := svc.Delete(context.Background(), asUser("u1"), owned.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), owned.ID); err == nil {
		t.Fatal("customer still present after delete")
	}

	err = svc.Delete(context.Background(), asUser("u1"), owned.ID)
	assertStatus(t, err, http.StatusNotFound)
}
