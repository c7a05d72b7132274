package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/spec-kit/saas-platform/internal/domain"
)

func newSubscriptionFixtures() (*SubscriptionService, *fakeSubscriptionRepo) {
	subs := newFakeSubscriptionRepo()
	return NewSubscriptionService(subs), subs
}

func TestSubscriptionGetOwn(t *testing.T) {
	svc, subs := newSubscriptionFixtures()
	_ = subs.Create(context.Background(), &domain.Subscription{UserID: "u1", Plan: domain.PlanFree, Status: domain.SubscriptionActive})

	sub, err := svc.GetOwn(context.Background(), asUser("u1"))
	if err != nil {
		t.Fatalf("GetOwn: %v", err)
	}
	if sub.UserID != "u1" || sub.Plan != domain.PlanFree {
		t.Fatalf("wrong subscription: %+v", sub)
	}

	_, err = svc.GetOwn(context.Background(), asUser("u2"))
	assertStatus(t, err, http.StatusNotFound)
}

func TestSubscriptionUpdateDefaultsToCaller(t *testing.T) {
	svc, subs := newSubscriptionFixtures()
	_ = subs.Create(context.Background(), &domain.Subscription{UserID: "u1", Plan: domain.PlanFree, Status: domain.SubscriptionActive})

	sub, err := svc.Update(context.Background(), asUser("u1"), "", SubscriptionUpdateInput{Plan: domain.PlanStarter})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if sub.Plan != domain.PlanStarter {
		t.Fatalf("plan not applied: %s", sub.Plan)
	}
}

func TestSubscriptionUpdateForeignTargetForbidden(t *testing.T) {
	svc, subs := newSubscriptionFixtures()
	_ = subs.Create(context.Background(), &domain.Subscription{UserID: "u2", Plan: domain.PlanFree, Status: domain.SubscriptionActive})

	_, err := svc.Update(context.Background(), asUser("u1"), "u2", SubscriptionUpdateInput{Plan: domain.PlanEnterprise})
	assertStatus(t, err, http.StatusForbidden)

	// Admin may target any user and set lifecycle fields.
	cancelled := domain.SubscriptionCancelled
	end := time.Now().Add(24 * time.Hour)
	sub, err := svc.Update(context.Background(), asAdmin("root"), "u2", SubscriptionUpdateInput{
		Plan:    domain.PlanEnterprise,
		Status:  &cancelled,
		EndDate: &end,
	})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if sub.Plan != domain.PlanEnterprise || sub.Status != domain.SubscriptionCancelled || sub.EndDate == nil {
		t.Fatalf("admin update not applied: %+v", sub)
	}
}

func TestSubscriptionUpdateMissingRow(t *testing.T) {
	svc, _ := newSubscriptionFixtures()

	_, err := svc.Update(context.Background(), asUser("u1"), "", SubscriptionUpdateInput{Plan: domain.PlanStarter})
	assertStatus(t, err, http.StatusNotFound)
}

func TestSubscriptionListAdminOnly(t *testing.T) {
	svc, subs := newSubscriptionFixtures()
	_ = subs.Create(context.Background(), &domain.Subscription{UserID: "u1", Plan: domain.PlanFree, Status: domain.SubscriptionActive})
	_ = subs.Create(context.Background(), &domain.Subscription{UserID: "u2", Plan: domain.PlanStarter, Status: domain.SubscriptionActive})

	_, _, err := svc.List(context.Background(), asUser("u1"), 10, 0)
	assertStatus(t, err, http.StatusForbidden)

	listed, total, err := svc.List(context.Background(), asAdmin("root"), 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(listed) != 2 {
		t.Fatalf("expected 2 subscriptions, got total=%d len=%d", total, len(listed))
	}
}
