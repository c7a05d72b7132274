package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/repository"
)

// In-memory repository fakes backing the service tests. They mirror the
// Postgres implementations' contract: pgx.ErrNoRows for missing rows,
// generated ids and timestamps on create.

type fakeUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) add(user domain.User) *domain.User {
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	stored := user
	r.users[stored.ID] = &stored
	return &stored
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate key value violates unique constraint")
		}
	}
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	stored.UpdatedAt = time.Now()
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]domain.User, error) {
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	users := make([]domain.User, 0)
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(users) >= limit {
			break
		}
		users = append(users, *r.users[id])
	}
	return users, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeSubscriptionRepo struct {
	subs map[string]*domain.Subscription // keyed by user id
	seq  int
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[string]*domain.Subscription)}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *domain.Subscription) error {
	if _, ok := r.subs[sub.UserID]; ok {
		return fmt.Errorf("duplicate key value violates unique constraint")
	}
	r.seq++
	sub.ID = fmt.Sprintf("sub-%d", r.seq)
	sub.StartDate = time.Now()
	sub.CreatedAt = sub.StartDate
	sub.UpdatedAt = sub.StartDate
	stored := *sub
	r.subs[sub.UserID] = &stored
	return nil
}

func (r *fakeSubscriptionRepo) Update(_ context.Context, sub *domain.Subscription) error {
	if _, ok := r.subs[sub.UserID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *sub
	stored.UpdatedAt = time.Now()
	r.subs[sub.UserID] = &stored
	return nil
}

func (r *fakeSubscriptionRepo) GetByUserID(_ context.Context, userID string) (*domain.Subscription, error) {
	sub, ok := r.subs[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *sub
	return &copied, nil
}

func (r *fakeSubscriptionRepo) List(_ context.Context, limit, offset int) ([]domain.SubscriptionWithOwner, error) {
	userIDs := make([]string, 0, len(r.subs))
	for id := range r.subs {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	subs := make([]domain.SubscriptionWithOwner, 0)
	for i, userID := range userIDs {
		if i < offset {
			continue
		}
		if len(subs) >= limit {
			break
		}
		subs = append(subs, domain.SubscriptionWithOwner{
			Subscription: *r.subs[userID],
			User:         domain.SubscriptionOwner{ID: userID},
		})
	}
	return subs, nil
}

func (r *fakeSubscriptionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.subs)), nil
}

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
	seq       int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	r.seq++
	customer.ID = fmt.Sprintf("cust-%d", r.seq)
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	stored := *customer
	r.customers[customer.ID] = &stored
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *customer
	r.customers[customer.ID] = &stored
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *customer
	return &copied, nil
}

func (r *fakeCustomerRepo) ListByUser(_ context.Context, userID string) ([]domain.Customer, error) {
	ids := make([]string, 0, len(r.customers))
	for id := range r.customers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	customers := make([]domain.Customer, 0)
	for _, id := range ids {
		if r.customers[id].UserID == userID {
			customers = append(customers, *r.customers[id])
		}
	}
	return customers, nil
}

type fakeTicketRepo struct {
	tickets map[string]*domain.SupportTicket
	seq     int
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*domain.SupportTicket)}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.SupportTicket) error {
	r.seq++
	ticket.ID = fmt.Sprintf("ticket-%d", r.seq)
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	stored := *ticket
	r.tickets[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.SupportTicket) error {
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *ticket
	r.tickets[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tickets[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.tickets, id)
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.SupportTicket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (r *fakeTicketRepo) List(_ context.Context, userID *string, limit, offset int) ([]domain.SupportTicket, error) {
	ids := make([]string, 0, len(r.tickets))
	for id := range r.tickets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	matched := 0
	tickets := make([]domain.SupportTicket, 0)
	for _, id := range ids {
		ticket := r.tickets[id]
		if userID != nil && ticket.UserID != *userID {
			continue
		}
		matched++
		if matched <= offset {
			continue
		}
		if len(tickets) >= limit {
			break
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, nil
}

func (r *fakeTicketRepo) Count(_ context.Context, userID *string) (int64, error) {
	var total int64
	for _, ticket := range r.tickets {
		if userID == nil || ticket.UserID == *userID {
			total++
		}
	}
	return total, nil
}

type fakeResetRepo struct {
	tokens map[string]*repository.PasswordResetToken // keyed by token string
	seq    int
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[string]*repository.PasswordResetToken)}
}

func (r *fakeResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	r.seq++
	token.ID = fmt.Sprintf("reset-%d", r.seq)
	token.CreatedAt = time.Now()
	stored := *token
	r.tokens[token.Token] = &stored
	return nil
}

func (r *fakeResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := r.tokens[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *token
	return &copied, nil
}

func (r *fakeResetRepo) MarkUsed(_ context.Context, id string) error {
	for _, token := range r.tokens {
		if token.ID == id {
			now := time.Now()
			token.UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeFAQRepo struct {
	faqs map[string]*domain.FAQ
	seq  int
}

func newFakeFAQRepo() *fakeFAQRepo {
	return &fakeFAQRepo{faqs: make(map[string]*domain.FAQ)}
}

func (r *fakeFAQRepo) Create(_ context.Context, faq *domain.FAQ) error {
	r.seq++
	faq.ID = fmt.Sprintf("faq-%d", r.seq)
	faq.CreatedAt = time.Now()
	faq.UpdatedAt = faq.CreatedAt
	stored := *faq
	r.faqs[faq.ID] = &stored
	return nil
}

func (r *fakeFAQRepo) Update(_ context.Context, faq *domain.FAQ) error {
	if _, ok := r.faqs[faq.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *faq
	r.faqs[faq.ID] = &stored
	return nil
}

func (r *fakeFAQRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.faqs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.faqs, id)
	return nil
}

func (r *fakeFAQRepo) GetByID(_ context.Context, id string) (*domain.FAQ, error) {
	faq, ok := r.faqs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *faq
	return &copied, nil
}

func (r *fakeFAQRepo) List(_ context.Context, category *string, limit, offset int) ([]domain.FAQ, error) {
	ids := make([]string, 0, len(r.faqs))
	for id := range r.faqs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	matched := 0
	faqs := make([]domain.FAQ, 0)
	for _, id := range ids {
		faq := r.faqs[id]
		if category != nil && faq.Category != *category {
			continue
		}
		matched++
		if matched <= offset {
			continue
		}
		if len(faqs) >= limit {
			break
		}
		faqs = append(faqs, *faq)
	}
	return faqs, nil
}

func (r *fakeFAQRepo) Count(_ context.Context, category *string) (int64, error) {
	var total int64
	for _, faq := range r.faqs {
		if category == nil || faq.Category == *category {
			total++
		}
	}
	return total, nil
}
