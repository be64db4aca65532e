package handler

import (
	"context"
	"net/http"

	"spice-palace/internal/middleware"
	"spice-palace/internal/model"
	"spice-palace/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*model.Session, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) {
	m.Called(ctx, token)
}

func (m *MockAuthService) Resolve(token string) (*model.User, bool) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.User), args.Bool(1)
}

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Browse(ctx context.Context, query service.Query) ([]model.MenuItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockCatalogService) SetAvailability(ctx context.Context, id string, available bool) (*model.MenuItem, error) {
	args := m.Called(ctx, id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, username string) (model.CartSnapshot, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.CartSnapshot), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, username, foodID string) (model.CartSnapshot, error) {
	args := m.Called(ctx, username, foodID)
	return args.Get(0).(model.CartSnapshot), args.Error(1)
}

func (m *MockCartService) SetQuantity(ctx context.Context, username, foodID string, quantity int) (model.CartSnapshot, error) {
	args := m.Called(ctx, username, foodID, quantity)
	return args.Get(0).(model.CartSnapshot), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, username, foodID string) (model.CartSnapshot, error) {
	args := m.Called(ctx, username, foodID)
	return args.Get(0).(model.CartSnapshot), args.Error(1)
}

func (m *MockCartService) Lines(ctx context.Context, username string) []model.CartLine {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.CartLine)
}

func (m *MockCartService) Clear(ctx context.Context, username string) {
	m.Called(ctx, username)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, user *model.User) (*service.CheckoutResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutResult), args.Error(1)
}

func (m *MockOrderService) Advance(ctx context.Context, tableID string, next model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, tableID, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) PaymentQR(ctx context.Context, tableID string) ([]byte, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockReviewService is a mock implementation of ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Add(ctx context.Context, itemID, author string, rating int, comment string) error {
	args := m.Called(ctx, itemID, author, rating, comment)
	return args.Error(0)
}

func (m *MockReviewService) List(ctx context.Context, itemID string) ([]model.Review, model.RatingSummary, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.RatingSummary), args.Error(2)
	}
	return args.Get(0).([]model.Review), args.Get(1).(model.RatingSummary), args.Error(2)
}

func (m *MockReviewService) Summary(ctx context.Context, itemID string) (model.RatingSummary, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(model.RatingSummary), args.Error(1)
}

// MockTableService is a mock implementation of TableService.
type MockTableService struct {
	mock.Mock
}

func (m *MockTableService) List(ctx context.Context, status *model.TableStatus) ([]model.Table, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Table), args.Error(1)
}

func (m *MockTableService) Summary(ctx context.Context) (model.TableSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.TableSummary), args.Error(1)
}

// asUser attaches an authenticated user to the request the way the session
// middleware does.
func asUser(r *http.Request, user *model.User) *http.Request {
	return r.WithContext(middleware.WithUser(r.Context(), user))
}

func dinerAccount(tableNumber int) *model.User {
	return &model.User{
		ID:          "u2",
		Username:    "table1",
		Role:        model.RoleUser,
		TableNumber: tableNumber,
	}
}

func adminAccount() *model.User {
	return &model.User{ID: "u1", Username: "admin", Role: model.RoleAdmin}
}
