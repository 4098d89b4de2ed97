package handlers

import (
	"context"
	"math/big"

	"greeter/internal/models"
	"greeter/internal/service"
	"greeter/internal/views"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockGreeter struct {
	lastUser   string
	lastUserID *big.Int
	lastForm   string
	calls      int
}

func (m *mockGreeter) Home(ctx context.Context) string {
	m.calls++
	return "home"
}
func (m *mockGreeter) HelloUser(ctx context.Context, username string) string {
	m.calls++
	m.lastUser = username
	return "user:" + username
}
func (m *mockGreeter) HelloUserID(ctx context.Context, userID *big.Int) string {
	m.calls++
	m.lastUserID = userID
	return "id:" + userID.String()
}
func (m *mockGreeter) FormGreeting(ctx context.Context, name string) string {
	m.calls++
	m.lastForm = name
	return "form:" + name
}

type mockDirectory struct {
	users []models.User
	calls int
}

func (m *mockDirectory) ListUsers(ctx context.Context) []models.User {
	m.calls++
	return m.users
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWithOptions(s, Options{})
}

func newTestRouterWithOptions(s *service.Service, opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	renderer, err := views.NewRenderer(false)
	if err != nil {
		panic(err)
	}
	h := NewHandler(s, renderer, nil, opts)
	return h.InitRoutes()
}
