package service

import (
	"context"
	"math/big"

	"greeter/internal/models"
)

// Greeter builds the plain text greetings served by the text routes.
type Greeter interface {
	Home(ctx context.Context) string
	HelloUser(ctx context.Context, username string) string
	HelloUserID(ctx context.Context, userID *big.Int) string
	FormGreeting(ctx context.Context, name string) string
}

// Directory exposes the read-only user list.
type Directory interface {
	ListUsers(ctx context.Context) []models.User
}

// Service aggregates all sub-services used by the HTTP layer.
type Service struct {
	Greeter
	Directory
}

func NewService() *Service {
	return &Service{
		Greeter:   NewGreeterService(nil),
		Directory: NewDirectoryService(),
	}
}
