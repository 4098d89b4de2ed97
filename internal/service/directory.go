package service

import (
	"context"

	"greeter/internal/models"
)

type DirectoryService struct{}

func NewDirectoryService() *DirectoryService {
	return &DirectoryService{}
}

// ListUsers returns a fresh copy of the static user list on every call, so
// callers may modify the result freely.
func (s *DirectoryService) ListUsers(ctx context.Context) []models.User {
	return []models.User{
		{UserID: 1, Username: "parth"},
		{UserID: 2, Username: "ajit"},
	}
}
