package contracts

import (
	"context"
	"newconsult-service/internal/pkg/dto/requests"
	"newconsult-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.Register) (*responses.Auth, error)
	LoginUser(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	LogoutUser(ctx context.Context, request *requests.Logout) error
}
