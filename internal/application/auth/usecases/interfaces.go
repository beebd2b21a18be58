package usecases

import "context"

type AdminLoginExecutor interface {
	Execute(ctx context.Context, cmd AdminLoginCommand) (*AdminLoginResult, error)
}
