package domain

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*ContainerType, error)
	List(ctx context.Context) ([]ContainerType, error)
	Get(ctx context.Context, id int64) (*ContainerType, error)
}

type CreateRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Size        string  `json:"size"`
	Description *string `json:"description"`
}
