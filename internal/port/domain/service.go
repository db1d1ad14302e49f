package domain

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Port, error)
	List(ctx context.Context) ([]Port, error)
	Get(ctx context.Context, id int64) (*Port, error)
}

type CreateRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Region  string `json:"region"`
}
