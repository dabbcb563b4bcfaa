package service

import (
	"net/http"

	"toncenter-client/internal/conf"
	"toncenter-client/toncenter"
	v2 "toncenter-client/toncenter/v2"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewAPIClient, wire.Bind(new(v2.API), new(*v2.Client)), NewQueryService)

// NewAPIClient builds the v2 client described by the toncenter config section.
func NewAPIClient(c *conf.Toncenter, logger *zap.Logger) (*v2.Client, error) {
	timeout, err := c.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	opts := []toncenter.Option{
		toncenter.WithHTTPClient(&http.Client{Timeout: timeout}),
		toncenter.WithLogger(logger),
	}
	if key := c.Key(); key != nil {
		opts = append(opts, toncenter.WithAPIKey(*key))
	}
	return v2.New(toncenter.NewClientWithURL(c.Endpoint(), opts...)), nil
}
