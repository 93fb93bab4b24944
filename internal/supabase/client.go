package supabase

import (
	"github.com/supabase-community/supabase-go"
	"portfolio-backend/internal/config"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

// NewClient connects with the store key so PostgREST writes are not subject
// to the visitor-facing row level security policies.
func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.StoreKey(), nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}
