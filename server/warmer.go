package server

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// NewWarmer returns a scheduler recomputing the dashboard of s on a cron spec
// ("0 6 * * *" for every day at 6:00). The scheduler is not started.
func NewWarmer(s *Server, spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := s.Warm(context.Background()); err != nil {
			log.Printf("dashboard warm-up failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid warm schedule %q: %w", spec, err)
	}
	log.Printf("dashboard warm-up scheduled on %q", spec)
	return c, nil
}
