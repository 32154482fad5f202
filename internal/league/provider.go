// Package league supplies fully loaded leagues to the evaluation core.
// A provider hands the core a consistent, read-only League; there is no
// partial or lazy loading.
package league

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/fantasygrid/trade-api/internal/models"
)

// Provider supplies the current league.
type Provider interface {
	League(ctx context.Context) (*models.League, error)
}

// FileProvider loads a league document from a JSON file once and serves
// the same immutable value afterwards.
type FileProvider struct {
	path string

	once   sync.Once
	league *models.League
	err    error
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) League(_ context.Context) (*models.League, error) {
	p.once.Do(func() {
		data, err := os.ReadFile(p.path)
		if err != nil {
			p.err = fmt.Errorf("read league file %q: %w", p.path, err)
			return
		}

		var l models.League
		if err := json.Unmarshal(data, &l); err != nil {
			p.err = fmt.Errorf("parse league file %q: %w", p.path, err)
			return
		}
		if len(l.Teams) == 0 {
			p.err = fmt.Errorf("league file %q contains no teams", p.path)
			return
		}
		p.league = &l
	})
	return p.league, p.err
}
