package jsonfile

import (
	"context"

	"github.com/hbatra/quizforge/internal/repository"
)

type linkRepository struct {
	path string
}

// NewLinkRepository creates a LinkRepository backed by
// answer_links.json in the given data directory. The file only ever
// holds user-added links; built-in defaults stay in the question bank.
func NewLinkRepository(dataDir string) repository.LinkRepository {
	return &linkRepository{path: join(dataDir, LinksFile)}
}

func (r *linkRepository) Load(ctx context.Context) (map[string][]string, error) {
	links := make(map[string][]string)
	if err := readJSON(ctx, r.path, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *linkRepository) Save(ctx context.Context, links map[string][]string) error {
	if links == nil {
		links = make(map[string][]string)
	}
	return writeJSON(ctx, r.path, links, "  ")
}
