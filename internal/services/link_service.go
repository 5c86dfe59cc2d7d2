package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbatra/quizforge/internal/errors"
	"github.com/hbatra/quizforge/internal/logger"
	"github.com/hbatra/quizforge/internal/quizbank"
	"github.com/hbatra/quizforge/internal/repository"
)

// LinkService manages reference links for questions. The merged view
// always lists built-in defaults first; only user-added links can be
// deleted.
type LinkService interface {
	MCQLinks(ctx context.Context, index int) ([]string, error)
	FillLinks(ctx context.Context, index int) ([]string, error)
	UserMCQLinks(ctx context.Context, index int) ([]string, error)
	AddMCQLink(ctx context.Context, index int, link string) error
	AddFillLink(ctx context.Context, index int, link string) error
	// DeleteMCQLinkByPosition removes a user-added link by its 1-based
	// position in the user link list and returns the removed link.
	DeleteMCQLinkByPosition(ctx context.Context, index, position int) (string, error)
	DeleteMCQLinkByText(ctx context.Context, index int, link string) (string, error)
}

type linkService struct {
	repo repository.LinkRepository
}

// NewLinkService creates a new LinkService
func NewLinkService(repo repository.LinkRepository) LinkService {
	return &linkService{repo: repo}
}

func mcqKey(index int) string {
	return fmt.Sprintf("MCQ-%d", index)
}

func fillKey(index int) string {
	return fmt.Sprintf("FILL-%d", index)
}

// merged prepends defaults to the user links, dropping duplicates.
func merged(defaults, user []string) []string {
	out := make([]string, 0, len(defaults)+len(user))
	out = append(out, defaults...)
	for _, link := range user {
		dup := false
		for _, have := range out {
			if have == link {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, link)
		}
	}
	return out
}

func (s *linkService) MCQLinks(ctx context.Context, index int) ([]string, error) {
	links, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return merged(quizbank.DefaultMCQLinks(index), links[mcqKey(index)]), nil
}

func (s *linkService) FillLinks(ctx context.Context, index int) ([]string, error) {
	links, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return merged(quizbank.DefaultFillLinks(index), links[fillKey(index)]), nil
}

func (s *linkService) UserMCQLinks(ctx context.Context, index int) ([]string, error) {
	links, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return links[mcqKey(index)], nil
}

func (s *linkService) AddMCQLink(ctx context.Context, index int, link string) error {
	return s.add(ctx, mcqKey(index), link)
}

func (s *linkService) AddFillLink(ctx context.Context, index int, link string) error {
	return s.add(ctx, fillKey(index), link)
}

func (s *linkService) add(ctx context.Context, key, link string) error {
	log := logger.FromContext(ctx)

	link = strings.TrimSpace(link)
	if link == "" {
		return errors.NewValidationError("link", "cannot be empty")
	}
	links, err := s.repo.Load(ctx)
	if err != nil {
		return errors.NewInternalError(err)
	}
	for _, have := range links[key] {
		if have == link {
			return nil // already stored
		}
	}
	links[key] = append(links[key], link)
	if err := s.repo.Save(ctx, links); err != nil {
		log.Error("failed to save links: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("reference link added: key=%s", key)
	return nil
}

func (s *linkService) DeleteMCQLinkByPosition(ctx context.Context, index, position int) (string, error) {
	return s.delete(ctx, mcqKey(index), func(user []string) (int, error) {
		if position < 1 || position > len(user) {
			return 0, errors.NewValidationError("position", fmt.Sprintf("enter 1 to %d", len(user)))
		}
		return position - 1, nil
	})
}

func (s *linkService) DeleteMCQLinkByText(ctx context.Context, index int, link string) (string, error) {
	target := strings.TrimSpace(link)
	return s.delete(ctx, mcqKey(index), func(user []string) (int, error) {
		for i, have := range user {
			if have == target {
				return i, nil
			}
		}
		return 0, errors.NewNotFoundError("user-added link", target)
	})
}

// delete removes one user-added link selected by pick. Defaults are
// never touched; a failed pick leaves storage unchanged.
func (s *linkService) delete(ctx context.Context, key string, pick func([]string) (int, error)) (string, error) {
	log := logger.FromContext(ctx)

	links, err := s.repo.Load(ctx)
	if err != nil {
		return "", errors.NewInternalError(err)
	}
	user := links[key]
	if len(user) == 0 {
		return "", errors.NewNotFoundError("user-added links", key)
	}
	i, err := pick(user)
	if err != nil {
		return "", err
	}
	removed := user[i]
	user = append(user[:i], user[i+1:]...)
	if len(user) > 0 {
		links[key] = user
	} else {
		delete(links, key)
	}
	if err := s.repo.Save(ctx, links); err != nil {
		log.Error("failed to save links: %v", err)
		return "", errors.NewInternalError(err)
	}
	log.Info("reference link deleted: key=%s", key)
	return removed, nil
}
