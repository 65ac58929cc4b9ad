package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yourorg/stocksnap/internal/model"
	"github.com/yourorg/stocksnap/internal/repository"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// ErrUnsupported is returned by a Sharer that has no native share capability
var ErrUnsupported = errors.New("native share unsupported")

// Sharer hands a link to the platform's native share facility
type Sharer interface {
	Share(ctx context.Context, title, text, url string) error
}

// Clipboard writes text to the platform clipboard
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// UnsupportedSharer is used where no native share facility exists
type UnsupportedSharer struct{}

// Share always returns ErrUnsupported
func (UnsupportedSharer) Share(ctx context.Context, title, text, url string) error {
	return ErrUnsupported
}

// SystemClipboard writes to the operating system clipboard
type SystemClipboard struct{}

// WriteText copies text to the system clipboard
func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this platform")
	}
	return clipboard.WriteAll(text)
}

// ShareService shares a company one-pager, falling back from the native
// share facility to the clipboard, and reports a status that returns to
// idle after a delay
type ShareService struct {
	catalog    repository.CatalogProvider
	sharer     Sharer
	clipboard  Clipboard
	baseURL    string
	resetDelay time.Duration
	logger     *zap.Logger

	mu         sync.Mutex
	status     model.ShareStatus
	generation uint64
	resetTimer *time.Timer
}

// NewShareService creates a new share service
func NewShareService(
	catalog repository.CatalogProvider,
	sharer Sharer,
	clip Clipboard,
	baseURL string,
	resetDelay time.Duration,
	logger *zap.Logger,
) *ShareService {
	return &ShareService{
		catalog:    catalog,
		sharer:     sharer,
		clipboard:  clip,
		baseURL:    strings.TrimRight(baseURL, "/"),
		resetDelay: resetDelay,
		logger:     logger,
		status:     model.ShareIdle,
	}
}

// Share shares the one-pager of symbol. It returns nil, nil for an unknown
// symbol. Platform failures are reported through the status, not the error.
func (s *ShareService) Share(ctx context.Context, symbol string) (*model.ShareResult, error) {
	company, err := repository.FindCompany(ctx, s.catalog, symbol)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.status = model.ShareCopying
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.mu.Unlock()

	title := fmt.Sprintf("%s (%s) - StockSnap", company.Name, company.Symbol)
	text := fmt.Sprintf("Check out this comprehensive analysis of %s (%s) on StockSnap", company.Name, company.Symbol)
	url := fmt.Sprintf("%s/companies/%s", s.baseURL, company.Symbol)

	result := &model.ShareResult{Text: text, URL: url}

	if err := s.sharer.Share(ctx, title, text, url); err == nil {
		result.Status = model.ShareCopied
		result.Method = "native"
	} else {
		if !errors.Is(err, ErrUnsupported) {
			s.logger.Debug("Native share failed, falling back to clipboard", zap.Error(err))
		}
		if err := s.clipboard.WriteText(ctx, text+"\n"+url); err != nil {
			s.logger.Warn("Failed to copy share link", zap.String("symbol", symbol), zap.Error(err))
			result.Status = model.ShareError
		} else {
			result.Status = model.ShareCopied
			result.Method = "clipboard"
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == gen {
		s.status = result.Status
		s.resetTimer = time.AfterFunc(s.resetDelay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.generation == gen {
				s.status = model.ShareIdle
			}
		})
	}

	return result, nil
}

// Status returns the current share status
func (s *ShareService) Status() model.ShareStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
