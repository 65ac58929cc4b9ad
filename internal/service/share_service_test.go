package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yourorg/stocksnap/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSharer struct {
	err   error
	calls int
}

func (f *fakeSharer) Share(ctx context.Context, title, text, url string) error {
	f.calls++
	return f.err
}

type fakeClipboard struct {
	mu   sync.Mutex
	err  error
	text string
}

func (f *fakeClipboard) WriteText(ctx context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestShareService(t *testing.T, sharer Sharer, clip Clipboard, reset time.Duration) *ShareService {
	t.Helper()
	return NewShareService(newTestCatalog(t), sharer, clip, "https://stocksnap.test/", reset, zaptest.NewLogger(t))
}

func TestShareUsesNativeShareFirst(t *testing.T) {
	sharer := &fakeSharer{}
	clip := &fakeClipboard{}
	svc := newTestShareService(t, sharer, clip, time.Hour)

	res, err := svc.Share(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, model.ShareCopied, res.Status)
	assert.Equal(t, "native", res.Method)
	assert.Equal(t, "Check out this comprehensive analysis of Apple Inc. (AAPL) on StockSnap", res.Text)
	assert.Equal(t, "https://stocksnap.test/companies/AAPL", res.URL)
	assert.Equal(t, 1, sharer.calls)
	assert.Empty(t, clip.text)
	assert.Equal(t, model.ShareCopied, svc.Status())
}

func TestShareFallsBackToClipboard(t *testing.T) {
	for name, shareErr := range map[string]error{
		"unsupported": ErrUnsupported,
		"failed":      errors.New("user cancelled"),
	} {
		t.Run(name, func(t *testing.T) {
			clip := &fakeClipboard{}
			svc := newTestShareService(t, &fakeSharer{err: shareErr}, clip, time.Hour)

			res, err := svc.Share(context.Background(), "NVDA")
			require.NoError(t, err)
			assert.Equal(t, model.ShareCopied, res.Status)
			assert.Equal(t, "clipboard", res.Method)
			assert.Equal(t, res.Text+"\n"+res.URL, clip.text)
		})
	}
}

func TestShareReportsErrorWhenEverythingFails(t *testing.T) {
	svc := newTestShareService(t, UnsupportedSharer{}, &fakeClipboard{err: errors.New("no clipboard")}, time.Hour)

	res, err := svc.Share(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, model.ShareError, res.Status)
	assert.Empty(t, res.Method)
	assert.Equal(t, model.ShareError, svc.Status())
}

func TestShareStatusResetsToIdle(t *testing.T) {
	svc := newTestShareService(t, &fakeSharer{}, &fakeClipboard{}, 20*time.Millisecond)
	assert.Equal(t, model.ShareIdle, svc.Status())

	_, err := svc.Share(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return svc.Status() == model.ShareIdle
	}, time.Second, 5*time.Millisecond)
}

func TestShareUnknownSymbol(t *testing.T) {
	sharer := &fakeSharer{}
	svc := newTestShareService(t, sharer, &fakeClipboard{}, time.Hour)

	res, err := svc.Share(context.Background(), "IBM")
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Zero(t, sharer.calls)
	assert.Equal(t, model.ShareIdle, svc.Status())
}
