package providers

import (
	"context"
	"errors"
	"fmt"
)

const clipboardKey = "clipboard:text"

var ErrClipboardUnavailable = errors.New("clipboard unavailable")

type ClipboardProviderInterface interface {
	WriteText(ctx context.Context, text string) error
	ReadText() (string, bool)
}

// CacheClipboard keeps the last copied text in the shared cache, where the
// /clipboard endpoint can read it back.
type CacheClipboard struct {
	cache CacheProviderInterface
}

func NewClipboardProvider(cache CacheProviderInterface) ClipboardProviderInterface {
	return &CacheClipboard{cache: cache}
}

func (c *CacheClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.cache.Enabled() {
		return ErrClipboardUnavailable
	}
	if err := c.cache.Set(clipboardKey, []byte(text)); err != nil {
		return fmt.Errorf("store clipboard text: %w", err)
	}
	return nil
}

func (c *CacheClipboard) ReadText() (string, bool) {
	val, ok := c.cache.Get(clipboardKey)
	if !ok {
		return "", false
	}
	return string(val), true
}
