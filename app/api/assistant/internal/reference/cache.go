package reference

import (
	"context"
	"fmt"
	"strings"

	"PhoneMate/app/common/consts/biz"
	"PhoneMate/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	maxNameLen = 36
	maxEntries = 200
)

// Cache serves the "name | id" lookup table that grounds the assistant's
// prompts, backed by redis so every chat turn does not refetch the catalog.
type Cache struct {
	store  *redis.Redis
	phones catalog.PhonesModel
}

func NewCache(store *redis.Redis, phones catalog.PhonesModel) *Cache {
	return &Cache{store: store, phones: phones}
}

func (c *Cache) Get(ctx context.Context) (string, error) {
	if c.store != nil {
		if cached, err := c.store.GetCtx(ctx, biz.PhoneReferenceKey); err == nil && cached != "" {
			return cached, nil
		}
	}

	table, err := c.build(ctx)
	if err != nil {
		return "", err
	}

	if c.store != nil {
		seconds := int(biz.PhoneReferenceExpire.Seconds())
		if err := c.store.SetexCtx(ctx, biz.PhoneReferenceKey, table, seconds); err != nil {
			logx.WithContext(ctx).Errorf("cache phone reference failed: %v", err)
		}
	}
	return table, nil
}

// Invalidate drops the cached table; the next Get rebuilds it.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	_, err := c.store.DelCtx(ctx, biz.PhoneReferenceKey)
	return err
}

func (c *Cache) build(ctx context.Context) (string, error) {
	phones, err := c.phones.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("build phone reference: %w", err)
	}

	var b strings.Builder
	written := 0
	for _, p := range phones {
		if p.ID == "" {
			continue
		}
		if written >= maxEntries {
			fmt.Fprintf(&b, "... and %d more\n", len(phones)-written)
			break
		}
		fmt.Fprintf(&b, "%s | %s\n", shorten(displayName(p)), p.ID)
		written++
	}
	return b.String(), nil
}

func displayName(p catalog.Phone) string {
	name := strings.TrimSpace(p.PhoneName)
	if name == "" {
		return p.ID
	}
	return name
}

func shorten(s string) string {
	runes := []rune(s)
	if len(runes) <= maxNameLen {
		return s
	}
	return string(runes[:maxNameLen-3]) + "..."
}
