package resend

import (
	"context"
	"fmt"
	"sync/atomic"
)

// DryRunClient пишет письма в лог вместо отправки
// Используется, когда отправка почты выключена в конфигурации
type DryRunClient struct {
	seq atomic.Int64
	log Logger
}

func NewDryRunClient(log Logger) *DryRunClient {
	return &DryRunClient{log: log}
}

func (c *DryRunClient) Send(_ context.Context, to, subject, html string) (string, error) {
	id := fmt.Sprintf("dry-run-%d", c.seq.Add(1))
	c.log.Info("Email not sent (dry run): id=%s, to=%s, subject=%q, size=%d", id, to, subject, len(html))
	return id, nil
}
