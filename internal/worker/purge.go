package worker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tcc-console/internal/logger"
	"github.com/tcc-console/internal/session"

	"github.com/robfig/cron/v3"
)

const defaultPurgeSpec = "@every 10m"

// SessionPurger 定时清理过期会话
type SessionPurger struct {
	name  string
	store session.Store
	spec  string
	cron  *cron.Cron
	now   func() time.Time
}

// NewSessionPurger 创建过期会话清理服务
func NewSessionPurger(store session.Store, spec string) (*SessionPurger, error) {
	if store == nil {
		return nil, errors.New("session store is nil")
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		spec = defaultPurgeSpec
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, err
	}
	return &SessionPurger{
		name:  "session-purge",
		store: store,
		spec:  spec,
		cron:  cron.New(),
		now:   time.Now,
	}, nil
}

// Name 服务名称
func (p *SessionPurger) Name() string {
	if p == nil || p.name == "" {
		return "session-purge"
	}
	return p.name
}

// Start 注册定时任务并阻塞到 ctx 结束
func (p *SessionPurger) Start(ctx context.Context) error {
	if p == nil || p.cron == nil {
		return errors.New("session purger not initialized")
	}
	if _, err := p.cron.AddFunc(p.spec, func() { p.RunOnce(context.Background()) }); err != nil {
		return err
	}
	p.cron.Start()
	<-ctx.Done()
	return nil
}

// Stop 停止调度并等待正在执行的任务结束
func (p *SessionPurger) Stop(ctx context.Context) error {
	if p == nil || p.cron == nil {
		return nil
	}
	select {
	case <-p.cron.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// RunOnce 执行一次清理
func (p *SessionPurger) RunOnce(ctx context.Context) int64 {
	removed, err := p.store.PurgeExpired(ctx, p.now())
	if err != nil {
		logger.Warnw("worker_session_purge_failed", "error", err)
		return 0
	}
	if removed > 0 {
		logger.Infow("worker_session_purged", "count", removed)
	}
	return removed
}
