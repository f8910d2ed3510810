package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"syntheo-client/internal/ack"
	"syntheo-client/internal/apiclient"
	"syntheo-client/internal/config"
	"syntheo-client/internal/logger"
	"syntheo-client/internal/session"
	"syntheo-client/internal/store"
)

// app 命令共享的依赖，在 PersistentPreRunE 中构建
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *apiclient.Client
	kv      store.KV
	session *session.Store
	acks    *ack.Store

	closeKV func() error
}

func newApp(logLevel string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "syntheo-cli")
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	kv, closeKV, err := store.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	client := apiclient.New(apiclient.Options{
		BaseURL:         cfg.APIBaseURL(),
		Token:           cfg.API.Token,
		UserListTimeout: cfg.API.UserListTimeout,
	}, log)

	return &app{
		cfg:     cfg,
		logger:  log,
		client:  client,
		kv:      kv,
		session: session.NewStore(client, kv, session.Options{DevFallback: cfg.Session.DevFallback}, log),
		acks:    ack.NewStore(kv, client, cfg.API.AckTimeout, log),
		closeKV: closeKV,
	}, nil
}

// initSession 加载当前用户与已选角色
func (a *app) initSession(ctx context.Context) (session.Snapshot, error) {
	err := a.session.Init(ctx)
	return a.session.Snapshot(), err
}

// close 等待后台确认请求结束后关闭存储
func (a *app) close() {
	a.acks.Wait()
	if a.closeKV != nil {
		if err := a.closeKV(); err != nil {
			a.logger.Warn("Failed to close store", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
