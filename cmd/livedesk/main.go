package main

import (
	server "LiveDesk/api/http"
	"LiveDesk/internal/config"
	"LiveDesk/pkg/redis"
	"LiveDesk/pkg/zlog"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	conf := config.GetConfig()
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port

	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		zlog.Info(fmt.Sprintf("server starting, listening on %s", addr))
		if err := server.GE.Run(addr); err != nil {
			zlog.Fatal("server failed to start: " + err.Error())
			return
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	zlog.Info("shutting down server...")
	if err := redis.Close(); err != nil {
		zlog.Error("redis close: " + err.Error())
	}
	zlog.Info("server stopped")
}
