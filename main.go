package main

import (
	"context"
	"os/signal"
	"syscall"

	"roteirizador/cmd"
	"roteirizador/infra"
	"roteirizador/pkg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	loadingEnv := infra.NewConfig()
	pkg.InitRedis()
	container := infra.NewContainerDI(loadingEnv)

	cmd.StartAPI(ctx, container)
}
