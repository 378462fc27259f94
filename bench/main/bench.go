package main

import (
	"fmt"
	"log"

	"github.com/sw965/numgrad/bench"
	"go.uber.org/zap"
)

func main() {
	cfg, err := bench.LoadConfig()
	if err != nil {
		log.Fatalf("設定の読み込み失敗: %v", err)
	}

	logger, err := bench.NewLogger(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		log.Fatalf("ロガーの生成失敗: %v", err)
	}
	defer logger.Sync()

	rng := cfg.NewRand()
	for _, runner := range cfg.Runners(rng, logger) {
		report, err := runner.Run()
		if err != nil {
			logger.Fatal("benchmark failed", zap.Int("params", runner.Params), zap.Error(err))
		}
		fmt.Println(report)
	}
}
