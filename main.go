package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/stepconf"
	"github.com/bitrise-io/go-utils/command"
	"github.com/bitrise-io/go-utils/env"
	"github.com/bitrise-io/go-utils/log"
	"github.com/bitrise-steplib/bitrise-step-flutter-android-build/step"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	envRepository := env.NewRepository()
	buildStep := step.NewFlutterAndroidBuild(stepconf.NewInputParser(envRepository), logger, command.NewFactory(envRepository))

	cfg, err := buildStep.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	result, err := buildStep.Run(cfg)
	if err != nil {
		logger.Errorf("Run: %s", err)
		return 1
	}

	if err := buildStep.Export(result, cfg.DeployDir); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	buildStep.CollectCache(cfg)

	return 0
}
