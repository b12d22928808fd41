package step

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/command"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const assembleTask = "assemble"

func gradleTaskName(module, variant string) string {
	task := assembleTask

	// If variant is not defined, Gradle will execute the task for all variants (eg. assemble -> assembleDebug, assembleRelease)
	if variant != "" {
		task = task + cases.Title(language.Und, cases.NoLower).String(variant)
	}

	// The task should not start with a colon when no module is set: that syntax only works from the root project.
	if module != "" {
		rawModule := strings.TrimPrefix(module, ":")
		task = fmt.Sprintf(":%s:%s", rawModule, task)
	}

	return task
}

// isDebugVariant reports whether assembling variant produces a debug APK.
// An empty variant assembles every variant, debug included.
func isDebugVariant(variant string) bool {
	return variant == "" || strings.HasSuffix(strings.ToLower(variant), "debug")
}

func (b FlutterAndroidBuild) executeGradleBuild(cfg Config) error {
	b.logger.Infof("Run build:")

	cmdArgs := append([]string{gradleTaskName(cfg.AppModule, cfg.Variant)}, cfg.Arguments...)
	cmdOpts := command.Opts{
		Dir:    cfg.AndroidDir,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	cmd := b.cmdFactory.Create(filepath.Join(cfg.AndroidDir, "gradlew"), cmdArgs, &cmdOpts)

	b.logger.Println()
	b.logger.Donef("$ %s", cmd.PrintableCommandArgs())
	b.logger.Println()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build task failed: %v", err)
	}

	return nil
}
