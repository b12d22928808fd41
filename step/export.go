package step

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitrise-io/go-android/gradle"
	"github.com/bitrise-io/go-steputils/tools"
	"github.com/bitrise-io/go-utils/pathutil"
)

const apkEnvKey = "BITRISE_APK_PATH"

// ArtifactExporter ...
type ArtifactExporter interface {
	Export(artifact gradle.Artifact, deployDir string) error
}

// EnvExporter ...
type EnvExporter interface {
	ExportEnv(key, value string) error
}

type gradleArtifactExporter struct{}

func (gradleArtifactExporter) Export(artifact gradle.Artifact, deployDir string) error {
	return artifact.Export(deployDir)
}

type envmanExporter struct{}

func (envmanExporter) ExportEnv(key, value string) error {
	return tools.ExportEnvironmentWithEnvman(key, value)
}

// Export ...
func (b FlutterAndroidBuild) Export(result Result, deployDir string) error {
	b.logger.Println()
	b.logger.Infof("Export APK:")

	if result.RelocatedAPKPath == "" {
		b.logger.Warnf("No APK was relocated, skipping export")
		return nil
	}

	apkPath := result.RelocatedAPKPath
	if deployDir != "" {
		exportedPath, err := b.exportArtifact(gradle.Artifact{
			Path: result.RelocatedAPKPath,
			Name: filepath.Base(result.RelocatedAPKPath),
		}, deployDir)
		if err != nil {
			return err
		}
		apkPath = exportedPath
	}

	if err := b.envExporter.ExportEnv(apkEnvKey, apkPath); err != nil {
		return fmt.Errorf("failed to export environment variable %s: %w", apkEnvKey, err)
	}
	b.logger.Printf("  Env    [ $%s = %s ]", apkEnvKey, apkPath)

	return nil
}

func (b FlutterAndroidBuild) exportArtifact(artifact gradle.Artifact, deployDir string) (string, error) {
	exists, err := pathutil.IsPathExists(filepath.Join(deployDir, artifact.Name))
	if err != nil {
		return "", fmt.Errorf("failed to check path, error: %v", err)
	}

	artifactName := filepath.Base(artifact.Path)

	if exists {
		timestamp := time.Now().Format("20060102150405")
		ext := filepath.Ext(artifact.Name)
		name := strings.TrimSuffix(filepath.Base(artifact.Name), ext)
		artifact.Name = fmt.Sprintf("%s-%s%s", name, timestamp, ext)
	}

	b.logger.Printf("  Export [ %s => $BITRISE_DEPLOY_DIR/%s ]", artifactName, artifact.Name)

	if err := b.exporter.Export(artifact, deployDir); err != nil {
		return "", fmt.Errorf("failed to export artifact (%s): %v", artifact.Path, err)
	}

	return filepath.Join(deployDir, artifact.Name), nil
}
