package step

import (
	"fmt"
	"path/filepath"
	"strings"

	androidcache "github.com/bitrise-io/go-android/cache"
	"github.com/bitrise-io/go-steputils/cache"
	"github.com/bitrise-io/go-steputils/stepconf"
	"github.com/bitrise-io/go-utils/command"
	"github.com/bitrise-io/go-utils/log"
	"github.com/kballard/go-shellquote"
)

// Input ...
type Input struct {
	ProjectLocation string `env:"project_location,dir"`
	AppModuleDir    string `env:"app_module_dir,required"`
	APKSourcePath   string `env:"apk_source_path,required"`
	OutputDir       string `env:"output_dir,required"`
	OutputFileName  string `env:"output_file_name,required"`
	RunBuild        string `env:"run_build,opt[yes,no]"`
	Variant         string `env:"variant"`
	Arguments       string `env:"arguments"`
	CacheLevel      string `env:"cache_level,opt[none,only_deps,all]"`
	DeployDir       string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	ProjectLocation string

	// AndroidDir holds the Gradle wrapper, AppModule is the app module's name inside it.
	AndroidDir string
	AppModule  string

	APKSourcePath  string
	OutputDir      string
	OutputFileName string

	RunBuild  bool
	Variant   string
	Arguments []string

	CacheLevel cache.Level
	DeployDir  string
}

// Result ...
type Result struct {
	// RelocatedAPKPath is empty when the build produced no APK.
	RelocatedAPKPath string
}

// FlutterAndroidBuild ...
type FlutterAndroidBuild struct {
	inputParser stepconf.InputParser
	logger      log.Logger
	cmdFactory  command.Factory
	relocator   Relocator
	exporter    ArtifactExporter
	envExporter EnvExporter
}

// NewFlutterAndroidBuild ...
func NewFlutterAndroidBuild(inputParser stepconf.InputParser, logger log.Logger, cmdFactory command.Factory) *FlutterAndroidBuild {
	return &FlutterAndroidBuild{
		inputParser: inputParser,
		logger:      logger,
		cmdFactory:  cmdFactory,
		relocator:   NewRelocator(logger),
		exporter:    gradleArtifactExporter{},
		envExporter: envmanExporter{},
	}
}

// ProcessConfig ...
func (b FlutterAndroidBuild) ProcessConfig() (Config, error) {
	var input Input
	if err := b.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}
	stepconf.Print(input)

	return createConfig(input)
}

func createConfig(input Input) (Config, error) {
	args, err := shellquote.Split(input.Arguments)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse arguments: %s", err)
	}

	appModuleDir := resolvePath(input.ProjectLocation, input.AppModuleDir)

	return Config{
		ProjectLocation: input.ProjectLocation,
		AndroidDir:      filepath.Dir(appModuleDir),
		AppModule:       filepath.Base(appModuleDir),
		APKSourcePath:   resolvePath(appModuleDir, input.APKSourcePath),
		OutputDir:       resolvePath(input.ProjectLocation, input.OutputDir),
		OutputFileName:  input.OutputFileName,
		RunBuild:        input.RunBuild == "yes",
		Variant:         strings.TrimSpace(input.Variant),
		Arguments:       args,
		CacheLevel:      cache.Level(input.CacheLevel),
		DeployDir:       input.DeployDir,
	}, nil
}

// Run ...
func (b FlutterAndroidBuild) Run(cfg Config) (Result, error) {
	if cfg.RunBuild {
		if err := b.executeGradleBuild(cfg); err != nil {
			return Result{}, err
		}

		// Relocation only follows a debug assemble.
		if !isDebugVariant(cfg.Variant) {
			b.logger.Warnf("Built variant (%s) is not a debug variant, skipping APK relocation", cfg.Variant)
			return Result{}, nil
		}
	}

	b.logger.Println()
	b.logger.Infof("Relocate APK:")

	relocatedPath, err := b.relocator.Relocate(cfg.APKSourcePath, cfg.OutputDir, cfg.OutputFileName)
	if err != nil {
		return Result{}, fmt.Errorf("failed to relocate APK: %w", err)
	}

	return Result{RelocatedAPKPath: relocatedPath}, nil
}

// CollectCache ...
func (b FlutterAndroidBuild) CollectCache(cfg Config) {
	b.logger.Println()
	b.logger.Infof("Collecting cache:")
	if warning := androidcache.Collect(cfg.AndroidDir, cfg.CacheLevel, b.cmdFactory); warning != nil {
		b.logger.Warnf("%s", warning)
	}
	b.logger.Donef("Done")
}

func resolvePath(base, pth string) string {
	if filepath.IsAbs(pth) {
		return filepath.Clean(pth)
	}
	return filepath.Join(base, pth)
}
