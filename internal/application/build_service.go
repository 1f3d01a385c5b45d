package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// BuildService compiles a Java submission and runs its entry class.
// Every toolchain problem is reported as a failed BuildResult.
type BuildService struct {
	runner  domain.ProcessRunner
	sources domain.SourceScanner
	opts    domain.BuildOptions
	logger  *zerolog.Logger
}

func NewBuildService(
	runner domain.ProcessRunner,
	sources domain.SourceScanner,
	opts domain.BuildOptions,
	logger *zerolog.Logger,
) *BuildService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &BuildService{runner: runner, sources: sources, opts: opts, logger: logger}
}

// Run compiles and, if that succeeded, executes the submission.
func (s *BuildService) Run(ctx context.Context, projectPath string) *domain.BuildReport {
	report := &domain.BuildReport{State: domain.StateNotCompiled}

	report.Compile = s.Compile(ctx, projectPath)
	if !report.Compile.Success {
		return report
	}
	report.State = domain.StateCompiled

	exec := s.Execute(ctx, projectPath)
	report.Execution = &exec
	report.State = domain.StateExecuted
	return report
}

// Compile builds every Java source below the source root into the build dir.
func (s *BuildService) Compile(ctx context.Context, projectPath string) domain.BuildResult {
	files, err := s.sources.JavaSources(projectPath, s.opts.SourceDir)
	if err != nil {
		return compileError(err)
	}
	if len(files) == 0 {
		return domain.BuildResult{Success: false, Message: "No se encontraron archivos Java para compilar"}
	}

	if err := os.MkdirAll(filepath.Join(projectPath, s.opts.BuildDir), 0755); err != nil {
		return compileError(err)
	}

	args := append([]string{"-d", s.opts.BuildDir, "-cp", s.opts.SourceDir}, files...)
	s.logger.Debug().Str("compiler", s.opts.Compiler).Int("files", len(files)).Msg("compiling")

	res, err := s.runner.Run(ctx, domain.ProcessSpec{Name: s.opts.Compiler, Args: args, Dir: projectPath})
	if err != nil {
		return compileError(err)
	}

	if res.ExitCode == 0 {
		return domain.BuildResult{Success: true, Message: "Compilación exitosa"}
	}
	s.logger.Debug().Int("exit_code", res.ExitCode).Msg("compilation failed")
	return domain.BuildResult{Success: false, Message: "Errores de compilación:\n" + res.Stderr}
}

// Execute runs the entry class from the build dir, bounded by the run timeout.
func (s *BuildService) Execute(ctx context.Context, projectPath string) domain.BuildResult {
	spec := domain.ProcessSpec{
		Name:    s.opts.Runtime,
		Args:    []string{"-cp", s.opts.BuildDir, s.opts.EntryClass},
		Dir:     projectPath,
		Timeout: s.opts.RunTimeout,
	}
	s.logger.Debug().Str("runtime", s.opts.Runtime).Str("class", s.opts.EntryClass).Dur("timeout", s.opts.RunTimeout).Msg("executing")

	res, err := s.runner.Run(ctx, spec)
	switch {
	case err != nil:
		return domain.BuildResult{Success: false, Message: fmt.Sprintf("Error durante la ejecución: %v", err)}
	case res.TimedOut:
		return domain.BuildResult{
			Success: false,
			Message: fmt.Sprintf("La ejecución excedió el tiempo límite (%s segundos)",
				strconv.FormatFloat(s.opts.RunTimeout.Seconds(), 'f', -1, 64)),
		}
	case res.ExitCode == 0:
		return domain.BuildResult{Success: true, Message: "Ejecución exitosa:\n" + res.Stdout}
	default:
		return domain.BuildResult{Success: false, Message: "Error en ejecución:\n" + res.Stderr}
	}
}

func compileError(err error) domain.BuildResult {
	return domain.BuildResult{Success: false, Message: fmt.Sprintf("Error durante la compilación: %v", err)}
}
