package application_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/scanner"
	"github.com/mmasias/evaluacion-automatica/internal/application"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, spec domain.ProcessSpec) (domain.ProcessResult, error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(domain.ProcessResult), args.Error(1)
}

func isCompile(spec domain.ProcessSpec) bool { return spec.Name == "javac" }
func isExecute(spec domain.ProcessSpec) bool { return spec.Name == "java" }

func javaProject(t *testing.T, files ...string) string {
	t.Helper()
	return project(t, "", files...)
}

func newBuildService(runner domain.ProcessRunner) *application.BuildService {
	return application.NewBuildService(runner, scanner.New(), domain.DefaultBuildOptions(), nil)
}

func TestCompile_NoSourcesInvokesNothing(t *testing.T) {
	runner := &mockRunner{}
	svc := newBuildService(runner)

	result := svc.Compile(context.Background(), javaProject(t, "README.md"))

	assert.False(t, result.Success)
	assert.Equal(t, "No se encontraron archivos Java para compilar", result.Message)
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestCompile_Success(t *testing.T) {
	dir := javaProject(t, "src/Main.java", "src/model/Alumno.java", "src/notas.txt")
	runner := &mockRunner{}
	runner.
		On("Run", mock.Anything, mock.MatchedBy(func(spec domain.ProcessSpec) bool {
			return isCompile(spec) &&
				spec.Dir == dir &&
				spec.Timeout == 0 &&
				assert.ObjectsAreEqual([]string{
					"-d", "build", "-cp", "src",
					filepath.Join("src", "Main.java"),
					filepath.Join("src", "model", "Alumno.java"),
				}, spec.Args)
		})).
		Once().
		Return(domain.ProcessResult{ExitCode: 0}, nil)

	result := newBuildService(runner).Compile(context.Background(), dir)

	assert.True(t, result.Success)
	assert.Equal(t, "Compilación exitosa", result.Message)
	assert.DirExists(t, filepath.Join(dir, "build"))
	runner.AssertExpectations(t)
}

func TestCompile_CompilerErrors(t *testing.T) {
	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(isCompile)).
		Return(domain.ProcessResult{ExitCode: 1, Stderr: "Main.java:3: error: ';' expected"}, nil)

	result := newBuildService(runner).Compile(context.Background(), javaProject(t, "src/Main.java"))

	assert.False(t, result.Success)
	assert.Equal(t, "Errores de compilación:\nMain.java:3: error: ';' expected", result.Message)
}

func TestCompile_ToolchainMissing(t *testing.T) {
	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(isCompile)).
		Return(domain.ProcessResult{}, errors.New(`exec: "javac": executable file not found in $PATH`))

	result := newBuildService(runner).Compile(context.Background(), javaProject(t, "src/Main.java"))

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Error durante la compilación")
	assert.Contains(t, result.Message, "executable file not found")
}

func TestCompile_BuildDirBlocked(t *testing.T) {
	dir := javaProject(t, "src/Main.java", "build")
	runner := &mockRunner{}

	result := newBuildService(runner).Compile(context.Background(), dir)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Error durante la compilación")
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestExecute_Success(t *testing.T) {
	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(func(spec domain.ProcessSpec) bool {
		return isExecute(spec) &&
			spec.Timeout == 10*time.Second &&
			assert.ObjectsAreEqual([]string{"-cp", "build", "Main"}, spec.Args)
	})).Return(domain.ProcessResult{ExitCode: 0, Stdout: "Hola mundo\n"}, nil)

	result := newBuildService(runner).Execute(context.Background(), t.TempDir())

	assert.True(t, result.Success)
	assert.Equal(t, "Ejecución exitosa:\nHola mundo\n", result.Message)
}

func TestExecute_NonZeroExit(t *testing.T) {
	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(isExecute)).
		Return(domain.ProcessResult{ExitCode: 1, Stderr: "Exception in thread \"main\""}, nil)

	result := newBuildService(runner).Execute(context.Background(), t.TempDir())

	assert.False(t, result.Success)
	assert.Equal(t, "Error en ejecución:\nException in thread \"main\"", result.Message)
}

func TestExecute_TimeoutIsDistinct(t *testing.T) {
	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(isExecute)).
		Return(domain.ProcessResult{ExitCode: -1, TimedOut: true}, nil)

	result := newBuildService(runner).Execute(context.Background(), t.TempDir())

	assert.False(t, result.Success)
	assert.Equal(t, "La ejecución excedió el tiempo límite (10 segundos)", result.Message)
	assert.NotContains(t, result.Message, "Error en ejecución")
}

func TestExecute_RunnerError(t *testing.T) {
	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(isExecute)).
		Return(domain.ProcessResult{}, errors.New("fork failed"))

	result := newBuildService(runner).Execute(context.Background(), t.TempDir())

	assert.False(t, result.Success)
	assert.Equal(t, "Error durante la ejecución: fork failed", result.Message)
}

func TestRun_CompileFailureSkipsExecution(t *testing.T) {
	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(isCompile)).
		Return(domain.ProcessResult{ExitCode: 2, Stderr: "boom"}, nil)

	report := newBuildService(runner).Run(context.Background(), javaProject(t, "src/Main.java"))

	assert.Equal(t, domain.StateNotCompiled, report.State)
	assert.Nil(t, report.Execution)
	assert.True(t, report.Blocking(false))
	runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestRun_ExecutionFailureIsWarning(t *testing.T) {
	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(isCompile)).Return(domain.ProcessResult{}, nil)
	runner.On("Run", mock.Anything, mock.MatchedBy(isExecute)).Return(domain.ProcessResult{TimedOut: true}, nil)

	report := newBuildService(runner).Run(context.Background(), javaProject(t, "src/Main.java"))

	assert.Equal(t, domain.StateExecuted, report.State)
	require.NotNil(t, report.Execution)
	assert.False(t, report.Execution.Success)
	assert.False(t, report.Blocking(false))
	assert.True(t, report.Blocking(true))
}

func TestRun_CustomOptions(t *testing.T) {
	dir := javaProject(t, "codigo/App.java")
	opts := domain.DefaultBuildOptions()
	opts.SourceDir = "codigo"
	opts.BuildDir = "out"
	opts.EntryClass = "App"
	opts.RunTimeout = 2500 * time.Millisecond

	runner := &mockRunner{}
	runner.On("Run", mock.Anything, mock.MatchedBy(isCompile)).Return(domain.ProcessResult{}, nil)
	runner.On("Run", mock.Anything, mock.MatchedBy(isExecute)).Return(domain.ProcessResult{TimedOut: true}, nil)

	report := application.NewBuildService(runner, scanner.New(), opts, nil).Run(context.Background(), dir)

	require.NotNil(t, report.Execution)
	assert.Equal(t, "La ejecución excedió el tiempo límite (2.5 segundos)", report.Execution.Message)
	_, err := os.Stat(filepath.Join(dir, "out"))
	assert.NoError(t, err)
}
