package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
)

type mockApp struct {
	fitFunc     func(ctx context.Context, opts app.FitOptions) ([]domain.EstimatorResult, error)
	predictFunc func(ctx context.Context, opts app.PredictOptions) ([]domain.EstimatorResult, error)
	planFunc    func(opts app.PlanOptions) ([]*domain.Task, error)
	cleanFunc   func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Fit(ctx context.Context, opts app.FitOptions) ([]domain.EstimatorResult, error) {
	if m.fitFunc != nil {
		return m.fitFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Predict(ctx context.Context, opts app.PredictOptions) ([]domain.EstimatorResult, error) {
	if m.predictFunc != nil {
		return m.predictFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Plan(opts app.PlanOptions) ([]*domain.Task, error) {
	if m.planFunc != nil {
		return m.planFunc(opts)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

type logControl struct {
	json    bool
	verbose bool
}

func (l *logControl) SetJSON(enable bool)    { l.json = enable }
func (l *logControl) SetVerbose(enable bool) { l.verbose = enable }

func TestCommands_Fit(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.FitOptions
		mock := &mockApp{
			fitFunc: func(_ context.Context, opts app.FitOptions) ([]domain.EstimatorResult, error) {
				captured = opts
				return nil, nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"fit", "ridge", "--data", "train.csv", "--no-cache", "--force", "-c", "exp/kiln.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.FitOptions{
			ConfigPath: "exp/kiln.yaml",
			DataPath:   "train.csv",
			Blocks:     []string{"ridge"},
			NoCache:    true,
			Force:      true,
		}, captured)
	})

	t.Run("prints estimator results", func(t *testing.T) {
		frame, err := domain.NewFrame(domain.Column{Name: "prediction", Values: []float64{1, 2, 3}})
		require.NoError(t, err)
		mock := &mockApp{
			fitFunc: func(context.Context, app.FitOptions) ([]domain.EstimatorResult, error) {
				return []domain.EstimatorResult{{Name: "ridge", RuntimeEnv: "ridge-1a2b3c4d", Output: frame}}, nil
			},
		}

		cli := commands.New(mock, nil)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"fit", "--data", "train.csv"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "ridge\tridge-1a2b3c4d\t3 rows\n", buf.String())
	})

	t.Run("requires data", func(t *testing.T) {
		cli := commands.New(&mockApp{}, nil)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"fit"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data")
	})

	t.Run("returns error on fit failure", func(t *testing.T) {
		mock := &mockApp{
			fitFunc: func(context.Context, app.FitOptions) ([]domain.EstimatorResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"fit", "--data", "train.csv"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Predict(t *testing.T) {
	var captured app.PredictOptions
	mock := &mockApp{
		predictFunc: func(_ context.Context, opts app.PredictOptions) ([]domain.EstimatorResult, error) {
			captured = opts
			return nil, nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"predict", "--data", "test.csv", "--out", "preds.csv"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, commands.DefaultConfigPath, captured.ConfigPath)
	assert.Equal(t, "test.csv", captured.DataPath)
	assert.Equal(t, "preds.csv", captured.OutPath)
	assert.Empty(t, captured.Blocks)
	assert.False(t, captured.NoCache)
}

func TestCommands_Plan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	scaled := domain.NewKey("scaled")
	mock := &mockApp{
		planFunc: func(opts app.PlanOptions) ([]*domain.Task, error) {
			assert.Equal(t, []string{"ridge"}, opts.Blocks)
			return domain.NewTasks([]domain.Node{
				{Key: scaled, Name: "scaled"},
				{Key: domain.NewKey("ridge"), Name: "ridge", Parents: []domain.Key{scaled}},
			}), nil
		},
	}

	cli := commands.New(mock, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"plan", "ridge"})

	require.NoError(t, cli.Execute(context.Background()))

	g := goldie.New(t)
	g.Assert(t, "plan", buf.Bytes())
}

func TestCommands_Clean(t *testing.T) {
	var captured app.CleanOptions
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"clean", "--config", "other.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "other.yaml", captured.ConfigPath)
}

func TestCommands_LogFlags(t *testing.T) {
	logs := &logControl{}
	cli := commands.New(&mockApp{}, logs)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean", "--json", "--verbose"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, logs.json)
	assert.True(t, logs.verbose)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
