package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/backend"
	"go.trai.ch/kiln/internal/adapters/digest"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/blocks"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	loader   *mocks.MockConfigLoader
	datasets *mocks.MockDatasetIO
	logger   *mocks.MockLogger
	dir      string
	config   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		datasets: mocks.NewMockDatasetIO(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		dir:      t.TempDir(),
	}
	f.config = filepath.Join(f.dir, "kiln.yaml")

	f.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	hasher := digest.NewHasher()
	f.app = app.New(
		f.loader,
		blocks.NewFactory(hasher),
		backend.NewFactory(),
		f.datasets,
		f.logger,
		telemetry.NewNoOpTracer(),
		progrock.New(),
		hasher,
	)
	return f
}

func pipeline() *domain.Pipeline {
	return &domain.Pipeline{
		Version: "1",
		Backend: domain.BackendConfig{Driver: domain.DriverLocal, Path: "state"},
		Dataset: domain.DatasetConfig{Label: "y"},
		Blocks: []domain.BlockSpec{
			{Name: "scaled", Kind: blocks.KindStandardScaler},
			{Name: "ridge", Kind: blocks.KindRidge, Parents: []string{"scaled"}, Params: map[string]float64{"alpha": 0, "folds": 3}},
		},
	}
}

func trainingData(t *testing.T) (*domain.Frame, domain.Labels) {
	t.Helper()
	x := []float64{0, 1, 2, 3, 4, 5}
	y := make(domain.Labels, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
	}
	frame, err := domain.NewFrame(domain.Column{Name: "x", Values: x})
	require.NoError(t, err)
	return frame, y
}

func TestApp_FitThenPredict(t *testing.T) {
	f := newFixture(t)
	input, labels := trainingData(t)
	test, err := domain.NewFrame(domain.Column{Name: "x", Values: []float64{7, 8}})
	require.NoError(t, err)
	out := filepath.Join(f.dir, "predictions.csv")

	f.loader.EXPECT().Load(f.config).Return(pipeline(), nil).Times(2)
	f.datasets.EXPECT().Read("train.csv", "y").Return(input, labels, nil)
	f.datasets.EXPECT().Read("test.csv", "y").Return(test, nil, nil)
	f.datasets.EXPECT().Write(out, gomock.Any()).DoAndReturn(func(_ string, frame *domain.Frame) error {
		assert.Equal(t, 2, frame.Rows())
		return nil
	})

	fitted, err := f.app.Fit(context.Background(), app.FitOptions{ConfigPath: f.config, DataPath: "train.csv"})
	require.NoError(t, err)
	require.Len(t, fitted, 1)
	assert.Equal(t, "ridge", fitted[0].Name)
	assert.DirExists(t, filepath.Join(f.dir, "state", fitted[0].RuntimeEnv))

	preds, err := f.app.Predict(context.Background(), app.PredictOptions{
		ConfigPath: f.config,
		DataPath:   "test.csv",
		OutPath:    out,
	})
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, 2, preds[0].Output.Rows())
}

func TestApp_PredictBeforeFit(t *testing.T) {
	f := newFixture(t)
	test, err := domain.NewFrame(domain.Column{Name: "x", Values: []float64{7, 8}})
	require.NoError(t, err)

	f.loader.EXPECT().Load(f.config).Return(pipeline(), nil)
	f.datasets.EXPECT().Read("test.csv", "y").Return(test, nil, nil)

	_, err = f.app.Predict(context.Background(), app.PredictOptions{ConfigPath: f.config, DataPath: "test.csv"})
	require.ErrorIs(t, err, domain.ErrNotFitted)
	assert.Contains(t, err.Error(), "predict failed")
	assert.NoDirExists(t, filepath.Join(f.dir, "state"), "a failed preflight writes nothing")
}

func TestApp_Fit_ConfigLoaderError(t *testing.T) {
	f := newFixture(t)
	cause := errors.New("config load error")
	f.loader.EXPECT().Load(f.config).Return(nil, cause)

	_, err := f.app.Fit(context.Background(), app.FitOptions{ConfigPath: f.config, DataPath: "train.csv"})
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Fit_DatasetError(t *testing.T) {
	f := newFixture(t)
	cause := errors.New("no such file")
	f.loader.EXPECT().Load(f.config).Return(pipeline(), nil)
	f.datasets.EXPECT().Read("train.csv", "y").Return(nil, nil, cause)

	_, err := f.app.Fit(context.Background(), app.FitOptions{ConfigPath: f.config, DataPath: "train.csv"})
	require.ErrorIs(t, err, cause)
	assert.NoDirExists(t, filepath.Join(f.dir, "state"))
}

func TestApp_Fit_UnknownBlock(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.config).Return(pipeline(), nil)

	_, err := f.app.Fit(context.Background(), app.FitOptions{
		ConfigPath: f.config,
		DataPath:   "train.csv",
		Blocks:     []string{"missing"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownBlock)
}

func TestApp_Fit_SelectedBlock(t *testing.T) {
	f := newFixture(t)
	input, labels := trainingData(t)
	f.loader.EXPECT().Load(f.config).Return(pipeline(), nil)
	f.datasets.EXPECT().Read("train.csv", "y").Return(input, labels, nil)

	results, err := f.app.Fit(context.Background(), app.FitOptions{
		ConfigPath: f.config,
		DataPath:   "train.csv",
		Blocks:     []string{"scaled"},
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestApp_Plan(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.config).Return(pipeline(), nil)

	tasks, err := f.app.Plan(app.PlanOptions{ConfigPath: f.config})
	require.NoError(t, err)
	assert.Equal(t, []string{"scaled", "ridge"}, domain.TaskNames(tasks))
	assert.NoDirExists(t, filepath.Join(f.dir, "state"))
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	state := filepath.Join(f.dir, "state")
	require.NoError(t, os.MkdirAll(filepath.Join(state, "ridge-0000"), 0o750))
	f.loader.EXPECT().Load(f.config).Return(pipeline(), nil)

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: f.config}))
	assert.NoDirExists(t, state)
}

func TestApp_Clean_NoneBackend(t *testing.T) {
	f := newFixture(t)
	p := pipeline()
	p.Backend = domain.BackendConfig{Driver: domain.DriverNone}
	f.loader.EXPECT().Load(f.config).Return(p, nil)

	require.NoError(t, f.app.Clean(context.Background(), app.CleanOptions{ConfigPath: f.config}))
}
