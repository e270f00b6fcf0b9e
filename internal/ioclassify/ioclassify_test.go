package ioclassify_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/ioclassify"
	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "pest.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestToTensor(t *testing.T) {
	path := writePNG(t, 40, 30, color.RGBA{R: 255, G: 0, B: 128, A: 255})

	img, err := ioclassify.LoadImage(path)
	require.NoError(t, err)

	res := ioclassify.ToTensor(img, 8)
	require.Len(t, res, 8*8*3)

	// every pixel has the same color after resizing
	expect := []float32{
		(1.0 - 0.485) / 0.229,
		(0.0 - 0.456) / 0.224,
		(128.0/255.0 - 0.406) / 0.225,
	}
	for i := 0; i < len(res); i += 3 {
		for c := range 3 {
			assert.InDelta(t, expect[c], res[i+c], 1e-4)
		}
	}
}

func TestLoadImageErrors(t *testing.T) {
	_, err := ioclassify.LoadImage(filepath.Join(t.TempDir(), "none.jpg"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err = ioclassify.LoadImage(path)
	assert.Error(t, err)
}

func TestLoadClassMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "class_mapping.json")
	data := `{"0": "Aedes_albopictus", "1": "Culex_pipiens"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	res, err := ioclassify.LoadClassMap(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aedes_albopictus", "Culex_pipiens"}, res)

	_, err = ioclassify.LoadClassMap(filepath.Join(dir, "none.json"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ClassifierLabelsError, gnErr.Code)
}

func TestNewMissingFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New().Classifier
	cfg.LabelsPath = filepath.Join(dir, "none.json")
	_, err := ioclassify.New(cfg)
	require.Error(t, err)
	assert.Equal(t, errcode.ClassifierLabelsError, err.(*gn.Error).Code)

	labels := filepath.Join(dir, "class_mapping.json")
	require.NoError(t, os.WriteFile(labels, []byte(`{"0": "a"}`), 0644))
	cfg.LabelsPath = labels
	cfg.ModelPath = filepath.Join(dir, "none.tflite")
	_, err = ioclassify.New(cfg)
	require.Error(t, err)
	assert.Equal(t, errcode.ClassifierModelLoadError, err.(*gn.Error).Code)
}

func TestClassifyWithModel(t *testing.T) {
	model := os.Getenv("GNPEST_TEST_MODEL")
	labels := os.Getenv("GNPEST_TEST_LABELS")
	if model == "" || labels == "" {
		t.Skip("GNPEST_TEST_MODEL and GNPEST_TEST_LABELS are not set")
	}

	cfg := config.New().Classifier
	cfg.ModelPath = model
	cfg.LabelsPath = labels
	cl, err := ioclassify.New(cfg)
	require.NoError(t, err)
	defer cl.Close()

	path := writePNG(t, 300, 300, color.RGBA{R: 90, G: 90, B: 90, A: 255})
	res, err := cl.Classify(context.Background(), path, 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(res), 3)
	for i := 1; i < len(res); i++ {
		assert.GreaterOrEqual(t, res[i-1].Confidence, res[i].Confidence)
	}
}
