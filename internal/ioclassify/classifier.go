// Package ioclassify implements classify.Classifier with a TensorFlow
// Lite model. The model and its class mapping are loaded once, the
// interpreter is reused for every image.
package ioclassify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/gnames/gnpest/pkg/classify"
	"github.com/gnames/gnpest/pkg/config"
	"github.com/tphakala/go-tflite"
)

type classifier struct {
	// mu guards the interpreter, it is not safe for concurrent use.
	mu sync.Mutex

	model       *tflite.Model
	options     *tflite.InterpreterOptions
	interpreter *tflite.Interpreter

	labels    []string
	inputSize int
	modelPath string
}

// New loads the model and the class mapping described by cfg.
func New(cfg config.ClassifierConfig) (classify.Classifier, error) {
	labels, err := LoadClassMap(cfg.LabelsPath)
	if err != nil {
		return nil, err
	}

	modelData, err := os.ReadFile(cfg.ModelPath)
	if err != nil {
		return nil, ModelLoadError(cfg.ModelPath, err)
	}

	model := tflite.NewModel(modelData)
	if model == nil {
		err = errors.New("cannot load TensorFlow Lite model")
		return nil, ModelLoadError(cfg.ModelPath, err)
	}

	options := tflite.NewInterpreterOptions()
	options.SetNumThread(cfg.Threads)
	options.SetErrorReporter(func(msg string, user_data any) {
		slog.Error("TFLite error", "message", msg)
	}, nil)

	interpreter := tflite.NewInterpreter(model, options)
	if interpreter == nil {
		options.Delete()
		model.Delete()
		err = errors.New("cannot create interpreter")
		return nil, ModelLoadError(cfg.ModelPath, err)
	}

	res := &classifier{
		model:       model,
		options:     options,
		interpreter: interpreter,
		labels:      labels,
		inputSize:   cfg.InputSize,
		modelPath:   cfg.ModelPath,
	}

	if status := interpreter.AllocateTensors(); status != tflite.OK {
		res.Close()
		err = errors.New("tensor allocation failed")
		return nil, ModelLoadError(cfg.ModelPath, err)
	}

	out := interpreter.GetOutputTensor(0)
	if n := out.Dim(out.NumDims() - 1); n != len(labels) {
		res.Close()
		err = fmt.Errorf("model has %d classes, mapping has %d", n, len(labels))
		return nil, LabelsError(cfg.LabelsPath, err)
	}

	slog.Info("Classifier initialized",
		"model", cfg.ModelPath,
		"classes", len(labels),
		"threads", cfg.Threads,
	)
	return res, nil
}

// Classify runs the model on an image and returns the topK classes.
func (c *classifier) Classify(
	ctx context.Context,
	imagePath string,
	topK int,
) ([]classify.Prediction, error) {
	img, err := LoadImage(imagePath)
	if err != nil {
		return nil, ImageError(imagePath, err)
	}
	tensor := ToTensor(img, c.inputSize)

	if err = ctx.Err(); err != nil {
		return nil, InferenceError(imagePath, err)
	}

	logits, err := c.invoke(tensor)
	if err != nil {
		return nil, InferenceError(imagePath, err)
	}

	preds, err := classify.Pair(c.labels, classify.Softmax(logits))
	if err != nil {
		return nil, InferenceError(imagePath, err)
	}

	res := classify.TopK(preds, topK)
	slog.Debug("Image classified", "image", imagePath, "predictions", len(res))
	return res, nil
}

func (c *classifier) invoke(tensor []float32) ([]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interpreter == nil {
		return nil, errors.New("classifier is closed")
	}

	input := c.interpreter.GetInputTensor(0)
	if input == nil {
		return nil, errors.New("cannot get input tensor")
	}
	in := input.Float32s()
	if len(in) != len(tensor) {
		return nil, fmt.Errorf(
			"model expects %d input values, image gives %d",
			len(in), len(tensor),
		)
	}
	copy(in, tensor)

	if status := c.interpreter.Invoke(); status != tflite.OK {
		return nil, errors.New("tensor invoke failed")
	}

	output := c.interpreter.GetOutputTensor(0)
	outputSize := output.Dim(output.NumDims() - 1)
	res := make([]float32, outputSize)
	copy(res, output.Float32s())
	return res, nil
}

// Close releases the interpreter and the model.
func (c *classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interpreter != nil {
		c.interpreter.Delete()
		c.interpreter = nil
	}
	if c.options != nil {
		c.options.Delete()
		c.options = nil
	}
	if c.model != nil {
		c.model.Delete()
		c.model = nil
	}
	return nil
}

// LoadClassMap reads the JSON class mapping from path.
func LoadClassMap(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, LabelsError(path, err)
	}
	res, err := classify.ParseClassMap(data)
	if err != nil {
		return nil, LabelsError(path, err)
	}
	return res, nil
}
