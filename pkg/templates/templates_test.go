package templates_test

import (
	"testing"

	"github.com/gnames/gnpest/pkg/config"
	"github.com/gnames/gnpest/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestConfigYAML verifies the template is valid YAML that matches
// the defaults of the config package.
func TestConfigYAML(t *testing.T) {
	require.NotEmpty(t, templates.ConfigYAML)

	var cfg config.Config
	err := yaml.Unmarshal([]byte(templates.ConfigYAML), &cfg)
	require.NoError(t, err)

	def := config.New()
	assert.Equal(t, def.Database, cfg.Database)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Equal(t, def.Classifier.ModelPath, cfg.Classifier.ModelPath)
	assert.Equal(t, def.Classifier.LabelsPath, cfg.Classifier.LabelsPath)
	assert.Equal(t, def.Classifier.TopK, cfg.Classifier.TopK)
	assert.Equal(t, def.Classifier.InputSize, cfg.Classifier.InputSize)
	assert.Zero(t, cfg.Classifier.Threads, "threads are commented out")
	assert.Zero(t, cfg.JobsNumber, "jobs number is commented out")
}
