package parserpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelToName(t *testing.T) {
	tests := []struct {
		label, want string
	}{
		{"Aedes_albopictus", "Aedes albopictus"},
		{"  Culex__pipiens_ ", "Culex pipiens"},
		{"Anopheles sinensis", "Anopheles sinensis"},
		{"___", ""},
		{"", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, labelToName(v.label), v.label)
	}
}
