package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"linkml-openapi/internal/model"
)

// buildView parses schema YAML and wraps it in a model view.
func buildView(t *testing.T, source string) *model.View {
	t.Helper()

	file, err := model.Parse([]byte(source))
	require.NoError(t, err)

	view, err := model.NewView(file)
	require.NoError(t, err)

	return view
}

// buildGenerator wires a generator over the parsed schema with defaults.
func buildGenerator(t *testing.T, source string) *Generator {
	t.Helper()
	return New(buildView(t, source), DefaultConfig())
}
