package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatusWriter(t *testing.T) {
	var buf bytes.Buffer
	sw := NewStatusWriter(&buf)
	assert.NotNil(t, sw)
}

func TestStatusWriterSuccess(t *testing.T) {
	var buf bytes.Buffer
	sw := NewStatusWriter(&buf)

	sw.Success("Wrote config")

	output := buf.String()
	assert.Contains(t, output, SymbolSuccess)
	assert.Contains(t, output, "Wrote config")
	assert.True(t, strings.HasSuffix(output, "\n"))
}

func TestStatusWriterFail(t *testing.T) {
	var buf bytes.Buffer
	sw := NewStatusWriter(&buf)

	sw.Fail("Couldn't write config")

	output := buf.String()
	assert.Contains(t, output, SymbolFail)
	assert.Contains(t, output, "Couldn't write config")
}

func TestStatusWriterSkipped(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		var buf bytes.Buffer
		NewStatusWriter(&buf).Skipped("Config", "already exists")

		output := buf.String()
		assert.Contains(t, output, SymbolSkipped)
		assert.Contains(t, output, "Config")
		assert.Contains(t, output, "(already exists)")
	})

	t.Run("without reason", func(t *testing.T) {
		var buf bytes.Buffer
		NewStatusWriter(&buf).Skipped("Config", "")

		output := buf.String()
		assert.Contains(t, output, "Config")
		assert.NotContains(t, output, "(")
	})
}

func TestStatusWriterDetail(t *testing.T) {
	var buf bytes.Buffer
	sw := NewStatusWriter(&buf)

	sw.Detail("interval", "250ms")

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "  "))
	assert.Contains(t, output, "interval")
	assert.Contains(t, output, "250ms")
}

func TestStatusWriterNewline(t *testing.T) {
	var buf bytes.Buffer
	NewStatusWriter(&buf).Newline()
	assert.Equal(t, "\n", buf.String())
}

func TestFormatStatus(t *testing.T) {
	line := FormatStatus(SymbolSuccess, ColorSuccess, "Done", "")
	assert.Contains(t, line, SymbolSuccess)
	assert.Contains(t, line, "Done")

	line = FormatStatus(SymbolSuccess, ColorSuccess, "Done", "0.3s")
	assert.Contains(t, line, "0.3s")
}
