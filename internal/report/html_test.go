package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteComparisonHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, FormatHTML, testComparison()))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Comparison: /srv/app")
	assert.Contains(t, out, `class="status-CORRECT"`)
	assert.Contains(t, out, `class="status-MISSING"`)
	assert.Contains(t, out, "/srv/app/evil.sh")
	assert.Contains(t, out, "1 correct, 0 suspicious, 1 missing, 1 unknown")
	assert.Contains(t, out, "localeCompare", "sortable-table script must be embedded")
}

func TestWriteBaselineHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBaseline(&buf, FormatHTML, testBaseline()))

	out := buf.String()
	assert.Contains(t, out, "Baseline: /srv/app")
	assert.Contains(t, out, "/srv/app/app.conf")
	assert.Contains(t, out, absentDigest)
}

func TestWriteHTMLEscapesContent(t *testing.T) {
	c := testComparison()
	c.Results[1].Path = `/srv/app/<script>alert(1)</script>`

	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, FormatHTML, c))

	out := buf.String()
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
