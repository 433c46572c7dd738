package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning("empty_array", "array has length 0", "xs", "xs")
	d.AddInfo("note", "just a note", "", "")
	assert.False(t, d.HasErrors())

	d.AddError("duplicate_parameter", `parameter "a" declared twice`, "a", "")
	require.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, `[a]: [duplicate_parameter] parameter "a" declared twice`, err.Error())

	assert.Equal(t, []string{"duplicate_parameter", "empty_array", "note"}, d.Codes())

	var other Diagnostics
	other.AddError("unknown_kind", "bad", "", "p.q")
	d.Merge(other)
	assert.Len(t, d.Errors, 2)
	assert.Equal(t, "p.q: [unknown_kind] bad", d.Errors[1].String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
