package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRosterCoversRequiredGroundTypes(t *testing.T) {
	ref := Default().Reference()
	available := map[string]bool{}
	for _, g := range ref.GroundSupport {
		if g.Status == "Available" {
			available[g.Type] = true
		}
	}
	assert.True(t, available["Baggage"])
	assert.True(t, available["Power"])
	assert.True(t, available["Positioning"])
}

func TestReferenceReturnsCopies(t *testing.T) {
	p := Default()
	first := p.Reference()
	first.Aircraft[0].Status = "AOG"
	first.Crew[0].DutyHoursUsed = 99

	second := p.Reference()
	assert.Equal(t, "Available", second.Aircraft[0].Status)
	assert.Equal(t, 2.5, second.Crew[0].DutyHoursUsed)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	body := `{"aircraft":[{"tail":"A6-XYZ","type":"B737-800","status":"Available","fuel_percent":90}],"crew":[],"ground_support":[]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	p, err := FromFile(path)
	require.NoError(t, err)
	ref := p.Reference()
	require.Len(t, ref.Aircraft, 1)
	assert.Equal(t, "A6-XYZ", ref.Aircraft[0].Tail)
}

func TestFromFileRejectsEmptyRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	_, err := FromFile(path)
	assert.Error(t, err)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
