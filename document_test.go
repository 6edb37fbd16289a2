// FILE: pkdgrav/simconfig/document_test.go
package simconfig

import (
	"bytes"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	r := newTestRegistry(t)
	doc := r.Document()

	t.Run("Grouped", func(t *testing.T) {
		assert.Len(t, doc, 4)
		assert.Contains(t, doc, "Periodic")
		assert.Contains(t, doc, UngroupedLabel)

		entry := doc["Periodic"]["dPeriod"]
		assert.Equal(t, 1.0, entry.Default)
		assert.Equal(t, "periodic box length", entry.Help)
		assert.Equal(t, "-L", entry.Flag)

		assert.Equal(t, "+p", doc["Periodic"]["bPeriodic"].Flag)
		assert.Contains(t, doc[UngroupedLabel], "bVerbose")
	})

	t.Run("AbsentDefault", func(t *testing.T) {
		assert.Equal(t, "", doc["Cosmology"]["dSigma8"].Default)
		assert.Equal(t, "", doc["Output"]["lstOrbits"].Default)
	})

	t.Run("LongDocs", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(Float("dTheta", "theta", 0.7, "opening angle").
			WithDocs("Barnes-Hut opening angle used for all tree walks."))
		entry := r.Document()[UngroupedLabel]["dTheta"]
		assert.Equal(t, "opening angle", entry.Help)
		assert.Contains(t, entry.Docs, "Barnes-Hut")
	})

	t.Run("WriteDocument", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.WriteDocument(&buf))

		var decoded map[string]map[string]map[string]any
		_, err := toml.Decode(buf.String(), &decoded)
		require.NoError(t, err)

		assert.Equal(t, 1.0, decoded["Periodic"]["dPeriod"]["default"])
		assert.Equal(t, "periodic box length", decoded["Periodic"]["dPeriod"]["help"])
		assert.Equal(t, "pkdgrav3", decoded["Output"]["achOutName"]["default"])
		assert.NotContains(t, decoded["Periodic"]["dPeriod"], "docs")
	})
}
