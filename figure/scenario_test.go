package figure_test

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/saxbospiral/sxbp/encode"
	"github.com/saxbospiral/sxbp/figure"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// scenario mirrors one entry of testdata/scenarios.yaml, the end-to-end
// fixture table shared by figure, refine, and serial tests.
type scenario struct {
	ID                  string `yaml:"id"`
	Description         string `yaml:"description"`
	InputHex            string `yaml:"input_hex"`
	ExpectedN           int    `yaml:"expected_n"`
	ExpectedSolvedCount int    `yaml:"expected_solved_count"`
	RefineIsNoop        bool   `yaml:"refine_is_noop"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func loadScenario(t *testing.T, id string) scenario {
	t.Helper()
	data, err := os.ReadFile("../testdata/scenarios.yaml")
	require.NoError(t, err)

	var sf scenarioFile
	require.NoError(t, yaml.Unmarshal(data, &sf))

	for _, s := range sf.Scenarios {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("scenario %s not found in testdata/scenarios.yaml", id)
	return scenario{}
}

// dumpOnFailure logs f's segment table via go-spew if t has already failed,
// giving a readable post-mortem without re-running under a debugger.
func dumpOnFailure(t *testing.T, f *figure.Figure) {
	t.Helper()
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("figure state at failure:\n%s", spew.Sdump(f))
		}
	})
}

func TestScenarioS1EmptyInput(t *testing.T) {
	s := loadScenario(t, "S1")
	data, err := hex.DecodeString(s.InputHex)
	require.NoError(t, err)

	f, err := encode.Encode(data)
	require.NoError(t, err)
	dumpOnFailure(t, f)

	require.Equal(t, s.ExpectedN, f.Len())
	require.Equal(t, s.ExpectedSolvedCount, f.SolvedCount())
	require.True(t, s.RefineIsNoop, "S1 documents refinement as a no-op")
	require.Equal(t, f.SolvedCount(), f.Len(), "a no-op refine target: already fully solved")

	seg0, err := f.Segment(0)
	require.NoError(t, err)
	require.Equal(t, figure.AnchorDirection, seg0.Direction)
	require.Equal(t, uint32(figure.AnchorLength), seg0.Length)
}
