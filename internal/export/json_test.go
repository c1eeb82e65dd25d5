package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbontally/carbontally/internal/engine"
	"github.com/carbontally/carbontally/internal/scope2"
)

func TestWriteJSON(t *testing.T) {
	result := engine.Run(context.Background(), engine.DefaultSnapshot())
	s2 := scope2.EstimateElectricity(context.Background(), scope2.Inputs{
		Country: "Germany", Employees: 18, Auto: true,
	})

	report := Report{
		RunID:   "01JC0000000000000000000000",
		Version: "test",
		Result:  result,
		Scope2: &Scope2Report{
			Result:     s2,
			Confidence: scope2.ScoreConfidence(scope2.Inputs{Country: "Germany", Employees: 18, Auto: true}, s2),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, report))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "01JC0000000000000000000000", decoded["run_id"])
	assert.Contains(t, decoded, "result")
	assert.Contains(t, decoded, "scope2")
	assert.NotContains(t, buf.String(), "NaN")
}

func TestWriteJSONOmitsScope2WhenAbsent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Report{RunID: "x", Version: "test"}))
	assert.NotContains(t, buf.String(), "scope2")
}
