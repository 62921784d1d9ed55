package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/assessment-agent/internal/types"
)

func TestDimensionsFor_MultipleChoice(t *testing.T) {
	dims, err := DimensionsFor(types.TypeMultipleChoice)
	require.NoError(t, err)

	require.Len(t, dims, 2)
	assert.Equal(t, 0.7, dims[0].Weight)
	assert.Equal(t, 0.3, dims[1].Weight)
}

func TestDimensionsFor_Coding(t *testing.T) {
	dims, err := DimensionsFor(types.TypeCoding)
	require.NoError(t, err)

	require.Len(t, dims, 4)
	assert.Equal(t, "correctness", dims[0].Name)
	assert.Equal(t, 0.4, dims[0].Weight)
	assert.Equal(t, 0.1, dims[3].Weight)
}

func TestDimensionsFor_WeightsSumToOne(t *testing.T) {
	for _, questionType := range []types.QuestionType{
		types.TypeMultipleChoice, types.TypeCoding, types.TypeShortAnswer, types.TypeOpenEnded,
	} {
		dims, err := DimensionsFor(questionType)
		require.NoError(t, err)

		total := 0.0
		for _, dim := range dims {
			total += dim.Weight
		}
		assert.InDelta(t, 1.0, total, 1e-9, string(questionType))
	}
}

func TestDimensionsFor_UnsupportedType(t *testing.T) {
	_, err := DimensionsFor(types.QuestionType("essay"))

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, types.QuestionType("essay"), unsupported.QuestionType)
}

func TestFormatDimensions_RendersPercentages(t *testing.T) {
	rendered := formatDimensions([]Dimension{
		{Name: "accuracy", Weight: 0.5},
		{Name: "clarity", Weight: 0.2},
	})

	assert.Equal(t, "- accuracy (50%)\n- clarity (20%)", rendered)
}
