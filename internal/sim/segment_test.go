package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSegments_FoldsAdjacentSameLabel(t *testing.T) {
	in := []Segment{
		{Start: 0, End: 4, Label: pidLabel("P1")},
		{Start: 4, End: 8, Label: pidLabel("P1")},
		{Start: 8, End: 10, Label: pidLabel("P2")},
	}
	out := mergeSegments(in)
	assert.Equal(t, []Segment{
		{Start: 0, End: 8, Label: pidLabel("P1")},
		{Start: 8, End: 10, Label: pidLabel("P2")},
	}, out)
}

func TestMergeSegments_DropsEmptySegments(t *testing.T) {
	in := []Segment{
		{Start: 0, End: 0, Label: CSLabel},
		{Start: 0, End: 5, Label: pidLabel("P1")},
	}
	out := mergeSegments(in)
	assert.Equal(t, []Segment{{Start: 0, End: 5, Label: pidLabel("P1")}}, out)
}

func TestMergeSegments_DoesNotFoldDifferentLabels(t *testing.T) {
	in := []Segment{
		{Start: 0, End: 2, Label: pidLabel("P1")},
		{Start: 2, End: 4, Label: CSLabel},
		{Start: 4, End: 6, Label: pidLabel("P2")},
	}
	out := mergeSegments(in)
	assert.Len(t, out, 3)
}

func TestLabel_String(t *testing.T) {
	assert.Equal(t, "IDLE", IdleLabel.String())
	assert.Equal(t, "CS", CSLabel.String())
	assert.Equal(t, "P7", pidLabel("P7").String())
}
