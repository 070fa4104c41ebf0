package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/appointment-scheduler/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		duration int
		want     []int
	}{
		{
			name:     "even grid",
			start:    540, // 09:00
			end:      660, // 11:00
			duration: 30,
			want:     []int{540, 570, 600, 630},
		},
		{
			name:     "trailing partial slot dropped",
			start:    540, // 09:00
			end:      650, // 10:50
			duration: 30,
			want:     []int{540, 570, 600},
		},
		{
			name:     "single slot exactly fits",
			start:    540,
			end:      570,
			duration: 30,
			want:     []int{540},
		},
		{
			name:     "empty when start equals end",
			start:    540,
			end:      540,
			duration: 30,
			want:     []int{},
		},
		{
			name:     "empty when start after end",
			start:    600,
			end:      540,
			duration: 30,
			want:     []int{},
		},
		{
			name:     "empty on non-positive duration",
			start:    540,
			end:      660,
			duration: 0,
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlots(tt.start, tt.end, tt.duration))
		})
	}
}

func TestGenerateSlotTimes(t *testing.T) {
	slots, err := GenerateSlotTimes("09:00", "10:30", 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, slots)
}

func TestIsAligned(t *testing.T) {
	assert.True(t, IsAligned(540, 30))
	assert.True(t, IsAligned(0, 30))
	assert.False(t, IsAligned(555, 30))
	assert.False(t, IsAligned(540, 0))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart int
		aDur   int
		aCount int
		bStart int
		bEnd   int
		want   bool
	}{
		{
			name:   "full overlap",
			aStart: 600, aDur: 30, aCount: 1,
			bStart: 540, bEnd: 720,
			want: true,
		},
		{
			name:   "partial overlap at interval end",
			aStart: 600, aDur: 30, aCount: 2,
			bStart: 650, bEnd: 700,
			want: true,
		},
		{
			name:   "adjacent before is not overlap",
			aStart: 540, aDur: 30, aCount: 2,
			bStart: 600, bEnd: 660,
			want: false,
		},
		{
			name:   "adjacent after is not overlap",
			aStart: 660, aDur: 30, aCount: 1,
			bStart: 600, bEnd: 660,
			want: false,
		},
		{
			name:   "disjoint",
			aStart: 540, aDur: 30, aCount: 1,
			bStart: 720, bEnd: 780,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aDur, tt.aCount, tt.bStart, tt.bEnd))
		})
	}
}

// Пересечение симметрично: предикат не зависит от того, какой интервал "новый"
func TestOverlapsSymmetry(t *testing.T) {
	aStart, aDur, aCount := 600, 30, 2 // [600, 660)
	bStart, bEnd := 630, 690           // [630, 690)

	assert.True(t, Overlaps(aStart, aDur, aCount, bStart, bEnd))
	assert.True(t, Overlaps(bStart, bEnd-bStart, 1, aStart, aStart+aDur*aCount))
}
