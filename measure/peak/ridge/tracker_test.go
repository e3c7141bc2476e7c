package ridge

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cwtpeaks/dsp/cwt"
	"github.com/cwbudde/algo-cwtpeaks/dsp/wavelet"
)

func quietTracker(opts ...Option) (*Tracker, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return NewTracker(append([]Option{WithLogger(logger)}, opts...)...), hook
}

func TestExtendPolicy(t *testing.T) {
	tests := []struct {
		name      string
		scaleDiff int
		column    []float64
		want      Outcome
		wantPos   int
		wantEnd   End
	}{
		{name: "no candidate", scaleDiff: 1, column: []float64{0, 0, 0, 0, 0.5, 0.9, 0.5, 0, 0, 0}, want: Stopped, wantEnd: NoCandidate},
		{name: "right only", scaleDiff: 1, column: []float64{0, 0, 0, 0, 0, 0, 2, 0, 0, 0}, want: Extended, wantPos: 6},
		{name: "left only", scaleDiff: 1, column: []float64{0, 0, 0, 0, 2, 0, 0, 0, 0, 0}, want: Extended, wantPos: 4},
		{name: "same position", scaleDiff: 1, column: []float64{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}, want: Extended, wantPos: 5},
		{name: "stay beats neighbour", scaleDiff: 1, column: []float64{0, 0, 0, 0, 0, 1, 5, 0, 0, 0}, want: Extended, wantPos: 5},
		{name: "closer wins", scaleDiff: 2, column: []float64{0, 0, 0, 9, 0, 0, 2, 0, 0, 0}, want: Extended, wantPos: 6},
		{name: "outermost per side", scaleDiff: 2, column: []float64{0, 0, 0, 0, 0, 0, 2, 3, 0, 0}, want: Extended, wantPos: 7},
		{name: "larger right", scaleDiff: 1, column: []float64{0, 0, 0, 0, 2, 0, 3, 0, 0, 0}, want: Extended, wantPos: 6},
		{name: "larger left", scaleDiff: 1, column: []float64{0, 0, 0, 0, 3, 0, 2, 0, 0, 0}, want: Extended, wantPos: 4},
		{name: "tie", scaleDiff: 1, column: []float64{0, 0, 0, 0, 2, 0, 2, 0, 0, 0}, want: Tied, wantEnd: Tie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := quietTracker(WithScaleDiff(tt.scaleDiff))
			r := New(Point{Position: 5, ScaleIndex: 0, Response: 1})

			got := tr.Extend(r, tt.column)
			require.Equal(t, tt.want, got)

			if tt.want != Extended {
				require.Equal(t, 1, r.Len())
				require.Equal(t, tt.wantEnd, r.End())
				return
			}

			require.Equal(t, 2, r.Len())
			require.Equal(t, Point{Position: tt.wantPos, ScaleIndex: 1, Response: tt.column[tt.wantPos]}, r.Last())
			require.False(t, r.Terminated())
		})
	}
}

func TestExtendTieLogsAtDebug(t *testing.T) {
	tr, hook := quietTracker()
	r := New(Point{Position: 5, Response: 1})

	require.Equal(t, Tied, tr.Extend(r, []float64{0, 0, 0, 0, 2, 0, 2, 0, 0, 0}))
	require.Len(t, hook.AllEntries(), 1)

	entry := hook.LastEntry()
	require.Equal(t, logrus.DebugLevel, entry.Level)
	require.Equal(t, 5, entry.Data["seed"])
	require.Equal(t, 4, entry.Data["left"])
	require.Equal(t, 6, entry.Data["right"])
}

func TestExtendAtEdges(t *testing.T) {
	tr, _ := quietTracker(WithScaleDiff(3))

	r := New(Point{Position: 0, Response: 1})
	require.Equal(t, Extended, tr.Extend(r, []float64{0, 2, 0, 0}))
	require.Equal(t, 1, r.Last().Position)

	r = New(Point{Position: 3, Response: 1})
	require.Equal(t, Extended, tr.Extend(r, []float64{5, 0, 0, 1}))
	require.Equal(t, 3, r.Last().Position)

	r = New(Point{Position: 7, Response: 1})
	require.Equal(t, Stopped, tr.Extend(r, []float64{5, 5}))
}

func TestExtendSkipsTerminated(t *testing.T) {
	tr, _ := quietTracker()
	r := New(Point{Position: 1})
	r.Terminate(NoCandidate)

	require.Equal(t, Skipped, tr.Extend(r, []float64{1, 1, 1}))
	require.Equal(t, NoCandidate, r.End())
}

func TestWithScaleDiffIgnoresInvalid(t *testing.T) {
	require.Equal(t, DefaultScaleDiff, NewTracker(WithScaleDiff(0)).ScaleDiff())
	require.Equal(t, 4, NewTracker(WithScaleDiff(4)).ScaleDiff())
	require.NotNil(t, NewTracker(WithLogger(nil)).log)
}

func TestSweepFromColumns(t *testing.T) {
	sg, err := cwt.FromColumns([][]float64{
		{0, 1, 0, -1, 0, 3, 0},
		{0, 0, 2, 0, 0, 1, 0},
		{0, 0, 3, 0, 0, 0, 0},
		{0, 4, 1, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	tr, _ := quietTracker()
	ridges := tr.Seed(sg)
	require.Len(t, ridges, 2)
	require.Equal(t, 1, ridges[0].SeedPosition())
	require.Equal(t, 5, ridges[1].SeedPosition())

	st := tr.Sweep(sg, ridges)
	require.Equal(t, Stats{Extensions: 3, NoCandidate: 1, ScaleLimit: 1}, st)

	require.Equal(t, []Point{
		{Position: 1, ScaleIndex: 0, Response: 1},
		{Position: 2, ScaleIndex: 1, Response: 2},
		{Position: 2, ScaleIndex: 2, Response: 3},
		{Position: 1, ScaleIndex: 3, Response: 4},
	}, ridges[0].Points())
	require.Equal(t, ScaleLimit, ridges[0].End())
	require.Equal(t, 3, ridges[0].IndexOfMaximum())

	require.Equal(t, 1, ridges[1].Len())
	require.Equal(t, NoCandidate, ridges[1].End())
}

func TestTrackBump(t *testing.T) {
	tf, err := cwt.New(wavelet.MexicanHat{})
	require.NoError(t, err)

	sg, err := tf.Scaleogram([]float64{0, 0, 0, 5, 10, 5, 0, 0, 0, 0}, 5)
	require.NoError(t, err)

	tr, hook := quietTracker()
	ridges, st := tr.Track(sg, 2)

	require.Equal(t, Stats{
		Seeds:       4,
		Extensions:  9,
		NoCandidate: 1,
		Ties:        1,
		ScaleLimit:  2,
		Discarded:   1,
	}, st)
	require.Len(t, hook.AllEntries(), 1)

	seeds := make([]int, len(ridges))
	for i, r := range ridges {
		seeds[i] = r.SeedPosition()
		require.GreaterOrEqual(t, r.Len(), 2)
	}
	require.Equal(t, []int{1, 4, 7}, seeds)

	require.Equal(t, 2, ridges[1].Len())
	require.Equal(t, 4, ridges[1].Last().Position)
	require.Equal(t, 1, ridges[1].IndexOfMaximum())
	require.InDelta(t, 10.1921, ridges[1].Maximum().Response, 1e-4)

	long, _ := tr.Track(sg, 3)
	require.Len(t, long, 2)
	require.Equal(t, 1, long[0].SeedPosition())
	require.Equal(t, 7, long[1].SeedPosition())
}

func TestSeedNilScaleogram(t *testing.T) {
	tr := NewTracker()
	require.Nil(t, tr.Seed(nil))
	require.Equal(t, Stats{}, tr.Sweep(nil, nil))
}

func TestFilterLength(t *testing.T) {
	a := New(Point{Position: 1})
	b := New(Point{Position: 2})
	require.NoError(t, b.Append(Point{Position: 2, ScaleIndex: 1}))

	kept, dropped := FilterLength([]*Ridge{a, b}, 2)
	require.Equal(t, []*Ridge{b}, kept)
	require.Equal(t, 1, dropped)
}
