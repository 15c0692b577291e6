package audio

import (
	"testing"
	"time"

	"heartmaze/internal/core"
)

func TestToneBoundsAndLength(t *testing.T) {
	tone := NewTone(sampleRate, []float64{440, 880}, 10*time.Millisecond, 1)
	want := 2 * sampleRate.N(10*time.Millisecond)
	if tone.Len() != want {
		t.Fatalf("len = %d, want %d", tone.Len(), want)
	}
	buf := make([][2]float64, 256)
	total, loud := 0, false
	for {
		n, ok := tone.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range: %v", total+i, buf[i])
			}
			if buf[i][0] != 0 {
				loud = true
			}
		}
		total += n
	}
	if total != want {
		t.Fatalf("streamed %d samples, want %d", total, want)
	}
	if !loud {
		t.Fatal("tone was silent")
	}
	if tone.Err() != nil {
		t.Fatal(tone.Err())
	}
}

func TestEveryCueHasMelody(t *testing.T) {
	for c := core.CueCollect; c <= core.CueLose; c++ {
		if len(melodies[c]) == 0 {
			t.Fatalf("cue %d has no melody", c)
		}
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(2)
	if p.volume != 1 {
		t.Fatalf("volume = %v, want clamped to 1", p.volume)
	}
	p.Play(core.CueWin)
	p.PlayAll([]core.Cue{core.CueCollect, core.CueNone})
	p.Cleanup()
	if p.mixer.Len() != 0 {
		t.Fatal("uninitialized player queued tones")
	}
}
