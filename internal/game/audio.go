package game

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundLaunch   SoundKind = iota // electron leaves the accelerator
	SoundSlow                      // magnetic wave hit
	SoundGold                      // gold pair incoming
	SoundGameOver                  // atom collision
	SoundRestart                   // retry pressed
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}

	mu          sync.Mutex // guards musicPlayer
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

var musicVolume float64 = 0.10
var sfxVolume float64 = 0.58

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func audioReady() bool {
	if globalAudio == nil {
		return false
	}
	select {
	case <-globalAudio.ready:
		return true
	default:
		return false
	}
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	if !audioReady() {
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation without harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundLaunch:
		return genLaunch()
	case SoundSlow:
		return genSlow()
	case SoundGold:
		return genGold()
	case SoundGameOver:
		return genGameOver()
	case SoundRestart:
		return genRestart()
	}
	return nil
}

// genLaunch: rising filtered-noise whoosh under an upward FM sweep.
func genLaunch() []byte {
	n := int(0.45 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(24680)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.25, 0.35, 0.4, 0.3)
		k := 0.05 + 0.5*p // filter opens as it rises
		lp = lp*(1-k) + lcg(&seed)*k
		freq := 180 + 900*p*p
		s := lp*0.35*env + fm(t, freq, 1.0, 1.4*env)*env*0.22
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSlow: wobbling descending tone for the magnetic drag.
func genSlow() []byte {
	n := int(0.38 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.35, 0.35)
		wob := 1 + 0.06*math.Sin(2*math.Pi*11*t)
		freq := (420 - 260*p) * wob
		s := fm(t, freq, 0.5, 2.2*env) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGold: short ascending FM bell pair, one note per atom.
func genGold() []byte {
	freqs := []float64{783.99, 1046.5} // G5 C6
	noteLen := SampleRate * 80 / 1000
	tail := int(0.2 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: noise crack into a slow descending minor chord.
func genGameOver() []byte {
	dur := 0.9
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.05}, // E4
		{261.63, 0.19}, // C4
		{220.00, 0.33}, // A3
	}
	mix := make([]float64, n)
	seed := uint64(13579)
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		mix[i] += lcg(&seed) * math.Exp(-p*40) * 0.5
	}
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025) // slight pitch drop
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genRestart: crisp click + brief high tone.
func genRestart() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Music ---------------------------------------------------------------

// StartMusic loops the background track. Calling it again restarts it.
func StartMusic() {
	if !audioReady() {
		return
	}
	a := globalAudio
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.musicPlayer != nil {
		a.musicPlayer.Close()
	}
	player := a.ctx.NewPlayer(&musicReader{seed: uint64(time.Now().UnixNano())})
	player.SetVolume(musicVolume)
	a.musicPlayer = player
	player.Play()
}

// StopMusic silences the background track.
func StopMusic() {
	a := globalAudio
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.musicPlayer == nil {
		return
	}
	a.musicPlayer.Close()
	a.musicPlayer = nil
}

type musicReader struct {
	t    float64
	seed uint64
}

// kick returns a kick drum sample given time-since-trigger (trig) in seconds.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

// hihat returns a closed hi-hat sample.
func hihat(trig float64, seed *uint64) float64 {
	if trig > 0.06 {
		return 0
	}
	n := lcg(seed)
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	return softSat((n*0.8 + metal*0.2) * math.Exp(-trig*42.0) * 0.07)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

// Read renders a driving minor arpeggio over four-on-the-floor kicks.
func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	chords := [][]float64{
		{220.0, 261.6, 329.6}, // Am
		{174.6, 220.0, 261.6}, // F
		{196.0, 246.9, 293.7}, // G
		{164.8, 207.7, 246.9}, // E
	}
	const tempo = 2.2 // beats per second
	const stepLen = 1.0 / (tempo * 4.0)
	arpOrder := [8]int{0, 1, 2, 1, 2, 1, 0, 2}

	for i := 0; i < samples; i++ {
		m.t += 1.0 / SampleRate
		beatLen := 1.0 / tempo
		beat := int(m.t / beatLen)
		chord := chords[(beat/4)%len(chords)]

		beatPos := math.Mod(m.t, beatLen)
		step := int(m.t / stepLen)
		stepPos := math.Mod(m.t, stepLen)

		s := kick(beatPos) * 0.5
		if step%2 == 1 {
			s += hihat(stepPos, &m.seed)
		}
		note := chord[arpOrder[step%len(arpOrder)]] * 2
		env := math.Exp(-stepPos * 14)
		s += fmArp(m.t, note, env)

		putStereoF32(p, i, softSat(s*0.8))
	}
	return samples * 8, nil
}
