package program

import (
	"fmt"
	"strings"

	"github.com/AnEntrypoint/patchify/microkorg/util"
)

func (e Envelope) String() string {
	return fmt.Sprintf("A=%.2f D=%.2f S=%.2f R=%.2f", e.A, e.D, e.S, e.R)
}

func (l LFO) String() string {
	s := fmt.Sprintf("%s %.2fHz keySync=%s", l.Wave, l.Rate, l.KeySync)
	if l.TempoSync {
		s += fmt.Sprintf(" tempoSync note=%d", l.SyncNote)
	}
	return s
}

func (v VirtualPatch) String() string {
	return fmt.Sprintf("%s -> %s (%+d)", v.Src, v.Dest, v.Intensity)
}

func (t *Timbre) String() string {
	flags := []string{}
	if t.Voice.EG1Reset {
		flags = append(flags, "EG1Reset")
	}
	if t.Voice.EG2Reset {
		flags = append(flags, "EG2Reset")
	}
	lines := []string{
		fmt.Sprintf("Voice: %s trigger=%s portamento=%.2f detune=%d %s",
			t.Voice.Assign, t.Voice.Trigger, t.Voice.Portamento, t.Voice.UnisonDetune, strings.Join(flags, " ")),
		fmt.Sprintf("Pitch: transpose=%d tune=%d bend=%d vibrato=%d",
			t.Pitch.Transpose, t.Pitch.Tune, t.Pitch.BendRange, t.Pitch.Vibrato),
		fmt.Sprintf("OSC1: %s ctrl1=%d ctrl2=%d dwgs=%d", t.Osc1.Wave, t.Osc1.Control1, t.Osc1.Control2, t.Osc1.DWGS),
		fmt.Sprintf("OSC2: %s mod=%s semitone=%d tune=%d", t.Osc2.Wave, t.Osc2.Mod, t.Osc2.Semitone, t.Osc2.Tune),
		fmt.Sprintf("Mixer: osc1=%.2f osc2=%.2f noise=%.2f", t.Mixer.Osc1, t.Mixer.Osc2, t.Mixer.Noise),
		fmt.Sprintf("Filter: %s cutoff=%d resonance=%.2f env=%d keyTrack=%d",
			t.Filter.Type, t.Filter.Cutoff, t.Filter.Resonance, t.Filter.EnvAmount, t.Filter.KeyTrack),
		"EG1: " + t.FilterEG.String(),
		fmt.Sprintf("Amp: level=%.2f pan=%d dist=%t velocity=%d keyTrack=%d",
			t.Amp.Level, t.Amp.Pan, t.Amp.Dist, t.Amp.VelocitySense, t.Amp.KeyTrack),
		"EG2: " + t.AmpEG.String(),
		"LFO1: " + t.LFO1.String(),
		"LFO2: " + t.LFO2.String(),
	}
	for i, vp := range t.VPatch {
		lines = append(lines, fmt.Sprintf("Patch%d: %s", i+1, vp))
	}
	return strings.Join(lines, "\n")
}

func (p *Patch) String() string {
	result := fmt.Sprintf("Program %q: voiceMode=%s octave=%+d\n", p.Name, p.VoiceMode, p.KeyboardOctave)
	for i, t := range p.Timbres() {
		result += fmt.Sprintf("Timbre %d:\n", i+1) + util.Indent(t.String(), "\t") + "\n"
	}
	fx := []string{
		fmt.Sprintf("ModFX: %s speed=%.2f depth=%.2f", p.ModFX.Type, p.ModFX.Speed, p.ModFX.Depth),
		fmt.Sprintf("Delay: %s time=%.2f feedback=%.2f sync=%t base=%d",
			p.Delay.Type, p.Delay.Time, p.Delay.Depth, p.Delay.Sync, p.Delay.TimeBase),
		fmt.Sprintf("EQ: low=%d/%+ddB high=%d/%+ddB", p.EQ.LowFreq, p.EQ.LowGain, p.EQ.HighFreq, p.EQ.HighGain),
		fmt.Sprintf("Arp: on=%t %s %s range=%d tempo=%d gate=%.2f swing=%+d latch=%t target=%s",
			p.Arp.On, p.Arp.Type, p.Arp.Resolution, p.Arp.Range, p.Arp.Tempo, p.Arp.Gate, p.Arp.Swing, p.Arp.Latch, p.Arp.Target),
	}
	return result + util.Indent(strings.Join(fx, "\n"), "\t")
}
