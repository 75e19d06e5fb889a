package program

import (
	"testing"

	"github.com/AnEntrypoint/patchify/microkorg/enums"
	pb "github.com/AnEntrypoint/patchify/pb/microkorg"
	"github.com/golang/protobuf/proto"
)

func TestBankToPB(t *testing.T) {
	b := NewBank()
	b.Programs[5], _ = Preset("Fat Bass")
	layer := New()
	layer.Name = "Layered"
	layer.VoiceMode = enums.VoiceMode_Layer
	t2 := initTimbre()
	t2.Osc1.Wave = enums.OSC1Wave_Vox
	layer.Timbre2 = &t2
	b.Programs[9] = layer
	b.Programs[10] = nil

	data, err := proto.Marshal(b.ToPB())
	if err != nil {
		t.Fatal(err)
	}
	got := &pb.Bank{}
	if err := got.LoadBytes(data); err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(got, b.ToPB()) {
		t.Fatalf("unmarshaled bank differs:\n%s", got)
	}
	if len(got.Programs) != BankSize {
		t.Fatalf("%d programs", len(got.Programs))
	}

	bass, ok := got.Find("Fat Bass")
	if !ok {
		t.Fatal("Fat Bass not found")
	}
	if bass.GetTimbre1().Transpose != -12 || bass.GetTimbre1().FilterCutoff != 40 || !bass.GetTimbre1().AmpDist {
		t.Errorf("timbre 1 = %s", bass.GetTimbre1())
	}
	if bass.GetTimbre1().GetVPatch()[0].Intensity != 5 || bass.GetTimbre2() != nil {
		t.Errorf("Fat Bass = %s", bass)
	}
	if got.Programs[9].GetTimbre2().GetOsc1Wave() != uint32(enums.OSC1Wave_Vox) {
		t.Errorf("layer timbre 2 = %s", got.Programs[9].GetTimbre2())
	}
	if got.Programs[10].Name != "Init Program" || got.Programs[10].GetArp().GetTempo() != 120 {
		t.Errorf("missing program = %s", got.Programs[10])
	}
}

func TestPatchToPBDropsUnusedTimbre2(t *testing.T) {
	p := New()
	t2 := initTimbre()
	p.Timbre2 = &t2
	if p.ToPB().Timbre2 != nil {
		t.Error("timbre 2 must only be written in Layer mode")
	}
}

func TestLoadBytesRejectsGarbage(t *testing.T) {
	b := &pb.Bank{}
	if err := b.LoadBytes([]byte{0x0A, 0xFF}); err == nil {
		t.Error("truncated message should fail")
	}
}
