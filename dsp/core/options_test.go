package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(100), WithDuration(10))
	if cfg.SampleRate != 100 {
		t.Fatalf("sample rate = %v, want 100", cfg.SampleRate)
	}
	if cfg.Duration != 10 {
		t.Fatalf("duration = %v, want 10", cfg.Duration)
	}
	if got := cfg.Samples(); got != 1000 {
		t.Fatalf("samples = %d, want 1000", got)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithDuration(-1))
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
