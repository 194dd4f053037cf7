// Command cuegen writes a synthetic collision sound asset: a train of short sine
// blips, one per cue slot, so a run can be reproduced without a recorded sample
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/parameter"
	"github.com/lixenwraith/bounce/storage"
)

var (
	outFlag      = flag.String("out", parameter.DefaultSoundAsset, "Output WAV file")
	cuesFlag     = flag.Int("cues", 600, "Number of cue slots the asset must hold")
	manifestFlag = flag.String("manifest", "", "Size the asset for the cues of a run manifest")
	freqFlag     = flag.Float64("freq", 880, "Blip frequency in Hz")
	volumeFlag   = flag.Float64("volume", 0.6, "Linear volume")
	periodFlag   = flag.Float64("period", parameter.CueDuration, "Cue slot length in seconds")
)

func main() {
	flag.Parse()

	cues := *cuesFlag
	if *manifestFlag != "" {
		m, err := storage.ReadManifest(*manifestFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read manifest: %v\n", err)
			os.Exit(1)
		}
		cues = len(m.Cues)
	}
	if cues <= 0 || *periodFlag <= 0 {
		fmt.Fprintf(os.Stderr, "Need a positive cue count and period, got %d and %g\n", cues, *periodFlag)
		os.Exit(1)
	}

	seconds := float64(cues) * *periodFlag
	if err := audio.WriteBlips(*outFlag, *freqFlag, seconds, *periodFlag, *volumeFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write asset: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s: %d cues, %.1fs\n", *outFlag, cues, seconds)
}
