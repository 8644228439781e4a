// Package fishaudio provides a Go client for the Fish Audio API.
//
// # Basic Usage
//
//	client := fishaudio.NewClient("your-api-key")
//	defer client.Close()
//
//	// Remaining credit
//	credit, err := client.Wallet.Credit(ctx)
//
//	// Voice cloning
//	model, err := client.Model.Create(ctx, &fishaudio.CreateModelRequest{
//	    Title:     "Clone_1234abcd",
//	    Type:      fishaudio.ModelTypeTTS,
//	    TrainMode: fishaudio.TrainModeFast,
//	    Voices:    []fishaudio.AudioSample{{Filename: "voice.webm", Data: audio}},
//	})
//
//	// Speech synthesis with the cloned voice
//	mp3, err := client.TTS.Synthesize(ctx, &fishaudio.TTSRequest{
//	    Text:        "Hello, world!",
//	    ReferenceID: model.ID,
//	})
//
// # Error Handling
//
//	if e, ok := fishaudio.AsError(err); ok {
//	    if e.IsPaymentRequired() {
//	        // Top up the wallet
//	    }
//	}
//
// Requests are not retried.
//
// For more information, see: https://docs.fish.audio
package fishaudio
