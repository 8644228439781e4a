package fishaudio

import (
	"context"
	"errors"
)

// TTSService provides speech synthesis operations.
type TTSService struct {
	client *Client
}

// newTTSService creates a new TTS service.
func newTTSService(client *Client) *TTSService {
	return &TTSService{client: client}
}

// Synthesize converts text to speech and returns the complete audio.
func (s *TTSService) Synthesize(ctx context.Context, req *TTSRequest) ([]byte, error) {
	if req == nil || req.Text == "" {
		return nil, errors.New("fishaudio: text is required")
	}

	body := *req
	if body.Format == "" {
		body.Format = AudioFormatMP3
	}

	audio, err := s.client.http.requestMsgpack(ctx, "/v1/tts", &body)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, errors.New("fishaudio: empty audio in response")
	}
	return audio, nil
}
