package fishaudio

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Decimal is a numeric value that the API sends either as a JSON string
// ("9.990000") or as a number. The text is kept as received.
type Decimal string

// UnmarshalJSON implements json.Unmarshaler interface. JSON null leaves an
// empty Decimal; NaN and infinities are rejected.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("Decimal: cannot unmarshal %s", string(data))
		}
		s = n.String()
	}
	if _, ok := parseFinite(s); !ok {
		return fmt.Errorf("Decimal: invalid number %q", s)
	}
	*d = Decimal(s)
	return nil
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// MarshalJSON implements json.Marshaler interface.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// Float64 returns the numeric value. An empty or non-finite Decimal is zero.
func (d Decimal) Float64() float64 {
	f, _ := parseFinite(string(d))
	return f
}

// String returns the value as sent by the API.
func (d Decimal) String() string {
	if d == "" {
		return "0"
	}
	return string(d)
}

// ================== Wallet ==================

// APICredit is the remaining API credit of the account.
type APICredit struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user_id"`
	Credit    Decimal   `json:"credit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ================== Model ==================

// ModelType specifies what a model is used for.
type ModelType string

const (
	ModelTypeSVC ModelType = "svc"
	ModelTypeTTS ModelType = "tts"
)

// TrainMode specifies how a model is trained.
type TrainMode string

const (
	// TrainModeFast creates a usable model right away from the samples.
	TrainModeFast TrainMode = "fast"
)

// Visibility specifies who can see a model.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityUnlist  Visibility = "unlist"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is one of the known visibilities.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlist, VisibilityPrivate:
		return true
	}
	return false
}

// ModelState is the training state of a model.
type ModelState string

const (
	ModelStateCreated  ModelState = "created"
	ModelStateTraining ModelState = "training"
	ModelStateTrained  ModelState = "trained"
	ModelStateFailed   ModelState = "failed"
)

// AudioSample is one voice sample uploaded with a model.
type AudioSample struct {
	// Filename is sent as the multipart file name.
	Filename string

	// Data is the raw audio.
	Data []byte
}

// CreateModelRequest is the request for ModelService.Create.
type CreateModelRequest struct {
	// Title is the display title. Required.
	Title string `json:"title" yaml:"title"`

	// Description is an optional description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Type is the model type. Defaults to ModelTypeTTS.
	Type ModelType `json:"type,omitempty" yaml:"type,omitempty"`

	// TrainMode is the training mode. Defaults to TrainModeFast.
	TrainMode TrainMode `json:"train_mode,omitempty" yaml:"train_mode,omitempty"`

	// Visibility defaults to VisibilityPrivate when empty.
	Visibility Visibility `json:"visibility,omitempty" yaml:"visibility,omitempty"`

	// Voices are the audio samples. At least one is required.
	Voices []AudioSample `json:"-" yaml:"-"`

	// Texts are optional transcripts, one per voice sample.
	Texts []string `json:"texts,omitempty" yaml:"texts,omitempty"`

	// Tags are optional labels.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// EnhanceAudioQuality asks the service to denoise the samples.
	EnhanceAudioQuality bool `json:"enhance_audio_quality,omitempty" yaml:"enhance_audio_quality,omitempty"`
}

// Author is the owner of a model.
type Author struct {
	ID       string `json:"_id" yaml:"id"`
	Nickname string `json:"nickname" yaml:"nickname"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Model is a voice model.
type Model struct {
	ID          string     `json:"_id" yaml:"id"`
	Type        ModelType  `json:"type" yaml:"type"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	CoverImage  string     `json:"cover_image,omitempty" yaml:"cover_image,omitempty"`
	TrainMode   TrainMode  `json:"train_mode" yaml:"train_mode"`
	State       ModelState `json:"state" yaml:"state"`
	Tags        []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Languages   []string   `json:"languages,omitempty" yaml:"languages,omitempty"`
	Visibility  Visibility `json:"visibility" yaml:"visibility"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"updated_at"`
	Author      *Author    `json:"author,omitempty" yaml:"author,omitempty"`
}

// ================== TTS ==================

// AudioFormat specifies the audio encoding format.
type AudioFormat string

const (
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatWAV  AudioFormat = "wav"
	AudioFormatPCM  AudioFormat = "pcm"
	AudioFormatOpus AudioFormat = "opus"
)

// Latency selects the latency/quality trade-off of synthesis.
type Latency string

const (
	LatencyNormal   Latency = "normal"
	LatencyBalanced Latency = "balanced"
)

// TTSRequest is the request for TTSService.Synthesize.
type TTSRequest struct {
	// Text is the text to speak. Required.
	Text string `msgpack:"text" yaml:"text" json:"text"`

	// ReferenceID is the voice model to speak with.
	ReferenceID string `msgpack:"reference_id,omitempty" yaml:"reference_id,omitempty" json:"reference_id,omitempty"`

	// Format defaults to AudioFormatMP3.
	Format AudioFormat `msgpack:"format" yaml:"format,omitempty" json:"format,omitempty"`

	// ChunkLength is the text chunk size used by the service, 100-300.
	ChunkLength int `msgpack:"chunk_length,omitempty" yaml:"chunk_length,omitempty" json:"chunk_length,omitempty"`

	// MP3Bitrate is one of 64, 128, 192.
	MP3Bitrate int `msgpack:"mp3_bitrate,omitempty" yaml:"mp3_bitrate,omitempty" json:"mp3_bitrate,omitempty"`

	// Normalize enables text normalization; nil leaves the service default.
	Normalize *bool `msgpack:"normalize,omitempty" yaml:"normalize,omitempty" json:"normalize,omitempty"`

	// Latency defaults to the service default when empty.
	Latency Latency `msgpack:"latency,omitempty" yaml:"latency,omitempty" json:"latency,omitempty"`
}
