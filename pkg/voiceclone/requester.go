// Package voiceclone uploads an audio sample to Fish Audio and creates a
// cloned voice model from it.
//
// The flow is strictly linear: argument check, local file check, session
// open, credit check, upload. A model is only requested when the file exists
// and the account has credit left. The session is closed exactly once on
// every path after it was opened.
package voiceclone

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/digitaltwins/fishvoice/pkg/cli"
	"github.com/digitaltwins/fishvoice/pkg/fishaudio"
)

const (
	// TitlePrefix prefixes the identifier in derived model titles.
	TitlePrefix = "Clone_"

	// TitleIDLength is the number of identifier characters kept in titles.
	TitleIDLength = 8

	// DefaultDescription is the description sent with every model.
	DefaultDescription = "Custom voice clone"

	// ModelIDPrefix starts the machine-readable result line.
	ModelIDPrefix = "VOICE_MODEL_ID:"

	// Usage is printed when the argument count is wrong.
	Usage = "Usage: create-fish-voice <api_key> <audio_path> <user_id>"
)

var (
	// ErrUsage is returned for a wrong argument count.
	ErrUsage = errors.New("voiceclone: expected <api_key> <audio_path> <user_id>")

	// ErrFileNotFound is returned when the audio path is not an existing file.
	ErrFileNotFound = errors.New("voiceclone: audio file not found")

	// ErrNoCredit is returned when the account balance is not positive.
	ErrNoCredit = errors.New("voiceclone: no credits available")
)

// Title derives the model title from an identifier: TitlePrefix followed by
// the first TitleIDLength characters of id.
func Title(id string) string {
	r := []rune(id)
	if len(r) > TitleIDLength {
		r = r[:TitleIDLength]
	}
	return TitlePrefix + string(r)
}

// Request describes one clone.
type Request struct {
	APIKey    string
	AudioPath string
	UserID    string

	// Title overrides Title(UserID) when set.
	Title string

	// Description overrides DefaultDescription when set.
	Description string

	// Visibility defaults to private.
	Visibility fishaudio.Visibility
}

// ParseArgs builds a Request from the positional arguments api_key,
// audio_path and user_id.
func ParseArgs(args []string) (Request, error) {
	if len(args) != 3 {
		return Request{}, fmt.Errorf("%w: got %d arguments", ErrUsage, len(args))
	}
	return Request{
		APIKey:    args[0],
		AudioPath: args[1],
		UserID:    args[2],
	}, nil
}

// Option configures a Requester.
type Option func(*Requester)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Requester) {
		r.logger = logger
	}
}

// Requester runs the clone flow against sessions produced by an Opener.
type Requester struct {
	open    Opener
	printer *cli.Printer
	logger  *slog.Logger
}

// New creates a Requester printing progress and results to stdout.
// Nil writers default to the process streams.
func New(open Opener, stdout, stderr io.Writer, opts ...Option) *Requester {
	r := &Requester{
		open:    open,
		printer: cli.NewPrinter(stdout, stderr),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the command-line contract on args (api_key, audio_path,
// user_id) and returns the process exit status.
func (r *Requester) Run(ctx context.Context, args []string) int {
	req, err := ParseArgs(args)
	if err != nil {
		r.printer.Line(Usage)
		return 1
	}

	model, err := r.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			r.printer.Line("ERROR: Audio file not found: %s", req.AudioPath)
		case errors.Is(err, ErrNoCredit):
			r.printer.Line("ERROR: No credits available")
		default:
			r.printer.Line("ERROR: %s", err)
		}
		return 1
	}

	r.printer.Success("Voice model created!")
	r.printer.Info("Model ID: %s", model.ID)
	r.printer.Line("%s%s", ModelIDPrefix, model.ID)
	return 0
}

// Create checks the audio file, opens a session, checks credit and uploads
// the sample. The session is closed before Create returns.
func (r *Requester) Create(ctx context.Context, req Request) (*fishaudio.Model, error) {
	r.printer.Info("Creating voice model for user: %s", req.UserID)
	r.printer.Info("Audio file: %s", req.AudioPath)

	info, err := os.Stat(req.AudioPath)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, req.AudioPath)
	}

	sess, err := r.open(req.APIKey)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	r.logger.Debug("session opened", "user_id", req.UserID)
	defer func() {
		if err := sess.Close(); err != nil {
			r.logger.Warn("close session", "error", err)
			return
		}
		r.logger.Debug("session closed")
	}()

	credit, err := sess.Credit(ctx)
	if err != nil {
		return nil, err
	}
	r.printer.Info("Available credits: %s", credit.Credit)
	if f := credit.Credit.Float64(); !(f > 0) {
		return nil, ErrNoCredit
	}

	r.printer.Info("Creating model...")

	audio, err := os.ReadFile(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	r.logger.Debug("audio loaded", "path", req.AudioPath, "size", cli.FormatBytesInt(len(audio)))

	title := req.Title
	if title == "" {
		title = Title(req.UserID)
	}
	description := req.Description
	if description == "" {
		description = DefaultDescription
	}

	model, err := sess.CreateModel(ctx, &fishaudio.CreateModelRequest{
		Title:       title,
		Description: description,
		Type:        fishaudio.ModelTypeTTS,
		TrainMode:   fishaudio.TrainModeFast,
		Visibility:  req.Visibility,
		Voices: []fishaudio.AudioSample{{
			Filename: filepath.Base(req.AudioPath),
			Data:     audio,
		}},
	})
	if err != nil {
		return nil, err
	}
	return model, nil
}
