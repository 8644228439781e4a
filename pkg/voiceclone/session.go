package voiceclone

import (
	"context"

	"github.com/digitaltwins/fishvoice/pkg/fishaudio"
)

// Session is an authenticated handle on the voice service, bound to one
// credential.
type Session interface {
	// Credit returns the remaining account credit.
	Credit(ctx context.Context) (*fishaudio.APICredit, error)

	// CreateModel creates a voice model from the request's samples.
	CreateModel(ctx context.Context, req *fishaudio.CreateModelRequest) (*fishaudio.Model, error)

	// Close releases the session.
	Close() error
}

// Opener opens a Session for a credential. It must not contact the service.
type Opener func(apiKey string) (Session, error)

// FishAudioOpener returns an Opener backed by fishaudio.Client.
func FishAudioOpener(opts ...fishaudio.Option) Opener {
	return func(apiKey string) (Session, error) {
		return &clientSession{client: fishaudio.NewClient(apiKey, opts...)}, nil
	}
}

type clientSession struct {
	client *fishaudio.Client
}

func (s *clientSession) Credit(ctx context.Context) (*fishaudio.APICredit, error) {
	return s.client.Wallet.Credit(ctx)
}

func (s *clientSession) CreateModel(ctx context.Context, req *fishaudio.CreateModelRequest) (*fishaudio.Model, error) {
	return s.client.Model.Create(ctx, req)
}

func (s *clientSession) Close() error {
	return s.client.Close()
}
