package fishaudio

import (
	"context"
	"net/http"
)

// WalletService provides account credit operations.
type WalletService struct {
	client *Client
}

// newWalletService creates a new wallet service.
func newWalletService(client *Client) *WalletService {
	return &WalletService{client: client}
}

// Credit returns the remaining API credit of the account owning the key.
func (s *WalletService) Credit(ctx context.Context) (*APICredit, error) {
	var resp APICredit
	if err := s.client.http.request(ctx, http.MethodGet, "/wallet/self/api-credit", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
