package persistence

import (
	"context"
	"fmt"

	valkey "github.com/valkey-io/valkey-go"
)

type ValkeyStore struct {
	client valkey.Client
}

// NewValkeyStore connects to address; the client dials eagerly, so an
// unreachable server fails here rather than on first use.
func NewValkeyStore(address string) (*ValkeyStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{InitAddress: []string{address}})
	if err != nil {
		return nil, fmt.Errorf("connect valkey %s: %w", address, err)
	}
	return &ValkeyStore{client: client}, nil
}

func (s *ValkeyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := s.client.B().Get().Key(key).Build()
	data, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("valkey GET %q failed: %w", key, err)
	}
	return data, true, nil
}

func (s *ValkeyStore) Put(ctx context.Context, key string, data []byte) error {
	cmd := s.client.B().Set().Key(key).Value(valkey.BinaryString(data)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("valkey SET %q failed: %w", key, err)
	}
	return nil
}

func (s *ValkeyStore) Close() error {
	s.client.Close()
	return nil
}
