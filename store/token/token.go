package token

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pandodao/spl-minter/core"
	"golang.org/x/sync/singleflight"
)

// propertyTokens is the single collection entry holding every created token.
const propertyTokens = "userTokens"

func New(properties core.PropertyStore) core.TokenStore {
	owners, err := lru.New[string, []*core.Token](256)
	if err != nil {
		panic(err)
	}

	return &tokenStore{
		properties: properties,
		owners:     owners,
	}
}

type tokenStore struct {
	properties core.PropertyStore
	owners     *lru.Cache[string, []*core.Token]
	sf         singleflight.Group

	// mux serializes appends and cache fills
	mux sync.Mutex
}

func (s *tokenStore) ReadAll(ctx context.Context) ([]*core.Token, error) {
	var tokens []*core.Token
	if err := s.properties.Get(ctx, propertyTokens, &tokens); err != nil {
		return nil, core.WrapError(core.KindStorageRead, "read tokens", err)
	}

	return tokens, nil
}

func (s *tokenStore) Append(ctx context.Context, token *core.Token) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	tokens, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}

	tokens = append(tokens, token)
	if err := s.properties.Set(ctx, propertyTokens, tokens); err != nil {
		return core.WrapError(core.KindStorageWrite, "save token", err)
	}

	s.owners.Remove(token.Owner)
	return nil
}

// ListOwner returns the tokens created by owner, in creation order.
func (s *tokenStore) ListOwner(ctx context.Context, owner string) ([]*core.Token, error) {
	if tokens, ok := s.owners.Get(owner); ok {
		return cloneTokens(tokens), nil
	}

	v, err, _ := s.sf.Do(owner, func() (any, error) {
		s.mux.Lock()
		defer s.mux.Unlock()

		all, err := s.ReadAll(ctx)
		if err != nil {
			return nil, err
		}

		tokens := make([]*core.Token, 0, len(all))
		for _, t := range all {
			if t.Owner == owner {
				tokens = append(tokens, t)
			}
		}

		s.owners.Add(owner, tokens)
		return tokens, nil
	})

	if err != nil {
		return nil, err
	}

	return cloneTokens(v.([]*core.Token)), nil
}

func cloneTokens(tokens []*core.Token) []*core.Token {
	out := make([]*core.Token, len(tokens))
	for i, t := range tokens {
		c := *t
		out[i] = &c
	}

	return out
}
