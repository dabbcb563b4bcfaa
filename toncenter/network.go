package toncenter

import (
	"fmt"
	"strings"
)

type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

const (
	MainnetURL = "https://toncenter.com/api/v2"
	TestnetURL = "https://testnet.toncenter.com/api/v2"
)

// BaseURL returns the API root of the network. Anything but Testnet is
// treated as mainnet.
func (n Network) BaseURL() string {
	if n == Testnet {
		return TestnetURL
	}
	return MainnetURL
}

func ParseNetwork(s string) (Network, error) {
	switch Network(strings.ToLower(strings.TrimSpace(s))) {
	case Mainnet, "":
		return Mainnet, nil
	case Testnet:
		return Testnet, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}

type APIKeyType string

const (
	APIKeyHeader APIKeyType = "header"
	APIKeyQuery  APIKeyType = "query"
)

const (
	apiKeyHeaderName = "x-api-key"
	apiKeyQueryName  = "api_key"
)

func ParseAPIKeyType(s string) (APIKeyType, error) {
	switch APIKeyType(strings.ToLower(strings.TrimSpace(s))) {
	case APIKeyHeader, "":
		return APIKeyHeader, nil
	case APIKeyQuery:
		return APIKeyQuery, nil
	default:
		return "", fmt.Errorf("unknown api key type %q", s)
	}
}

// APIKey tells the client how to authenticate. The secret is sent either as
// the x-api-key header or as the api_key query parameter.
type APIKey struct {
	Type APIKeyType
	Key  string
}

// String hides the secret so the key can be logged safely.
func (k APIKey) String() string {
	return fmt.Sprintf("%s:****", k.Type)
}
