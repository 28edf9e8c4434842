package schema

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/zaba505/gws"
	"go.uber.org/zap"
)

var introQuery = `query IntrospectionQuery {
      __schema {
        queryType { name }
        mutationType { name }
        subscriptionType { name }
        types {
          ...FullType
        }
        directives {
          name
          description
          locations
          args {
            ...InputValue
          }
        }
      }
    }

    fragment FullType on __Type {
      kind
      name
      description
      fields(includeDeprecated: true) {
        name
        description
        args {
          ...InputValue
        }
        type {
          ...TypeRef
        }
        isDeprecated
        deprecationReason
      }
      inputFields {
        ...InputValue
      }
      interfaces {
        ...TypeRef
      }
      enumValues(includeDeprecated: true) {
        name
        description
        isDeprecated
        deprecationReason
      }
      possibleTypes {
        ...TypeRef
      }
    }

    fragment InputValue on __InputValue {
      name
      description
      type { ...TypeRef }
      defaultValue
    }

    fragment TypeRef on __Type {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
                ofType {
                  kind
                  name
                  ofType {
                    kind
                    name
                  }
                }
              }
            }
          }
        }
      }
    }`

type gqlReq struct {
	Query string `json:"query"`
}

// fetch performs a single introspection request against endpoint and
// returns the raw response body. One attempt, no retries.
func (a *Acquirer) fetch(ctx context.Context, src Source) ([]byte, error) {
	u, err := url.Parse(src.Endpoint)
	if err != nil {
		return nil, err
	}

	zap.L().Info("fetching schema via introspection",
		zap.String("endpoint", src.Endpoint),
		zap.Bool("insecure", src.Insecure),
	)

	switch u.Scheme {
	case "http", "https":
		return a.introspect(ctx, src)
	case "ws", "wss":
		return introspectWS(ctx, src)
	default:
		return nil, fmt.Errorf("unsupported endpoint scheme: %s", u.Scheme)
	}
}

func (a *Acquirer) introspect(ctx context.Context, src Source) ([]byte, error) {
	var query bytes.Buffer
	if err := json.NewEncoder(&query).Encode(gqlReq{Query: introQuery}); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, src.Endpoint, &query)
	if err != nil {
		return nil, err
	}

	for k, v := range src.Headers {
		for _, s := range v {
			req.Header.Add(k, s)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient(src.Insecure).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("endpoint returned %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// httpClient returns the client used for one introspection call. Relaxed
// certificate validation is scoped to a cloned transport, so nothing else
// in the process trusts what this call trusts.
func (a *Acquirer) httpClient(insecure bool) *http.Client {
	if !insecure {
		return a.client
	}

	t, ok := http.DefaultTransport.(*http.Transport)
	if a.client.Transport != nil {
		t, ok = a.client.Transport.(*http.Transport)
	}
	if !ok {
		return a.client
	}

	t = t.Clone()
	if t.TLSClientConfig == nil {
		t.TLSClientConfig = new(tls.Config)
	}
	t.TLSClientConfig.InsecureSkipVerify = true

	return &http.Client{Transport: t, Timeout: a.client.Timeout}
}

func introspectWS(ctx context.Context, src Source) ([]byte, error) {
	conn, err := gws.Dial(ctx, src.Endpoint, gws.WithHeaders(src.Headers))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	wc := gws.NewClient(conn)

	resp, err := wc.Query(ctx, &gws.Request{Query: introQuery})
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("introspection returned errors: %s", resp.Errors)
	}

	return resp.Data, nil
}
