// Package ecocyc queries the BioCyc web service for metabolite
// structure records.
package ecocyc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"go.uber.org/zap"

	"ligandid/pkg/identify/models"
)

// Service defaults matching the public BioCyc getxml endpoint.
const (
	DefaultEndpoint = "https://websvc.biocyc.org/getxml"
	DefaultOrganism = "ECOLI"
	DefaultTimeout  = 30 * time.Second
)

// The getxml response is scraped, not parsed: structure values sit in
// fixed spots of the compound XML and the patterns below lift them out.
var (
	inchiPattern    = regexp.MustCompile(`InChI=([^<]*)</inchi>`)
	inchiKeyPattern = regexp.MustCompile(`InChIKey=(.*)</inchi-key>`)
	smilesPattern   = regexp.MustCompile(`<string title='smiles'>(.*)</string>`)
)

// Client resolves metabolite identifiers against the BioCyc web service.
// With a cache attached, previously fetched responses are reused across
// runs and only misses hit the network.
type Client struct {
	endpoint string
	organism string
	hc       *http.Client
	cache    *Cache
	log      *zap.Logger
}

// NewClient builds a client for the given endpoint and organism. Zero
// values fall back to the service defaults; cache and log may be nil.
func NewClient(endpoint, organism string, timeout time.Duration, cache *Cache, log *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if organism == "" {
		organism = DefaultOrganism
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		organism: organism,
		hc:       &http.Client{Timeout: timeout},
		cache:    cache,
		log:      log,
	}
}

// Lookup fetches the compound XML for id and extracts its structure
// encodings. A response missing any encoding yields an incomplete
// record; transport and HTTP status failures are returned as errors.
func (c *Client) Lookup(ctx context.Context, id string) (models.Record, error) {
	object := c.organism + ":" + id
	body, err := c.fetch(ctx, object)
	if err != nil {
		return models.Record{}, err
	}
	return parseRecord(id, body), nil
}

func (c *Client) fetch(ctx context.Context, object string) (string, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(object)
		if err != nil {
			c.log.Warn("cache read failed", zap.String("object", object), zap.Error(err))
		} else if ok {
			c.log.Debug("cache hit", zap.String("object", object))
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+object, nil)
	if err != nil {
		return "", fmt.Errorf("ecocyc request for %s: %w", object, err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("ecocyc request for %s: %w", object, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("ecocyc request for %s: status %d", object, resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ecocyc response for %s: %w", object, err)
	}

	body := string(raw)
	if c.cache != nil {
		if err := c.cache.Put(object, body); err != nil {
			c.log.Warn("cache write failed", zap.String("object", object), zap.Error(err))
		}
	}
	return body, nil
}

// parseRecord extracts the three encodings from a compound XML body.
// All three must be present for the record to carry structure data.
func parseRecord(id, body string) models.Record {
	inchi := firstGroup(inchiPattern, body)
	inchikey := firstGroup(inchiKeyPattern, body)
	smiles := firstGroup(smilesPattern, body)
	if inchi == "" || inchikey == "" || smiles == "" {
		return models.Record{MetaboliteID: id}
	}
	return models.Record{
		MetaboliteID: id,
		InChI:        inchi,
		InChIKey:     inchikey,
		SMILES:       smiles,
	}
}

func firstGroup(re *regexp.Regexp, body string) string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}
